// file: internals/features/academics/timetables/dto/timetable_dto.go
package dto

import (
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/academics/timetables/model"
)

type SlotRequest struct {
	Day       string     `json:"timetable_slot_day" validate:"required,max=10"`
	StartTime string     `json:"timetable_slot_start_time" validate:"required,len=5"` // "HH:MM"
	EndTime   string     `json:"timetable_slot_end_time" validate:"required,len=5"`
	SubjectID *uuid.UUID `json:"timetable_slot_subject_id" validate:"omitempty"`
	TeacherID *uuid.UUID `json:"timetable_slot_teacher_id" validate:"omitempty"`
	Room      *string    `json:"timetable_slot_room" validate:"omitempty,max=40"`
	IsBreak   bool       `json:"timetable_slot_is_break"`
}

type CreateTimetableRequest struct {
	ClassID        uuid.UUID     `json:"timetable_class_id" validate:"required"`
	AcademicYearID uuid.UUID     `json:"timetable_academic_year_id" validate:"required"`
	Slots          []SlotRequest `json:"timetable_slots" validate:"omitempty,dive"`
}

type UpdateTimetableRequest struct {
	// nil = slot tidak disentuh; non-nil (termasuk kosong) = replace-set
	Slots *[]SlotRequest `json:"timetable_slots" validate:"omitempty,dive"`
}

// BuildSlots menurunkan urutan slot dari index array (1-based), pola yang
// sama dengan bus stop.
func BuildSlots(timetableID uuid.UUID, reqs []SlotRequest) []model.TimetableSlotModel {
	rows := make([]model.TimetableSlotModel, 0, len(reqs))
	for i, s := range reqs {
		rows = append(rows, model.TimetableSlotModel{
			TimetableSlotTimetableID: timetableID,
			TimetableSlotDay:         s.Day,
			TimetableSlotStartTime:   s.StartTime,
			TimetableSlotEndTime:     s.EndTime,
			TimetableSlotSubjectID:   s.SubjectID,
			TimetableSlotTeacherID:   s.TeacherID,
			TimetableSlotRoom:        s.Room,
			TimetableSlotIsBreak:     s.IsBreak,
			TimetableSlotOrder:       i + 1,
		})
	}
	return rows
}
