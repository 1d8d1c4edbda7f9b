// file: internals/features/academics/timetables/model/timetable_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Satu timetable per (class, academic_year).
type TimetableModel struct {
	TimetableID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:timetable_id" json:"timetable_id"`

	TimetableClassID        uuid.UUID `gorm:"type:uuid;not null;column:timetable_class_id;uniqueIndex:uq_timetables_class_year,priority:1" json:"timetable_class_id"`
	TimetableAcademicYearID uuid.UUID `gorm:"type:uuid;not null;column:timetable_academic_year_id;uniqueIndex:uq_timetables_class_year,priority:2" json:"timetable_academic_year_id"`

	TimetableCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:timetable_created_at" json:"timetable_created_at"`
	TimetableUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:timetable_updated_at" json:"timetable_updated_at"`
	TimetableDeletedAt gorm.DeletedAt `gorm:"column:timetable_deleted_at;index" json:"timetable_deleted_at,omitempty"`

	TimetableSlots []TimetableSlotModel `gorm:"foreignKey:TimetableSlotTimetableID;references:TimetableID;constraint:OnDelete:CASCADE" json:"timetable_slots,omitempty"`
}

func (TimetableModel) TableName() string { return "timetables" }

type TimetableSlotModel struct {
	TimetableSlotID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:timetable_slot_id" json:"timetable_slot_id"`
	TimetableSlotTimetableID uuid.UUID `gorm:"type:uuid;not null;column:timetable_slot_timetable_id;index:idx_timetable_slots_timetable" json:"timetable_slot_timetable_id"`

	TimetableSlotDay       string `gorm:"type:varchar(10);not null;column:timetable_slot_day" json:"timetable_slot_day"`
	TimetableSlotStartTime string `gorm:"type:varchar(5);not null;column:timetable_slot_start_time" json:"timetable_slot_start_time"` // "HH:MM"
	TimetableSlotEndTime   string `gorm:"type:varchar(5);not null;column:timetable_slot_end_time" json:"timetable_slot_end_time"`

	TimetableSlotSubjectID *uuid.UUID `gorm:"type:uuid;column:timetable_slot_subject_id" json:"timetable_slot_subject_id,omitempty"`
	TimetableSlotTeacherID *uuid.UUID `gorm:"type:uuid;column:timetable_slot_teacher_id" json:"timetable_slot_teacher_id,omitempty"`
	TimetableSlotRoom      *string    `gorm:"type:varchar(40);column:timetable_slot_room" json:"timetable_slot_room,omitempty"`
	TimetableSlotIsBreak   bool       `gorm:"not null;default:false;column:timetable_slot_is_break" json:"timetable_slot_is_break"`

	TimetableSlotOrder int `gorm:"not null;column:timetable_slot_order" json:"timetable_slot_order"`

	TimetableSlotCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:timetable_slot_created_at" json:"timetable_slot_created_at"`
}

func (TimetableSlotModel) TableName() string { return "timetable_slots" }
