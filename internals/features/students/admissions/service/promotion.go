// file: internals/features/students/admissions/service/promotion.go
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AdmissionRef: potongan baris admission yang dibutuhkan perencana promosi.
type AdmissionRef struct {
	AdmissionID uuid.UUID
	StudentID   uuid.UUID
	ClassID     uuid.UUID
	AdmittedAt  time.Time
}

// PromotionPlan: admission mana yang di-repoint ke kelas tujuan, dan kelas
// asal distinct mana saja yang enrollment-nya jadi basi.
type PromotionPlan struct {
	AdmissionIDs  []uuid.UUID
	PriorClassIDs []uuid.UUID
}

// PromotionViolation: sebagian siswa tidak bisa dipromosikan.
type PromotionViolation struct {
	MissingStudentIDs []uuid.UUID `json:"missing_student_ids,omitempty"`
	AlreadyInTarget   []uuid.UUID `json:"already_in_target,omitempty"`
}

func (v *PromotionViolation) Error() string {
	if len(v.MissingStudentIDs) > 0 {
		return fmt.Sprintf("%d siswa belum punya admission", len(v.MissingStudentIDs))
	}
	return fmt.Sprintf("%d siswa sudah berada di kelas tujuan", len(v.AlreadyInTarget))
}

// PlanPromotion menurunkan kelas asal tiap siswa dari admission TERBARUNYA
// (baris belakangan menang kalau tanggalnya sama — pemanggil mengurutkan
// input berdasarkan created_at). Kelas asal boleh berbeda-beda antar siswa
// dalam satu batch; hasilnya daftar admission yang dipindah plus himpunan
// kelas asal distinct untuk pembersihan enrollment.
func PlanPromotion(studentIDs []uuid.UUID, admissions []AdmissionRef, targetClassID uuid.UUID) (*PromotionPlan, *PromotionViolation) {
	latest := make(map[uuid.UUID]AdmissionRef, len(studentIDs))
	for _, a := range admissions {
		cur, ok := latest[a.StudentID]
		if !ok || !a.AdmittedAt.Before(cur.AdmittedAt) {
			latest[a.StudentID] = a
		}
	}

	v := &PromotionViolation{}
	plan := &PromotionPlan{}
	seenClass := make(map[uuid.UUID]struct{})
	for _, sid := range studentIDs {
		a, ok := latest[sid]
		if !ok {
			v.MissingStudentIDs = append(v.MissingStudentIDs, sid)
			continue
		}
		if a.ClassID == targetClassID {
			v.AlreadyInTarget = append(v.AlreadyInTarget, sid)
			continue
		}
		plan.AdmissionIDs = append(plan.AdmissionIDs, a.AdmissionID)
		if _, dup := seenClass[a.ClassID]; !dup {
			seenClass[a.ClassID] = struct{}{}
			plan.PriorClassIDs = append(plan.PriorClassIDs, a.ClassID)
		}
	}
	if len(v.MissingStudentIDs) > 0 || len(v.AlreadyInTarget) > 0 {
		return nil, v
	}
	return plan, nil
}
