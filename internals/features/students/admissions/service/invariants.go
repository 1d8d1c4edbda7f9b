// file: internals/features/students/admissions/service/invariants.go
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   Invariant check sebagai fungsi murni — dikomposisi SEBELUM
   transaksi mutasi, jadi bisa diuji tanpa store.
   ========================================================= */

// CapacityViolation: kapasitas kelas akan terlampaui.
type CapacityViolation struct {
	Capacity int `json:"capacity"`
	Current  int `json:"current"`
	Incoming int `json:"incoming"`
}

func (v *CapacityViolation) Error() string {
	return fmt.Sprintf("kapasitas kelas %d terlampaui: terisi %d, masuk %d", v.Capacity, v.Current, v.Incoming)
}

// CheckCapacity: nil kalau masih muat.
func CheckCapacity(capacity, current, incoming int) *CapacityViolation {
	if current+incoming > capacity {
		return &CapacityViolation{Capacity: capacity, Current: current, Incoming: incoming}
	}
	return nil
}

// DuplicateAdmissionViolation: sebagian siswa sudah punya admission
// di tahun ajaran yang sama.
type DuplicateAdmissionViolation struct {
	StudentIDs []uuid.UUID `json:"student_ids"`
}

func (v *DuplicateAdmissionViolation) Error() string {
	return fmt.Sprintf("%d siswa sudah terdaftar di tahun ajaran yang sama", len(v.StudentIDs))
}

// CheckNoDuplicateAdmission membandingkan batch masuk dengan siswa yang sudah
// punya admission di tahun ajaran target. Nil kalau tidak ada yang bentrok.
func CheckNoDuplicateAdmission(incoming []uuid.UUID, alreadyAdmitted []uuid.UUID) *DuplicateAdmissionViolation {
	if len(alreadyAdmitted) == 0 {
		return nil
	}
	admitted := make(map[uuid.UUID]struct{}, len(alreadyAdmitted))
	for _, id := range alreadyAdmitted {
		admitted[id] = struct{}{}
	}
	var offending []uuid.UUID
	seen := make(map[uuid.UUID]struct{}, len(incoming))
	for _, id := range incoming {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := admitted[id]; ok {
			offending = append(offending, id)
		}
	}
	if len(offending) > 0 {
		return &DuplicateAdmissionViolation{StudentIDs: offending}
	}
	return nil
}

// DedupStudentIDs buang duplikat sambil mempertahankan urutan.
func DedupStudentIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

/* =========================================================
   Nomor admission & GR: suffix berbasis waktu + index batch,
   supaya unik di dalam satu batch insert.
   ========================================================= */

type AdmissionNumbers struct {
	AdmissionNumber string
	GRNumber        string
}

func GenerateAdmissionNumbers(n int, now time.Time) []AdmissionNumbers {
	stamp := now.UTC().Format("20060102150405")
	out := make([]AdmissionNumbers, n)
	for i := 0; i < n; i++ {
		out[i] = AdmissionNumbers{
			AdmissionNumber: fmt.Sprintf("ADM-%s-%03d", stamp, i+1),
			GRNumber:        fmt.Sprintf("GR-%s-%03d", stamp, i+1),
		}
	}
	return out
}
