// file: internals/features/employees/leaves/service/state.go
package service

import (
	"fmt"
	"time"

	"sekolahku_backend/internals/features/employees/leaves/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

// InvalidTransitionError: transisi status cuti yang tidak legal.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transisi status cuti %q → %q tidak diizinkan", e.From, e.To)
}

// CheckTransition: pending → approved | rejected, satu arah.
// Status final tidak bisa diubah lagi.
func CheckTransition(from, to string) error {
	if from == model.LeaveStatusPending &&
		(to == model.LeaveStatusApproved || to == model.LeaveStatusRejected) {
		return nil
	}
	return &InvalidTransitionError{From: from, To: to}
}

// IsCancellable: pembatalan hanya legal kalau tanggal mulai cuti masih
// strictly di masa depan. Cuti yang sudah mulai (atau sudah lewat) terkunci.
func IsCancellable(startDate, today time.Time) bool {
	return dbtime.DayUTC(startDate).After(dbtime.DayUTC(today))
}
