package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sekolahku_backend/internals/features/employees/leaves/model"
)

func TestCheckTransition(t *testing.T) {
	assert.NoError(t, CheckTransition(model.LeaveStatusPending, model.LeaveStatusApproved))
	assert.NoError(t, CheckTransition(model.LeaveStatusPending, model.LeaveStatusRejected))

	// status final terkunci
	assert.Error(t, CheckTransition(model.LeaveStatusApproved, model.LeaveStatusRejected))
	assert.Error(t, CheckTransition(model.LeaveStatusRejected, model.LeaveStatusApproved))
	assert.Error(t, CheckTransition(model.LeaveStatusApproved, model.LeaveStatusPending))

	// nilai status liar
	err := CheckTransition(model.LeaveStatusPending, "cancelled")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tidak diizinkan")
}

func TestIsCancellable(t *testing.T) {
	today := time.Date(2025, 7, 10, 15, 0, 0, 0, time.UTC)

	assert.True(t, IsCancellable(today.AddDate(0, 0, 1), today), "mulai besok masih bisa batal")
	assert.False(t, IsCancellable(today, today), "mulai hari ini sudah terkunci")
	assert.False(t, IsCancellable(today.AddDate(0, 0, -1), today), "sudah lewat terkunci")

	// beda jam di hari yang sama tetap dihitung satu hari
	startSameDayLater := time.Date(2025, 7, 10, 23, 59, 0, 0, time.UTC)
	assert.False(t, IsCancellable(startSameDayLater, today))
}
