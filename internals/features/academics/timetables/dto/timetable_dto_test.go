package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSlots(t *testing.T) {
	timetableID := uuid.New()
	subjectID := uuid.New()

	rows := BuildSlots(timetableID, []SlotRequest{
		{Day: "monday", StartTime: "08:00", EndTime: "08:45", SubjectID: &subjectID},
		{Day: "monday", StartTime: "08:45", EndTime: "09:00", IsBreak: true},
		{Day: "monday", StartTime: "09:00", EndTime: "09:45"},
	})

	require.Len(t, rows, 3)
	for i, r := range rows {
		assert.Equal(t, i+1, r.TimetableSlotOrder, "urutan 1-based dari index array")
		assert.Equal(t, timetableID, r.TimetableSlotTimetableID)
	}
	assert.True(t, rows[1].TimetableSlotIsBreak)
	assert.Nil(t, rows[1].TimetableSlotSubjectID)

	assert.Empty(t, BuildSlots(timetableID, nil))
}
