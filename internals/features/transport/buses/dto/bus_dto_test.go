package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStops(t *testing.T) {
	busID := uuid.New()
	jam := "06:45"

	rows := BuildStops(busID, []BusStopRequest{
		{Name: "Terminal Bungurasih", Time: &jam},
		{Name: "Simpang Dukuh"},
		{Name: "Gerbang Sekolah"},
	})

	require.Len(t, rows, 3)
	for i, r := range rows {
		assert.Equal(t, i+1, r.BusStopOrder, "urutan 1-based dari index array")
		assert.Equal(t, busID, r.BusStopBusID)
	}
	assert.Nil(t, rows[1].BusStopTime)

	assert.Empty(t, BuildStops(busID, nil))
}
