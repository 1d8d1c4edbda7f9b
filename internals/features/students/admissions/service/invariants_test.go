package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCapacity(t *testing.T) {
	assert.Nil(t, CheckCapacity(40, 38, 2), "pas di kapasitas masih boleh")
	assert.Nil(t, CheckCapacity(40, 0, 40))

	v := CheckCapacity(40, 39, 2)
	require.NotNil(t, v, "39+2 > 40 harus ditolak")
	assert.Equal(t, 40, v.Capacity)
	assert.Equal(t, 39, v.Current)
	assert.Equal(t, 2, v.Incoming)
	assert.Contains(t, v.Error(), "terlampaui")
}

func TestCheckNoDuplicateAdmission(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	assert.Nil(t, CheckNoDuplicateAdmission([]uuid.UUID{a, b}, nil))
	assert.Nil(t, CheckNoDuplicateAdmission([]uuid.UUID{a, b}, []uuid.UUID{c}))

	v := CheckNoDuplicateAdmission([]uuid.UUID{a, b, c}, []uuid.UUID{b, c})
	require.NotNil(t, v)
	assert.ElementsMatch(t, []uuid.UUID{b, c}, v.StudentIDs, "semua siswa bentrok harus disebut")

	// batch dengan id ganda tidak boleh melaporkan pelanggar dua kali
	v = CheckNoDuplicateAdmission([]uuid.UUID{a, a}, []uuid.UUID{a})
	require.NotNil(t, v)
	assert.Len(t, v.StudentIDs, 1)
}

func TestDedupStudentIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	got := DedupStudentIDs([]uuid.UUID{a, b, a, b, a})
	assert.Equal(t, []uuid.UUID{a, b}, got, "urutan pertama kali muncul dipertahankan")
}

func TestGenerateAdmissionNumbers(t *testing.T) {
	now := time.Date(2025, 7, 1, 10, 30, 0, 0, time.UTC)
	nums := GenerateAdmissionNumbers(3, now)
	require.Len(t, nums, 3)

	seenAdm := map[string]bool{}
	seenGR := map[string]bool{}
	for _, n := range nums {
		assert.False(t, seenAdm[n.AdmissionNumber], "admission number harus unik dalam batch")
		assert.False(t, seenGR[n.GRNumber], "gr number harus unik dalam batch")
		seenAdm[n.AdmissionNumber] = true
		seenGR[n.GRNumber] = true
		assert.Contains(t, n.AdmissionNumber, "ADM-20250701103000")
		assert.Contains(t, n.GRNumber, "GR-20250701103000")
	}
}
