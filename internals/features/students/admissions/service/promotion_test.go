package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanPromotion(t *testing.T) {
	classA, classB, target := uuid.New(), uuid.New(), uuid.New()
	s1, s2, s3 := uuid.New(), uuid.New(), uuid.New()
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }

	admA1 := AdmissionRef{AdmissionID: uuid.New(), StudentID: s1, ClassID: classA, AdmittedAt: day(1)}
	admB2 := AdmissionRef{AdmissionID: uuid.New(), StudentID: s2, ClassID: classB, AdmittedAt: day(1)}

	t.Run("batch lintas kelas asal", func(t *testing.T) {
		plan, v := PlanPromotion([]uuid.UUID{s1, s2}, []AdmissionRef{admA1, admB2}, target)
		require.Nil(t, v)
		assert.ElementsMatch(t, []uuid.UUID{admA1.AdmissionID, admB2.AdmissionID}, plan.AdmissionIDs)
		assert.ElementsMatch(t, []uuid.UUID{classA, classB}, plan.PriorClassIDs,
			"tiap kelas asal muncul sekali untuk pembersihan enrollment")
	})

	t.Run("admission terbaru yang menang", func(t *testing.T) {
		oldB := AdmissionRef{AdmissionID: uuid.New(), StudentID: s1, ClassID: classB, AdmittedAt: day(1)}
		newA := AdmissionRef{AdmissionID: uuid.New(), StudentID: s1, ClassID: classA, AdmittedAt: day(20)}

		plan, v := PlanPromotion([]uuid.UUID{s1}, []AdmissionRef{oldB, newA}, target)
		require.Nil(t, v)
		assert.Equal(t, []uuid.UUID{newA.AdmissionID}, plan.AdmissionIDs)
		assert.Equal(t, []uuid.UUID{classA}, plan.PriorClassIDs, "kelas asal lama tidak ikut dibersihkan")
	})

	t.Run("tanggal sama baris belakangan menang", func(t *testing.T) {
		first := AdmissionRef{AdmissionID: uuid.New(), StudentID: s1, ClassID: classA, AdmittedAt: day(1)}
		second := AdmissionRef{AdmissionID: uuid.New(), StudentID: s1, ClassID: classB, AdmittedAt: day(1)}

		plan, v := PlanPromotion([]uuid.UUID{s1}, []AdmissionRef{first, second}, target)
		require.Nil(t, v)
		assert.Equal(t, []uuid.UUID{second.AdmissionID}, plan.AdmissionIDs)
	})

	t.Run("siswa tanpa admission ditolak", func(t *testing.T) {
		plan, v := PlanPromotion([]uuid.UUID{s1, s3}, []AdmissionRef{admA1}, target)
		assert.Nil(t, plan)
		require.NotNil(t, v)
		assert.Equal(t, []uuid.UUID{s3}, v.MissingStudentIDs)
		assert.Contains(t, v.Error(), "belum punya admission")
	})

	t.Run("siswa sudah di kelas tujuan ditolak", func(t *testing.T) {
		inTarget := AdmissionRef{AdmissionID: uuid.New(), StudentID: s2, ClassID: target, AdmittedAt: day(5)}

		plan, v := PlanPromotion([]uuid.UUID{s1, s2}, []AdmissionRef{admA1, inTarget}, target)
		assert.Nil(t, plan)
		require.NotNil(t, v)
		assert.Equal(t, []uuid.UUID{s2}, v.AlreadyInTarget)
		assert.Contains(t, v.Error(), "kelas tujuan")
	})
}
