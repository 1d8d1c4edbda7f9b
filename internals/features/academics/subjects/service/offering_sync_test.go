package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPartitionOfferings(t *testing.T) {
	classA, classB, classC := uuid.New(), uuid.New(), uuid.New()
	offA, offB := uuid.New(), uuid.New()

	t.Run("geser section A,B ke B,C", func(t *testing.T) {
		existing := map[uuid.UUID]uuid.UUID{classA: offA, classB: offB}
		plan := PartitionOfferings(existing, []uuid.UUID{classB, classC})

		assert.Equal(t, []uuid.UUID{classC}, plan.ToCreate)
		assert.Equal(t, []uuid.UUID{offB}, plan.ToUpdate)
		assert.Equal(t, []uuid.UUID{offA}, plan.ToDelete)
	})

	t.Run("target kosong menghapus semua", func(t *testing.T) {
		existing := map[uuid.UUID]uuid.UUID{classA: offA, classB: offB}
		plan := PartitionOfferings(existing, nil)

		assert.Empty(t, plan.ToCreate)
		assert.Empty(t, plan.ToUpdate)
		assert.ElementsMatch(t, []uuid.UUID{offA, offB}, plan.ToDelete)
	})

	t.Run("tanpa offering lama semuanya create", func(t *testing.T) {
		plan := PartitionOfferings(map[uuid.UUID]uuid.UUID{}, []uuid.UUID{classA, classB})

		assert.Equal(t, []uuid.UUID{classA, classB}, plan.ToCreate)
		assert.Empty(t, plan.ToUpdate)
		assert.Empty(t, plan.ToDelete)
	})

	t.Run("target ganda dihitung sekali", func(t *testing.T) {
		plan := PartitionOfferings(map[uuid.UUID]uuid.UUID{}, []uuid.UUID{classA, classA})
		assert.Equal(t, []uuid.UUID{classA}, plan.ToCreate)
	})

	t.Run("himpunan identik hanya update", func(t *testing.T) {
		existing := map[uuid.UUID]uuid.UUID{classA: offA, classB: offB}
		plan := PartitionOfferings(existing, []uuid.UUID{classA, classB})

		assert.Empty(t, plan.ToCreate)
		assert.ElementsMatch(t, []uuid.UUID{offA, offB}, plan.ToUpdate)
		assert.Empty(t, plan.ToDelete)
	})
}
