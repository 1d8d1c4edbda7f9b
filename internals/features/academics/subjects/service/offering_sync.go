// file: internals/features/academics/subjects/service/offering_sync.go
package service

import (
	"github.com/google/uuid"
)

/* =========================================================
   Sinkronisasi offering: diff himpunan kelas target vs
   offering yang sudah ada untuk satu subject.
   ========================================================= */

// SyncPlan hasil partisi tiga arah.
type SyncPlan struct {
	// class id yang belum punya offering → buat baru
	ToCreate []uuid.UUID
	// offering id yang kelasnya masih ditarget → refresh guru/flag
	ToUpdate []uuid.UUID
	// offering id yang kelasnya tidak ditarget lagi → hapus (setelah guard)
	ToDelete []uuid.UUID
}

// PartitionOfferings menerima peta classID→offeringID yang sudah ada dan
// daftar classID target. Urutan target dipertahankan untuk ToCreate/ToUpdate.
func PartitionOfferings(existingByClass map[uuid.UUID]uuid.UUID, targetClassIDs []uuid.UUID) SyncPlan {
	var plan SyncPlan

	targeted := make(map[uuid.UUID]struct{}, len(targetClassIDs))
	for _, classID := range targetClassIDs {
		if _, dup := targeted[classID]; dup {
			continue
		}
		targeted[classID] = struct{}{}
		if offeringID, ok := existingByClass[classID]; ok {
			plan.ToUpdate = append(plan.ToUpdate, offeringID)
		} else {
			plan.ToCreate = append(plan.ToCreate, classID)
		}
	}

	for classID, offeringID := range existingByClass {
		if _, ok := targeted[classID]; !ok {
			plan.ToDelete = append(plan.ToDelete, offeringID)
		}
	}
	return plan
}
