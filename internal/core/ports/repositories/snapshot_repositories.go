package repositories

import (
	"context"

	"github.com/cliniccore/clinic_ledger_app/internal/core/ledger"
)

// SnapshotRepository materializes one consistent, immutable view of the
// whole transaction log for the reconciliation engine. Each computation
// should run over a freshly fetched snapshot so it never reads a
// partially updated ledger.
type SnapshotRepository interface {
	GetLedgerSnapshot(ctx context.Context) (ledger.Snapshot, error)
}
