package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// CarryForward is the opening balance a period inherits: the net of all
// activity strictly before periodStart, floored at zero. A ledger never
// carries a negative balance into a new period; prior shortfalls are not
// modeled as forward debt. The floor must be preserved exactly.
//
// The result feeds the current period's collection side, never its
// expense side.
func CarryForward(snap Snapshot, kind LedgerKind, periodStart time.Time) decimal.Decimal {
	prior := Aggregate(snap, kind, Before(periodStart))
	net := prior.NetBalance()
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}
