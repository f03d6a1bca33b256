package store

import "github.com/Pangolin1100/class-order-system/internal/model"

// Reconcile compares an operator-edited snapshot against the last persisted
// one and commits the edited snapshot as the new ledger state if anything
// differs. Row insertion, row deletion, and cell edits all reduce to "the
// snapshots are not equal"; the edited snapshot becomes authoritative in
// full. When the snapshots are equal, no I/O happens at all.
func (l *Ledger) Reconcile(persisted, edited []model.OrderRecord) (changed bool, err error) {
	if snapshotsEqual(persisted, edited) {
		return false, nil
	}
	if err := l.Persist(edited); err != nil {
		return false, err
	}
	return true, nil
}

// snapshotsEqual checks row count and every cell value in row order.
func snapshotsEqual(a, b []model.OrderRecord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
