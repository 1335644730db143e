package sqlite

import (
	"context"
	"slices"
	"sync"

	"gorm.io/gorm"
)

// txState is the unit of work carried in the context: the open gorm
// transaction and the handle snapshots to restore if it rolls back.
type txState struct {
	tx *gorm.DB

	mu       sync.Mutex
	restores []func()
}

type txKey struct{}

func txFrom(ctx context.Context) *txState {
	st, _ := ctx.Value(txKey{}).(*txState)
	return st
}

// rollback puts every remembered handle field back, newest first, so each
// ends at its value from before the transaction.
func (st *txState) rollback() {
	st.mu.Lock()
	restores := st.restores
	st.restores = nil
	st.mu.Unlock()

	for _, restore := range slices.Backward(restores) {
		restore()
	}
}

// keep snapshots *field so that a rollback of the transaction carried by
// ctx restores it. Outside a transaction writes are final and nothing is
// kept.
func keep[T any](ctx context.Context, field *T) {
	st := txFrom(ctx)
	if st == nil {
		return
	}
	prev := *field

	st.mu.Lock()
	defer st.mu.Unlock()
	st.restores = append(st.restores, func() { *field = prev })
}
