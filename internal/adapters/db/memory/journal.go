package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/forumcore/internal/domain"
	"github.com/jsamuelsen11/forumcore/internal/platform/logging"
)

// change is one compensable write. do runs under the store lock and may
// refuse the write; undo is only called after a successful do.
type change struct {
	desc string
	do   func() error
	undo func()
}

func (c *change) Apply(context.Context) error  { return c.do() }
func (c *change) Revert(context.Context) error { c.undo(); return nil }
func (c *change) Describe() string             { return c.desc }

var _ domain.Change = (*change)(nil)

// journal collects the changes applied inside one unit of work.
type journal struct {
	mu   sync.Mutex
	done []domain.Change
}

func (j *journal) record(c domain.Change) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.done = append(j.done, c)
}

// rollback reverts every recorded change in reverse order. Revert errors
// are logged and do not stop the remaining undos.
func (j *journal) rollback(ctx context.Context) {
	j.mu.Lock()
	items := j.done
	j.done = nil
	j.mu.Unlock()

	logger := logging.FromContext(ctx)
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]

		logger.DebugContext(ctx, "reverting change",
			slog.String("operation", "Transactor.InTx"),
			slog.Int("step", i+1),
			slog.String("change", item.Describe()),
		)

		if err := item.Revert(ctx); err != nil {
			logger.ErrorContext(ctx, "revert failed",
				slog.String("operation", "Transactor.InTx"),
				slog.Int("step", i+1),
				slog.String("change", item.Describe()),
				slog.Any("error", err),
			)
		}
	}
}

type journalKey struct{}

func journalFrom(ctx context.Context) *journal {
	j, _ := ctx.Value(journalKey{}).(*journal)
	return j
}

// apply runs c and records it in the unit of work carried by ctx, if any.
// Outside a unit of work the write is final.
func apply(ctx context.Context, c domain.Change) error {
	if err := c.Apply(ctx); err != nil {
		return fmt.Errorf("%s: %w", c.Describe(), err)
	}
	if j := journalFrom(ctx); j != nil {
		j.record(c)
	}
	return nil
}
