package ports

import (
	"context"

	"github.com/jsamuelsen11/forumcore/internal/app/action"
)

// Notifier forwards completed actions to external receivers.
type Notifier interface {
	// Attach subscribes the notifier to every after hook of h.
	Attach(h *action.Hooks) action.HandlerID

	// Run delivers queued events until ctx is cancelled.
	Run(ctx context.Context) error
}
