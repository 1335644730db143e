package action

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/forumcore/internal/domain"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
	"github.com/jsamuelsen11/forumcore/internal/platform/telemetry"
)

// DiagnosticChannel tags every fault record emitted by the pipeline.
const DiagnosticChannel = "forum"

// Outcome labels recorded on metrics and spans.
const (
	OutcomeSuccess   = "success"
	OutcomeCancelled = "cancelled"
	OutcomeMismatch  = "mismatch"
	OutcomeRejected  = "rejected"
	OutcomeFault     = "fault"
)

// UnitOfWork runs fn atomically: every write fn performs through the context
// it receives is committed when fn returns nil and rolled back otherwise.
// The error returned by fn is returned unchanged.
type UnitOfWork interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Op describes one action invocation.
type Op struct {
	// Kind and Verb build the hook keys ("category" + "archiving").
	Kind forum.Kind
	Verb string
	// Description names the action in fault records, e.g. "archiving
	// category" is logged as "Exception while archiving category".
	// Defaults to Verb followed by Kind.
	Description string
	// Subject is handed to before-hook observers.
	Subject any
	// Requires are capability checks run before anything else.
	Requires []func() error
	// Atomic wraps Run in a unit of work.
	Atomic bool
	// Run performs guards and writes. The returned value is handed to
	// after-hook observers.
	Run func(ctx context.Context) (any, error)
}

func (op Op) key() string {
	return string(op.Kind) + "." + op.Verb
}

func (op Op) description() string {
	if op.Description != "" {
		return op.Description
	}
	return op.Verb + " " + string(op.Kind)
}

// Pipeline runs actions: capability checks, the cancellable before hook,
// the (optionally atomic) mutation, the after hook, and the collapse of
// every outcome into a Result.
type Pipeline struct {
	uow     UnitOfWork
	hooks   *Hooks
	metrics *telemetry.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewPipeline creates a Pipeline. A nil hooks registry gets an empty one;
// nil metrics disables metric recording; a nil logger discards output.
func NewPipeline(uow UnitOfWork, hooks *Hooks, metrics *telemetry.Metrics, logger *slog.Logger) *Pipeline {
	if hooks == nil {
		hooks = NewHooks()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{
		uow:     uow,
		hooks:   hooks,
		metrics: metrics,
		logger:  logger,
		tracer:  otel.GetTracerProvider().Tracer("github.com/jsamuelsen11/forumcore/internal/app/action"),
	}
}

// Hooks returns the registry observers attach to.
func (p *Pipeline) Hooks() *Hooks { return p.hooks }

// Execute runs op and returns exactly one Result. It never panics.
func (p *Pipeline) Execute(ctx context.Context, op Op) Result {
	start := time.Now()
	ctx, span := p.tracer.Start(ctx, op.key(), trace.WithAttributes(
		attribute.String("forum.kind", string(op.Kind)),
		attribute.Bool("forum.atomic", op.Atomic),
	))
	defer span.End()

	res, outcome := p.execute(ctx, op)

	span.SetAttributes(attribute.String("forum.outcome", outcome))
	if outcome == OutcomeFault {
		span.RecordError(res.Cause())
		span.SetStatus(codes.Error, res.Cause().Error())
	}
	p.record(ctx, op, outcome, start)
	p.logger.DebugContext(ctx, "action finished",
		slog.String("action", op.key()),
		slog.String("outcome", outcome),
	)

	return res
}

func (p *Pipeline) execute(ctx context.Context, op Op) (Result, string) {
	for _, require := range op.Requires {
		if err := require(); err != nil {
			return failure(err, nil), OutcomeMismatch
		}
	}

	if !p.hooks.Trigger(ctx, HookKey(op.Kind, op.Verb, PhaseBefore), op.Subject).Allowed() {
		return failure(ErrCancelled, nil), OutcomeCancelled
	}

	entity, err := p.run(ctx, op)
	if err != nil {
		return p.classify(ctx, op, err)
	}

	p.hooks.Trigger(ctx, HookKey(op.Kind, op.Verb, PhaseAfter), entity)
	return Success(), OutcomeSuccess
}

func (p *Pipeline) run(ctx context.Context, op Op) (any, error) {
	if !op.Atomic {
		return guarded(ctx, op.Run)
	}

	var entity any
	err := p.uow.InTx(ctx, func(txCtx context.Context) error {
		var runErr error
		entity, runErr = guarded(txCtx, op.Run)
		return runErr
	})
	return entity, err
}

// guarded calls fn and turns a panic into a *PanicError.
func guarded(ctx context.Context, fn func(context.Context) (any, error)) (entity any, err error) {
	defer func() {
		if v := recover(); v != nil {
			entity = nil
			err = &PanicError{Value: v, Stack: debug.Stack()}
		}
	}()
	return fn(ctx)
}

func (p *Pipeline) classify(ctx context.Context, op Op, err error) (Result, string) {
	// Faults and panics may wrap a validation error; they stay faults.
	var (
		fault *Fault
		perr  *PanicError
	)
	if errors.As(err, &fault) || errors.As(err, &perr) {
		p.diagnose(ctx, op, err)
		return failure(err, map[string]any{KeyException: err}), OutcomeFault
	}

	// Rejections that name no field fall through to the fault path.
	var berr *BusinessError
	if errors.As(err, &berr) && len(berr.Fields) > 0 {
		return failure(err, berr.Fields), OutcomeRejected
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) && len(verr.Fields) > 0 {
		fields := make(map[string]any, len(verr.Fields))
		for k, v := range verr.Fields {
			fields[k] = v
		}
		return failure(err, fields), OutcomeRejected
	}

	var mismatch *TypeMismatchError
	if errors.As(err, &mismatch) {
		return failure(err, nil), OutcomeMismatch
	}

	p.diagnose(ctx, op, err)
	return failure(err, map[string]any{KeyException: err}), OutcomeFault
}

// diagnose emits the single fault record of an invocation.
func (p *Pipeline) diagnose(ctx context.Context, op Op, err error) {
	attrs := []any{
		slog.String("channel", DiagnosticChannel),
		slog.String("operation", op.key()),
		slog.String("fault", err.Error()),
		slog.String("trace", traceToken(ctx)),
		slog.Any("error", err),
	}

	var perr *PanicError
	if errors.As(err, &perr) {
		attrs = append(attrs, slog.String("stack", string(perr.Stack)))
	}

	p.logger.ErrorContext(ctx, "Exception while "+op.description(), attrs...)
}

// traceToken returns the active trace id, or a fresh random token when the
// context carries no recording span.
func traceToken(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		return sc.TraceID().String()
	}
	return uuid.NewString()
}

func (p *Pipeline) record(ctx context.Context, op Op, outcome string, start time.Time) {
	if p.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrAction.String(op.key()),
		telemetry.AttrResult.String(outcome),
	)

	p.metrics.ActionDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	p.metrics.ActionTotal.Add(ctx, 1, attrs)
}
