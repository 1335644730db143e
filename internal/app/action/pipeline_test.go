package action

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/forumcore/internal/domain"
	"github.com/jsamuelsen11/forumcore/internal/domain/forum"
)

// spyUnitOfWork counts unit-of-work lifecycle calls.
type spyUnitOfWork struct {
	begins, commits, rollbacks int
	failCommit                 error
}

func (u *spyUnitOfWork) InTx(ctx context.Context, fn func(context.Context) error) error {
	u.begins++
	if err := fn(ctx); err != nil {
		u.rollbacks++
		return err
	}
	if u.failCommit != nil {
		u.rollbacks++
		return u.failCommit
	}
	u.commits++
	return nil
}

func newTestPipeline(t *testing.T) (*Pipeline, *spyUnitOfWork, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	uow := &spyUnitOfWork{}
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	return NewPipeline(uow, NewHooks(), nil, logger), uow, &buf
}

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("decoding log line %q: %v", line, err)
		}
		out = append(out, rec)
	}
	return out
}

func TestPipeline_SuccessCommitsAndNotifies(t *testing.T) {
	t.Parallel()
	p, uow, _ := newTestPipeline(t)

	var after *Event
	p.Hooks().On("category.archiving.after", func(_ context.Context, e *Event) { after = e })

	res := p.Execute(context.Background(), Op{
		Kind:   forum.KindCategory,
		Verb:   "archiving",
		Atomic: true,
		Run:    func(context.Context) (any, error) { return "archived", nil },
	})

	if !res.Succeeded() {
		t.Fatalf("Execute() = %v, want success", res)
	}
	if uow.begins != 1 || uow.commits != 1 || uow.rollbacks != 0 {
		t.Errorf("uow = %+v, want one committed unit", uow)
	}
	if after == nil || after.Entity != "archived" {
		t.Errorf("after event = %+v, want entity from Run", after)
	}
}

func TestPipeline_CancelledBeforeUnitOfWork(t *testing.T) {
	t.Parallel()
	p, uow, buf := newTestPipeline(t)

	p.Hooks().On("thread.moving.before", func(_ context.Context, e *Event) { e.Prevent() })
	afterFired := false
	p.Hooks().On("thread.moving.after", func(context.Context, *Event) { afterFired = true })
	ran := false

	res := p.Execute(context.Background(), Op{
		Kind:   forum.KindThread,
		Verb:   "moving",
		Atomic: true,
		Run: func(context.Context) (any, error) {
			ran = true
			return nil, nil
		},
	})

	if res.Succeeded() {
		t.Fatal("Execute() succeeded, want cancellation")
	}
	if len(res.Errors()) != 0 {
		t.Errorf("Errors() = %v, want empty", res.Errors())
	}
	if !errors.Is(res.Cause(), ErrCancelled) {
		t.Errorf("Cause() = %v, want ErrCancelled", res.Cause())
	}
	if ran || uow.begins != 0 || afterFired {
		t.Errorf("ran=%v begins=%d after=%v, want nothing past the hook", ran, uow.begins, afterFired)
	}
	if buf.Len() != 0 {
		t.Errorf("cancellation logged %q, want no diagnostic", buf.String())
	}
}

func TestPipeline_MismatchBeforeHook(t *testing.T) {
	t.Parallel()
	p, uow, buf := newTestPipeline(t)

	hookFired := false
	p.Hooks().Tap(func(context.Context, *Event) { hookFired = true })

	var member forum.Member
	res := p.Execute(context.Background(), Op{
		Kind:     forum.KindMember,
		Verb:     "banning",
		Requires: []func() error{Capability[forum.Member]("member", member)},
		Atomic:   true,
		Run:      func(context.Context) (any, error) { return nil, nil },
	})

	var mismatch *TypeMismatchError
	if !errors.As(res.Cause(), &mismatch) {
		t.Fatalf("Cause() = %v, want *TypeMismatchError", res.Cause())
	}
	if res.Succeeded() || len(res.Errors()) != 0 {
		t.Errorf("Execute() = %v, want empty failure", res)
	}
	if hookFired || uow.begins != 0 || buf.Len() != 0 {
		t.Errorf("hook=%v begins=%d log=%q, want none", hookFired, uow.begins, buf.String())
	}
}

func TestPipeline_BusinessFailureRollsBack(t *testing.T) {
	t.Parallel()
	p, uow, buf := newTestPipeline(t)

	afterFired := false
	p.Hooks().On("forum.removing.after", func(context.Context, *Event) { afterFired = true })

	res := p.Execute(context.Background(), Op{
		Kind:   forum.KindForum,
		Verb:   "removing",
		Atomic: true,
		Run: func(ctx context.Context) (any, error) {
			return nil, Check(ctx, Deny(true, "forum.must.be.archived"))
		},
	})

	if res.Code() != "forum.must.be.archived" {
		t.Errorf("Code() = %q, want forum.must.be.archived", res.Code())
	}
	if uow.rollbacks != 1 || uow.commits != 0 {
		t.Errorf("uow = %+v, want one rollback", uow)
	}
	if afterFired {
		t.Error("after hook fired on failure")
	}
	if buf.Len() != 0 {
		t.Errorf("business failure logged %q, want no diagnostic", buf.String())
	}
}

func TestPipeline_ValidationErrorBecomesFields(t *testing.T) {
	t.Parallel()
	p, _, _ := newTestPipeline(t)

	res := p.Execute(context.Background(), Op{
		Kind: forum.KindForum,
		Verb: "editing",
		Run: func(context.Context) (any, error) {
			return nil, &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}
		},
	})

	errs := res.Errors()
	if errs["name"] != domain.MsgRequired {
		t.Errorf("Errors() = %v, want name field", errs)
	}
	if _, ok := errs[KeyAPI]; ok {
		t.Error("field failure also carries an api code")
	}
}

func TestPipeline_EmptyRejectionIsFault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{name: "validation error without fields", err: &domain.ValidationError{}},
		{name: "validation error with empty map", err: &domain.ValidationError{Fields: map[string]string{}}},
		{name: "business error without fields", err: &BusinessError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, uow, buf := newTestPipeline(t)

			res := p.Execute(context.Background(), Op{
				Kind:   forum.KindThread,
				Verb:   "editing",
				Atomic: true,
				Run:    func(context.Context) (any, error) { return nil, tt.err },
			})

			if res.Succeeded() || len(res.Errors()) == 0 {
				t.Fatalf("Execute() = %v, want failure with errors", res)
			}
			if !errors.Is(res.Exception(), tt.err) {
				t.Errorf("Exception() = %v, want %v", res.Exception(), tt.err)
			}
			if uow.rollbacks != 1 {
				t.Errorf("rollbacks = %d, want 1", uow.rollbacks)
			}
			if recs := records(t, buf); len(recs) != 1 {
				t.Errorf("got %d log records, want 1", len(recs))
			}
		})
	}
}

func TestPipeline_FaultIsLoggedOnce(t *testing.T) {
	t.Parallel()
	p, uow, buf := newTestPipeline(t)

	boom := errors.New("disk full")
	res := p.Execute(context.Background(), Op{
		Kind:        forum.KindPost,
		Verb:        "thumbing-up",
		Description: "giving thumb up",
		Atomic:      true,
		Run:         func(context.Context) (any, error) { return nil, boom },
	})

	if !errors.Is(res.Exception(), boom) {
		t.Fatalf("Exception() = %v, want %v", res.Exception(), boom)
	}
	if uow.rollbacks != 1 {
		t.Errorf("rollbacks = %d, want 1", uow.rollbacks)
	}

	recs := records(t, buf)
	if len(recs) != 1 {
		t.Fatalf("got %d log records, want 1", len(recs))
	}
	rec := recs[0]
	if rec["level"] != "ERROR" || rec["msg"] != "Exception while giving thumb up" {
		t.Errorf("record = %v", rec)
	}
	if rec["channel"] != DiagnosticChannel || rec["fault"] != "disk full" {
		t.Errorf("record = %v, want channel and fault", rec)
	}
	if token, _ := rec["trace"].(string); token == "" {
		t.Error("record has no trace token")
	}
}

func TestPipeline_PanicIsFault(t *testing.T) {
	t.Parallel()
	p, uow, buf := newTestPipeline(t)

	res := p.Execute(context.Background(), Op{
		Kind:   forum.KindMessage,
		Verb:   "sending",
		Atomic: true,
		Run:    func(context.Context) (any, error) { panic("nil map write") },
	})

	var perr *PanicError
	if !errors.As(res.Exception(), &perr) {
		t.Fatalf("Exception() = %v, want *PanicError", res.Exception())
	}
	if uow.rollbacks != 1 {
		t.Errorf("rollbacks = %d, want 1", uow.rollbacks)
	}
	if recs := records(t, buf); len(recs) != 1 || recs[0]["msg"] != "Exception while sending message" {
		t.Errorf("records = %v", recs)
	}
}

func TestPipeline_CommitFailureIsFault(t *testing.T) {
	t.Parallel()
	p, uow, _ := newTestPipeline(t)
	uow.failCommit = errors.New("database is locked")

	res := p.Execute(context.Background(), Op{
		Kind:   forum.KindCategory,
		Verb:   "reviving",
		Atomic: true,
		Run:    func(context.Context) (any, error) { return nil, nil },
	})

	if res.Exception() == nil {
		t.Fatalf("Execute() = %v, want exception", res)
	}
}

func TestPipeline_NonAtomicSkipsUnitOfWork(t *testing.T) {
	t.Parallel()
	p, uow, _ := newTestPipeline(t)

	res := p.Execute(context.Background(), Op{
		Kind: forum.KindPost,
		Verb: "pinning",
		Run:  func(context.Context) (any, error) { return nil, nil },
	})

	if !res.Succeeded() {
		t.Fatalf("Execute() = %v, want success", res)
	}
	if uow.begins != 0 {
		t.Errorf("begins = %d, want 0", uow.begins)
	}
}
