package action

import (
	"errors"
	"testing"
)

func TestSuccess(t *testing.T) {
	t.Parallel()

	r := Success()
	if !r.Succeeded() {
		t.Fatal("Succeeded() = false, want true")
	}
	if len(r.Errors()) != 0 {
		t.Errorf("Errors() = %v, want empty", r.Errors())
	}
	if r.Cause() != nil {
		t.Errorf("Cause() = %v, want nil", r.Cause())
	}
}

func TestFailure_CopiesErrors(t *testing.T) {
	t.Parallel()

	errs := map[string]any{KeyAPI: "member.banned"}
	r := Failure(errs)
	errs[KeyAPI] = "changed"

	if r.Succeeded() {
		t.Fatal("Succeeded() = true, want false")
	}
	if r.Code() != "member.banned" {
		t.Errorf("Code() = %q, want %q", r.Code(), "member.banned")
	}

	got := r.Errors()
	got["extra"] = 1
	if len(r.Errors()) != 1 {
		t.Errorf("Errors() leaked a mutation, len = %d, want 1", len(r.Errors()))
	}
}

func TestResult_Exception(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := failure(boom, map[string]any{KeyException: boom})

	if !errors.Is(r.Exception(), boom) {
		t.Errorf("Exception() = %v, want %v", r.Exception(), boom)
	}
	if r.Code() != "" {
		t.Errorf("Code() = %q, want empty", r.Code())
	}
	if Success().Exception() != nil {
		t.Error("Success().Exception() != nil")
	}
}
