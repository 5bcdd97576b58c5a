package errors

import (
	stderrs "errors"
	"fmt"
	"testing"
)

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeInvalidArgument, 2},
		{ErrorCodeNotFound, 1},
		{ErrorCodeIO, 1},
		{ErrorCodeJSON, 1},
		{ErrorCodeCSV, 1},
		{ErrorCodeValidation, 1},
		{ErrorCodeTimezone, 1},
		{ErrorCodeEmptyDataset, 1},
		{ErrorCodeUnknown, 1},
		{9999, 1}, // default branch
	}
	for _, c := range cases {
		if got := ExitCode(c.code); got != c.want {
			t.Fatalf("ExitCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
	if got := ExitCodeOf(nil); got != 0 {
		t.Fatalf("ExitCodeOf(nil) = %d, want 0", got)
	}
	if got := ExitCodeOf(stderrs.New("x")); got != 1 {
		t.Fatalf("ExitCodeOf(foreign) = %d, want 1", got)
	}
}

func TestCodeString(t *testing.T) {
	if got := ErrorCodeTimezone.String(); got != "timezone" {
		t.Fatalf("String() = %q", got)
	}
	if got := ErrorCode(9999).String(); got != "code(9999)" {
		t.Fatalf("String() unknown = %q", got)
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	// nil *Error should render "<nil>"
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	e1 := New(ErrorCodeValidation, "bad stuff")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeJSON, "bad json at %d", 12)
	if got := e2.Error(); got != "bad json at 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeIO, "read failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	e4 := Wrapf(src, ErrorCodeNotFound, "open %s", "people.csv")
	if want := "open people.csv: root"; e4.Error() != want {
		t.Fatalf("Wrapf().Error = %q, want %q", e4.Error(), want)
	}

	if got, ok := As(e4); !ok || got.Code() != ErrorCodeNotFound {
		t.Fatalf("As() failed for our error")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}

	// WithField (copy-on-write) and WithOp
	e5 := Wrap(src, ErrorCodeValidation, "oops")
	e6 := WithField(e5, "siblings")
	e7 := WithOp(e6, "load")
	if fe, ok := As(e6); !ok || fe.Field() != "siblings" {
		t.Fatalf("WithField failed")
	}
	if oe, ok := As(e7); !ok || oe.Op() != "load" || oe.Field() != "siblings" {
		t.Fatalf("WithOp failed")
	}
	if OpOf(e7) != "load" {
		t.Fatalf("OpOf = %q", OpOf(e7))
	}
	if fe0, _ := As(e5); fe0.Field() != "" || fe0.Op() != "" {
		t.Fatalf("copy-on-write mutated original")
	}
	if WithField(src, "x") != src {
		t.Fatalf("WithField should pass foreign errors through")
	}

	// Root
	deep := fmt.Errorf("outer: %w", Wrap(src, ErrorCodeIO, "mid"))
	if Root(deep) != src {
		t.Fatalf("Root mismatch")
	}
	if Root(nil) != nil {
		t.Fatalf("Root(nil) should be nil")
	}
}

func TestWithOpForeignAndNil(t *testing.T) {
	if WithOp(nil, "load") != nil {
		t.Fatalf("WithOp(nil) should be nil")
	}
	src := stderrs.New("disk gone")
	got := WithOp(src, "report")
	e, ok := As(got)
	if !ok || e.Op() != "report" || e.Code() != ErrorCodeUnknown {
		t.Fatalf("WithOp(foreign) = %+v", e)
	}
	if !stderrs.Is(got, src) {
		t.Fatalf("WithOp(foreign) lost the cause")
	}
}

func TestSentinelSurvivesCopies(t *testing.T) {
	tagged := WithOp(ErrEmptyDataset, "average_siblings")
	if !stderrs.Is(tagged, ErrEmptyDataset) {
		t.Fatalf("errors.Is should match the sentinel after WithOp")
	}
	if stderrs.Is(New(ErrorCodeEmptyDataset, "other"), ErrEmptyDataset) {
		t.Fatalf("different message must not match")
	}
	if !IsCode(tagged, ErrorCodeEmptyDataset) {
		t.Fatalf("IsCode mismatch")
	}
}

func TestWrapIfAndSugar(t *testing.T) {
	if WrapIf(nil, ErrorCodeIO, "x") != nil {
		t.Fatalf("WrapIf(nil) should be nil")
	}
	if !IsCode(WrapIf(stderrs.New("e"), ErrorCodeIO, "x"), ErrorCodeIO) {
		t.Fatalf("WrapIf non-nil should wrap")
	}

	cases := []struct {
		err  error
		code ErrorCode
	}{
		{NotFoundf("nf %d", 1), ErrorCodeNotFound},
		{InvalidArgf("ia %d", 1), ErrorCodeInvalidArgument},
		{JSONErrf("json %d", 1), ErrorCodeJSON},
		{CSVErrf("csv %d", 1), ErrorCodeCSV},
		{Validationf("val %d", 1), ErrorCodeValidation},
		{Timezonef("tz %d", 1), ErrorCodeTimezone},
	}
	for _, c := range cases {
		if CodeOf(c.err) != c.code {
			t.Fatalf("sugar code mismatch: got %v want %v", CodeOf(c.err), c.code)
		}
	}
}
