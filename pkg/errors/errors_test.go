package errors

import (
	"bytes"
	stderrors "errors"
	"log"
	"strings"
	"testing"
	"time"
)

func TestUIErrorString(t *testing.T) {
	err := &UIError{
		Op:   "theme.Load",
		Kind: KindConfig,
		Err:  stderrors.New("bad color"),
	}
	if got, want := err.Error(), "theme.Load [config]: bad color"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestUIErrorWithView(t *testing.T) {
	err := &UIError{
		Op:   "engine.Frame",
		Kind: KindLayout,
		View: "h_stack",
		Err:  stderrors.New("boom"),
	}
	if got := err.Error(); !strings.Contains(got, "view=h_stack") {
		t.Errorf("error string %q should contain view name", got)
	}
}

func TestUIErrorUnwrap(t *testing.T) {
	inner := stderrors.New("inner")
	err := &UIError{Op: "op", Err: inner}
	if !stderrors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindFont, "font"},
		{KindInit, "init"},
		{KindLayout, "layout"},
		{KindPaint, "paint"},
		{KindInput, "input"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "engine.Tap"
	if got, want := err.Error(), "panic in engine.Tap: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestSwear(t *testing.T) {
	Swear(true, "test.op", "never")

	defer func() {
		r := recover()
		ae, ok := r.(*AssertionError)
		if !ok {
			t.Fatalf("recovered %T, want *AssertionError", r)
		}
		if ae.Op != "test.op" {
			t.Errorf("Op = %q", ae.Op)
		}
		if ae.Message != "max_w: 3 w: 5" {
			t.Errorf("Message = %q", ae.Message)
		}
		if !IsAssertion(r) {
			t.Error("IsAssertion = false")
		}
	}()
	Swear(false, "test.op", "max_w: %d w: %d", 3, 5)
}

func TestReport(t *testing.T) {
	var captured *UIError
	handler := &testHandler{onError: func(err *UIError) { captured = err }}
	old := DefaultHandler
	SetHandler(handler)
	defer SetHandler(old)

	Report(&UIError{Op: "test.op", Kind: KindInit, Err: stderrors.New("x")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	Report(nil)
}

func TestRecoverSwallowsPlainPanic(t *testing.T) {
	var captured *PanicError
	old := DefaultHandler
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(old)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Op != "test.recover" || captured.Value != "intentional test panic" {
		t.Errorf("captured = %+v", captured)
	}
	if captured.Fatal() {
		t.Error("plain panic should not be fatal")
	}
}

func TestRecoverRethrowsAssertion(t *testing.T) {
	var captured *PanicError
	old := DefaultHandler
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(old)

	defer func() {
		r := recover()
		if !IsAssertion(r) {
			t.Fatalf("expected assertion to propagate, got %v", r)
		}
		if captured == nil || !captured.Fatal() {
			t.Error("assertion should be reported as fatal before re-panicking")
		}
	}()
	func() {
		defer Recover("test.recover")
		Swear(false, "test.op", "reparenting")
	}()
	t.Fatal("unreachable")
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Verbose: true, Logger: log.New(&buf, "", 0)}
	h.HandleError(&UIError{Op: "nls.Load", Kind: KindConfig, Err: stderrors.New("missing")})
	h.HandlePanic(&PanicError{Op: "engine.Key", Value: "boom", StackTrace: "frame"})
	out := buf.String()
	for _, want := range []string{"[ui error] nls.Load [config]", "[ui panic] engine.Key: boom", "Stack trace:"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

type testHandler struct {
	onError func(*UIError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *UIError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
