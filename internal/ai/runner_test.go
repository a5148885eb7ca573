package ai

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/yungbote/educraft-backend/internal/logger"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

type stubBackend struct {
	calls int
	reply string
	err   error
}

func (s *stubBackend) Generate(ctx context.Context, messages []Message) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestRunEmptyMessages(t *testing.T) {
	backend := &stubBackend{reply: "unused"}
	r := NewRunner(testLogger(), map[ModelType]Backend{ModelTypeOpenAI: backend})

	_, err := r.Run(context.Background(), ModelTypeOpenAI, nil)
	if !errors.Is(err, ErrEmptyMessages) {
		t.Fatalf("expected ErrEmptyMessages, got %v", err)
	}
	if backend.calls != 0 {
		t.Fatalf("backend was called %d times for empty input", backend.calls)
	}
}

func TestRunUnknownModelType(t *testing.T) {
	backend := &stubBackend{reply: "unused"}
	r := NewRunner(testLogger(), map[ModelType]Backend{ModelTypeGeminiFlash: backend})

	_, err := r.Run(context.Background(), ModelType("CLAUDE"), []Message{{Role: RoleUser, Content: "hi"}})
	var unsupported *UnsupportedModelTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedModelTypeError, got %v", err)
	}
	if unsupported.Model != ModelType("CLAUDE") {
		t.Fatalf("error carries wrong model type: %s", unsupported.Model)
	}
	if backend.calls != 0 {
		t.Fatalf("backend was called %d times for an unregistered model type", backend.calls)
	}
}

func TestRunDispatchesToSelectedBackend(t *testing.T) {
	openai := &stubBackend{reply: "from openai"}
	gemini := &stubBackend{reply: "from gemini"}
	r := NewRunner(testLogger(), map[ModelType]Backend{
		ModelTypeOpenAI:      openai,
		ModelTypeGeminiFlash: gemini,
	})

	got, err := r.Run(context.Background(), ModelTypeGeminiFlash, []Message{{Role: RoleUser, Content: "hi"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from gemini" {
		t.Fatalf("got %q, want reply from gemini backend", got)
	}
	if openai.calls != 0 || gemini.calls != 1 {
		t.Fatalf("wrong dispatch: openai=%d gemini=%d", openai.calls, gemini.calls)
	}
}

func TestRunWrapsBackendFailure(t *testing.T) {
	cause := errors.New("upstream 500")
	backend := &stubBackend{err: cause}
	r := NewRunner(testLogger(), map[ModelType]Backend{ModelTypeOpenAI: backend})

	_, err := r.Run(context.Background(), ModelTypeOpenAI, []Message{{Role: RoleUser, Content: "hi"}})
	var backendErr *BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("expected BackendError, got %v", err)
	}
	if backendErr.Model != ModelTypeOpenAI {
		t.Fatalf("error carries wrong model type: %s", backendErr.Model)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("BackendError does not unwrap to the cause")
	}
}

func TestRunContextErrorsPassThrough(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{name: "deadline", err: context.DeadlineExceeded},
		{name: "cancelled", err: context.Canceled},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			backend := &stubBackend{err: tc.err}
			r := NewRunner(testLogger(), map[ModelType]Backend{ModelTypeOpenAI: backend})

			_, err := r.Run(context.Background(), ModelTypeOpenAI, []Message{{Role: RoleUser, Content: "hi"}})
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v to pass through, got %v", tc.err, err)
			}
			var backendErr *BackendError
			if errors.As(err, &backendErr) {
				t.Fatalf("context error must not be wrapped in BackendError")
			}
		})
	}
}
