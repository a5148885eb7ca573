package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/yungbote/educraft-backend/internal/logger"
)

// Message roles mirror the chat conventions every configured backend accepts.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ModelType identifies a configured generation backend.
type ModelType string

const (
	ModelTypeOpenAI      ModelType = "OPENAI"
	ModelTypeGeminiFlash ModelType = "GEMINI_FLASH"
)

// ErrEmptyMessages is returned before any dispatch when the message slice is
// empty.
var ErrEmptyMessages = errors.New("message slice must be non-empty")

// UnsupportedModelTypeError is returned before any network IO when the
// requested model type has no registered backend.
type UnsupportedModelTypeError struct {
	Model ModelType
}

func (e *UnsupportedModelTypeError) Error() string {
	return fmt.Sprintf("unsupported model type: %s", e.Model)
}

// BackendError wraps a provider failure during generation.
type BackendError struct {
	Model ModelType
	Err   error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Model, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Backend is a single text-generation provider. Implementations make exactly
// one attempt per call; retry policy belongs to callers.
type Backend interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}

// Runner dispatches a conversation to the backend selected by model type and
// returns its single textual completion.
type Runner interface {
	Run(ctx context.Context, model ModelType, messages []Message) (string, error)
}

type runner struct {
	log      *logger.Logger
	backends map[ModelType]Backend
}

func NewRunner(baseLog *logger.Logger, backends map[ModelType]Backend) Runner {
	return &runner{
		log:      baseLog.With("service", "ModelRunner"),
		backends: backends,
	}
}

func (r *runner) Run(ctx context.Context, model ModelType, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", ErrEmptyMessages
	}

	backend, ok := r.backends[model]
	if !ok {
		return "", &UnsupportedModelTypeError{Model: model}
	}

	text, err := backend.Generate(ctx, messages)
	if err != nil {
		// Context errors pass through so callers can tell a timeout or a
		// cancellation apart from a provider failure.
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", err
		}
		r.log.Error("Backend generation failed", "model", model, "error", err)
		return "", &BackendError{Model: model, Err: err}
	}

	return text, nil
}
