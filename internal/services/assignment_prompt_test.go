package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yungbote/educraft-backend/internal/ai"
	"github.com/yungbote/educraft-backend/internal/logger"
	pkgerrors "github.com/yungbote/educraft-backend/internal/pkg/errors"
	"github.com/yungbote/educraft-backend/internal/repos"
	"github.com/yungbote/educraft-backend/internal/types"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

const validReply = `{"instructions": "do the work", "rubric": "grade the work"}`

type stubCategoryRepo struct {
	repos.AssignmentCategoryRepo
	category *types.AssignmentCategory
	err      error
	calls    int
}

func (s *stubCategoryRepo) GetByIDWithSubCategories(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) (*types.AssignmentCategory, error) {
	s.calls++
	return s.category, s.err
}

type stubCourseRepo struct {
	repos.CourseRepo
	courses []*types.Course
	err     error
	calls   int
}

func (s *stubCourseRepo) GetByIDs(ctx context.Context, tx *gorm.DB, courseIDs []uuid.UUID) ([]*types.Course, error) {
	s.calls++
	return s.courses, s.err
}

type stubRunner struct {
	reply       string
	err         error
	waitForCtx  bool
	calls       int
	gotModel    ai.ModelType
	gotMessages []ai.Message
}

func (s *stubRunner) Run(ctx context.Context, model ai.ModelType, messages []ai.Message) (string, error) {
	s.calls++
	s.gotModel = model
	s.gotMessages = messages
	if s.waitForCtx {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newPromptService(runner ai.Runner, courseRepo repos.CourseRepo, categoryRepo repos.AssignmentCategoryRepo, cfg AssignmentPromptConfig) AssignmentPromptService {
	if cfg.ModelType == "" {
		cfg.ModelType = ai.ModelTypeGeminiFlash
	}
	return NewAssignmentPromptService(testLogger(), cfg, runner, courseRepo, categoryRepo)
}

func TestGenerateSystemPromptInvalidInput(t *testing.T) {
	categoryRepo := &stubCategoryRepo{category: composeTestCategory()}
	runner := &stubRunner{reply: validReply}
	svc := newPromptService(runner, &stubCourseRepo{}, categoryRepo, AssignmentPromptConfig{})

	cases := []struct {
		name  string
		input GenerateAssignmentPromptInput
	}{
		{name: "blank title", input: GenerateAssignmentPromptInput{Title: "  ", AssignmentCategoryID: uuid.New()}},
		{name: "nil category id", input: GenerateAssignmentPromptInput{Title: "Essay"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.GenerateSystemPrompt(context.Background(), tc.input)
			if !errors.Is(err, pkgerrors.ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
	if categoryRepo.calls != 0 || runner.calls != 0 {
		t.Fatalf("invalid input must fail before any lookup or backend call")
	}
}

func TestGenerateSystemPromptCategoryNotFound(t *testing.T) {
	courseID := uuid.New()
	categoryRepo := &stubCategoryRepo{category: nil}
	courseRepo := &stubCourseRepo{}
	runner := &stubRunner{reply: validReply}
	svc := newPromptService(runner, courseRepo, categoryRepo, AssignmentPromptConfig{})

	_, err := svc.GenerateSystemPrompt(context.Background(), GenerateAssignmentPromptInput{
		Title:                "Essay",
		CourseID:             &courseID,
		AssignmentCategoryID: uuid.New(),
	})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if courseRepo.calls != 0 {
		t.Fatalf("course lookup ran after the category failed to resolve")
	}
	if runner.calls != 0 {
		t.Fatalf("backend ran after the category failed to resolve")
	}
}

func TestGenerateSystemPromptCategoryStoreError(t *testing.T) {
	categoryRepo := &stubCategoryRepo{err: errors.New("connection refused")}
	runner := &stubRunner{reply: validReply}
	svc := newPromptService(runner, &stubCourseRepo{}, categoryRepo, AssignmentPromptConfig{})

	_, err := svc.GenerateSystemPrompt(context.Background(), GenerateAssignmentPromptInput{
		Title:                "Essay",
		AssignmentCategoryID: uuid.New(),
	})
	if err == nil || errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("store error must surface as its own failure, got %v", err)
	}
	if runner.calls != 0 {
		t.Fatalf("backend ran after a store failure")
	}
}

func TestGenerateSystemPromptCourseSoftMiss(t *testing.T) {
	courseID := uuid.New()
	categoryRepo := &stubCategoryRepo{category: composeTestCategory()}
	courseRepo := &stubCourseRepo{courses: nil}
	runner := &stubRunner{reply: validReply}
	svc := newPromptService(runner, courseRepo, categoryRepo, AssignmentPromptConfig{})

	got, err := svc.GenerateSystemPrompt(context.Background(), GenerateAssignmentPromptInput{
		Title:                "Essay",
		CourseID:             &courseID,
		AssignmentCategoryID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("unresolved course must not fail the pipeline: %v", err)
	}
	if got == nil || got.Instructions == "" {
		t.Fatalf("missing payload on soft course miss")
	}
	if courseRepo.calls != 1 {
		t.Fatalf("course lookup ran %d times, want 1", courseRepo.calls)
	}
	if len(runner.gotMessages) != 1 || !strings.Contains(runner.gotMessages[0].Content, placeholderNoCourseContext) {
		t.Fatalf("prompt did not degrade to the no-course placeholder")
	}
}

func TestGenerateSystemPromptCourseStoreError(t *testing.T) {
	courseID := uuid.New()
	categoryRepo := &stubCategoryRepo{category: composeTestCategory()}
	courseRepo := &stubCourseRepo{err: errors.New("connection refused")}
	runner := &stubRunner{reply: validReply}
	svc := newPromptService(runner, courseRepo, categoryRepo, AssignmentPromptConfig{})

	_, err := svc.GenerateSystemPrompt(context.Background(), GenerateAssignmentPromptInput{
		Title:                "Essay",
		CourseID:             &courseID,
		AssignmentCategoryID: uuid.New(),
	})
	if err == nil {
		t.Fatalf("course store failure must be fatal, not a soft miss")
	}
	if runner.calls != 0 {
		t.Fatalf("backend ran after a course store failure")
	}
}

func TestGenerateSystemPromptUnsupportedModelType(t *testing.T) {
	categoryRepo := &stubCategoryRepo{category: composeTestCategory()}
	// A real runner with no registered backends rejects the configured type
	// after resolution but before any network IO.
	runner := ai.NewRunner(testLogger(), map[ai.ModelType]ai.Backend{})
	svc := newPromptService(runner, &stubCourseRepo{}, categoryRepo, AssignmentPromptConfig{ModelType: ai.ModelTypeOpenAI})

	_, err := svc.GenerateSystemPrompt(context.Background(), GenerateAssignmentPromptInput{
		Title:                "Essay",
		AssignmentCategoryID: uuid.New(),
	})
	var unsupported *ai.UnsupportedModelTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedModelTypeError, got %v", err)
	}
	if categoryRepo.calls != 1 {
		t.Fatalf("category must resolve before the model type is checked")
	}
}

func TestGenerateSystemPromptTimeout(t *testing.T) {
	categoryRepo := &stubCategoryRepo{category: composeTestCategory()}
	runner := &stubRunner{waitForCtx: true}
	svc := newPromptService(runner, &stubCourseRepo{}, categoryRepo, AssignmentPromptConfig{GenerateTimeout: 20 * time.Millisecond})

	_, err := svc.GenerateSystemPrompt(context.Background(), GenerateAssignmentPromptInput{
		Title:                "Essay",
		AssignmentCategoryID: uuid.New(),
	})
	if !errors.Is(err, ErrGenerationTimeout) {
		t.Fatalf("expected ErrGenerationTimeout, got %v", err)
	}
}

func TestGenerateSystemPromptCallerCancelled(t *testing.T) {
	categoryRepo := &stubCategoryRepo{category: composeTestCategory()}
	runner := &stubRunner{waitForCtx: true}
	svc := newPromptService(runner, &stubCourseRepo{}, categoryRepo, AssignmentPromptConfig{GenerateTimeout: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GenerateSystemPrompt(ctx, GenerateAssignmentPromptInput{
		Title:                "Essay",
		AssignmentCategoryID: uuid.New(),
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if errors.Is(err, ErrGenerationTimeout) {
		t.Fatalf("caller cancellation must not be reported as a timeout")
	}
}

func TestGenerateSystemPromptMalformedReply(t *testing.T) {
	categoryRepo := &stubCategoryRepo{category: composeTestCategory()}
	runner := &stubRunner{reply: "Sure! Here is your assignment."}
	svc := newPromptService(runner, &stubCourseRepo{}, categoryRepo, AssignmentPromptConfig{})

	_, err := svc.GenerateSystemPrompt(context.Background(), GenerateAssignmentPromptInput{
		Title:                "Essay",
		AssignmentCategoryID: uuid.New(),
	})
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}
}

func TestGenerateSystemPromptSuccess(t *testing.T) {
	courseID := uuid.New()
	categoryRepo := &stubCategoryRepo{category: composeTestCategory()}
	courseRepo := &stubCourseRepo{courses: []*types.Course{{
		ID:           courseID,
		Title:        "Env Science",
		Description:  "Intro course",
		SystemPrompt: "High school level.",
	}}}
	runner := &stubRunner{reply: validReply}
	svc := newPromptService(runner, courseRepo, categoryRepo, AssignmentPromptConfig{ModelType: ai.ModelTypeGeminiFlash})

	got, err := svc.GenerateSystemPrompt(context.Background(), GenerateAssignmentPromptInput{
		Title:                "Essay",
		CourseID:             &courseID,
		AssignmentCategoryID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Instructions != "do the work" || got.Rubric != "grade the work" {
		t.Fatalf("payload mismatch: %+v", got)
	}
	if runner.gotModel != ai.ModelTypeGeminiFlash {
		t.Fatalf("wrong model type dispatched: %s", runner.gotModel)
	}
	if len(runner.gotMessages) != 1 || !strings.Contains(runner.gotMessages[0].Content, "Env Science") {
		t.Fatalf("composed prompt is missing the resolved course context")
	}
}
