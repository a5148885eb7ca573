package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/educraft-backend/internal/ai"
	"github.com/yungbote/educraft-backend/internal/types"
)

func composeTestCategory() *types.AssignmentCategory {
	return &types.AssignmentCategory{
		ID:       uuid.New(),
		Title:    "Essay",
		SubTitle: "Persuasive writing",
		SubCategories: []*types.AssignmentSubCategory{
			{ID: uuid.New(), Title: "Thesis", Description: "Clear claim", SystemPrompt: "Require a one-sentence thesis."},
			{ID: uuid.New(), Title: "Evidence", Description: "Cited sources", SystemPrompt: "Require two cited sources."},
			{ID: uuid.New(), Title: "Structure", Description: "Five paragraphs", SystemPrompt: "Require intro, body, conclusion."},
		},
	}
}

func TestComposeSingleUserMessage(t *testing.T) {
	input := GenerateAssignmentPromptInput{Title: "Climate Essay"}
	messages := composeAssignmentPromptMessages(input, nil, composeTestCategory())

	if len(messages) != 1 {
		t.Fatalf("expected one message, got %d", len(messages))
	}
	if messages[0].Role != ai.RoleUser {
		t.Fatalf("expected user role, got %q", messages[0].Role)
	}
	if messages[0].Content == "" {
		t.Fatalf("message content is empty")
	}
}

func TestComposeDeterministic(t *testing.T) {
	input := GenerateAssignmentPromptInput{
		Title:                         "Climate Essay",
		Description:                   "Argue a position on climate policy",
		LearningObjectivesDescription: "Persuasive argumentation",
	}
	course := &types.Course{Title: "Env Science", Description: "Intro course", SystemPrompt: "High school level."}
	category := composeTestCategory()

	first := composeAssignmentPromptMessages(input, course, category)
	second := composeAssignmentPromptMessages(input, course, category)
	if first[0].Content != second[0].Content {
		t.Fatalf("equal inputs produced different prompts")
	}
}

func TestComposeSubCategoryOrder(t *testing.T) {
	category := composeTestCategory()
	messages := composeAssignmentPromptMessages(GenerateAssignmentPromptInput{Title: "Essay"}, nil, category)
	content := messages[0].Content

	var prev int
	for _, sc := range category.SubCategories {
		idx := strings.Index(content, "Sub-Category: "+`"`+sc.Title+`"`)
		if idx < 0 {
			t.Fatalf("sub-category %q missing from prompt", sc.Title)
		}
		if idx < prev {
			t.Fatalf("sub-category %q appears out of stored order", sc.Title)
		}
		prev = idx
	}
}

func TestComposeZeroSubCategories(t *testing.T) {
	category := composeTestCategory()
	category.SubCategories = nil
	messages := composeAssignmentPromptMessages(GenerateAssignmentPromptInput{Title: "Essay"}, nil, category)
	content := messages[0].Content

	if !strings.Contains(content, "Assignment Sub-Categories:") {
		t.Fatalf("sub-categories section header missing")
	}
	if strings.Contains(content, "Sub-Category: ") {
		t.Fatalf("unexpected sub-category block with an empty list")
	}
}

func TestComposePlaceholders(t *testing.T) {
	subjectID := uuid.New()

	cases := []struct {
		name    string
		input   GenerateAssignmentPromptInput
		course  *types.Course
		want    []string
		exclude []string
	}{
		{
			name:   "missing optional fields",
			input:  GenerateAssignmentPromptInput{Title: "Essay"},
			course: nil,
			want:   []string{placeholderNotProvided, placeholderNoCourseContext},
		},
		{
			name:    "course without subject or grade",
			input:   GenerateAssignmentPromptInput{Title: "Essay"},
			course:  &types.Course{Title: "Env Science", Description: "Intro", SystemPrompt: "hs"},
			want:    []string{courseSubjectMissing, courseGradeMissing},
			exclude: []string{placeholderNoCourseContext},
		},
		{
			name:    "course with subject linked",
			input:   GenerateAssignmentPromptInput{Title: "Essay"},
			course:  &types.Course{Title: "Env Science", Description: "Intro", SystemPrompt: "hs", SubjectID: &subjectID},
			want:    []string{courseSubjectLinked, courseGradeMissing},
			exclude: []string{courseSubjectMissing},
		},
		{
			name: "all fields provided",
			input: GenerateAssignmentPromptInput{
				Title:                         "Essay",
				Description:                   "desc",
				LearningObjectivesDescription: "objectives",
			},
			course:  &types.Course{Title: "Env Science", Description: "Intro", SystemPrompt: "hs"},
			exclude: []string{placeholderNotProvided, placeholderNoCourseContext},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			messages := composeAssignmentPromptMessages(tc.input, tc.course, composeTestCategory())
			content := messages[0].Content
			for _, want := range tc.want {
				if !strings.Contains(content, want) {
					t.Fatalf("prompt missing %q", want)
				}
			}
			for _, excluded := range tc.exclude {
				if strings.Contains(content, excluded) {
					t.Fatalf("prompt unexpectedly contains %q", excluded)
				}
			}
		})
	}
}
