package services

import (
	"fmt"
	"strings"

	"github.com/yungbote/educraft-backend/internal/ai"
	"github.com/yungbote/educraft-backend/internal/types"
)

// Placeholder policy for optional prompt context. Tests assert on these
// exact strings, so keep them here rather than inline.
const (
	placeholderNotProvided     = "Not provided"
	placeholderNoCourseContext = "No course context provided"
	courseSubjectLinked        = "Linked to subject"
	courseSubjectMissing       = "No subject specified"
	courseGradeLinked          = "Linked to grade"
	courseGradeMissing         = "No grade specified"
)

func orPlaceholder(s string) string {
	if s == "" {
		return placeholderNotProvided
	}
	return s
}

// composeAssignmentPromptMessages renders the single user-role message sent
// to the model. It is deterministic: equal inputs produce byte-identical
// output, and sub-category blocks follow the category's stored order.
func composeAssignmentPromptMessages(input GenerateAssignmentPromptInput, course *types.Course, category *types.AssignmentCategory) []ai.Message {
	var sb strings.Builder

	sb.WriteString("Generate a comprehensive assignment system prompt using the following information:\n\n")

	sb.WriteString("Assignment Basic Information:\n")
	fmt.Fprintf(&sb, "- Title: %q\n", input.Title)
	fmt.Fprintf(&sb, "- Description: %q\n", orPlaceholder(input.Description))
	fmt.Fprintf(&sb, "- Learning Objectives: %q\n\n", orPlaceholder(input.LearningObjectivesDescription))

	if course != nil {
		sb.WriteString("Course Context:\n")
		fmt.Fprintf(&sb, "- Course Title: %q\n", course.Title)
		fmt.Fprintf(&sb, "- Course Description: %q\n", course.Description)
		subject := courseSubjectMissing
		if course.SubjectID != nil {
			subject = courseSubjectLinked
		}
		fmt.Fprintf(&sb, "- Subject: %q\n", subject)
		grade := courseGradeMissing
		if course.GradeID != nil {
			grade = courseGradeLinked
		}
		fmt.Fprintf(&sb, "- Grade Level: %q\n", grade)
		fmt.Fprintf(&sb, "- Course System Prompt: %s\n", course.SystemPrompt)
	} else {
		sb.WriteString(placeholderNoCourseContext)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString("Assignment Category Information:\n")
	fmt.Fprintf(&sb, "- Category Title: %q\n", category.Title)
	fmt.Fprintf(&sb, "- Category Subtitle: %q\n\n", orPlaceholder(category.SubTitle))

	sb.WriteString("Assignment Sub-Categories:\n")
	for _, subCat := range category.SubCategories {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "Sub-Category: %q\n", subCat.Title)
		fmt.Fprintf(&sb, "Description: %q\n", subCat.Description)
		fmt.Fprintf(&sb, "System Prompt: %s\n", subCat.SystemPrompt)
	}
	sb.WriteString("\n")

	sb.WriteString(`Please analyze all the provided information and generate a structured assignment system prompt that:
1. Integrates course context, learning objectives, and assignment requirements
2. Incorporates the specific instructions from relevant sub-categories
3. Maintains educational standards and assessment clarity

Return the response in the following JSON format:
{
  "instructions": "Markdown-formatted detailed instructions for students including all assignment requirements, format, submission guidelines, etc.",
  "rubric": "Markdown-formatted comprehensive grading criteria and assessment framework"
}`)

	return []ai.Message{{Role: ai.RoleUser, Content: sb.String()}}
}
