package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yungbote/educraft-backend/internal/types"
)

// MalformedResponseError reports a model reply that could not be accepted as
// an assignment system prompt. Raw carries the reply for diagnosis; it must
// never be persisted as the artifact.
type MalformedResponseError struct {
	Raw    string
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed generation response: %s", e.Reason)
}

// parseAssignmentSystemPrompt interprets the backend's reply as the
// two-field payload. There is no partial recovery: a reply missing either
// field, or carrying an empty one, is rejected outright.
func parseAssignmentSystemPrompt(raw string) (*types.AssignmentSystemPrompt, error) {
	var payload struct {
		Instructions *string `json:"instructions"`
		Rubric       *string `json:"rubric"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Reason: fmt.Sprintf("not valid JSON: %v", err)}
	}
	if payload.Instructions == nil {
		return nil, &MalformedResponseError{Raw: raw, Reason: "missing instructions field"}
	}
	if payload.Rubric == nil {
		return nil, &MalformedResponseError{Raw: raw, Reason: "missing rubric field"}
	}
	if strings.TrimSpace(*payload.Instructions) == "" {
		return nil, &MalformedResponseError{Raw: raw, Reason: "instructions field is empty"}
	}
	if strings.TrimSpace(*payload.Rubric) == "" {
		return nil, &MalformedResponseError{Raw: raw, Reason: "rubric field is empty"}
	}

	return &types.AssignmentSystemPrompt{
		Instructions: *payload.Instructions,
		Rubric:       *payload.Rubric,
	}, nil
}
