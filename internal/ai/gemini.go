package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/yungbote/educraft-backend/internal/logger"
)

type geminiBackend struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiBackend builds the generateContent backend. Configuration comes
// from GOOGLE_GEN_API_KEY, GEMINI_BASE_URL and GEMINI_MODEL.
func NewGeminiBackend(baseLog *logger.Logger) (Backend, error) {
	apiKey := os.Getenv("GOOGLE_GEN_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("missing GOOGLE_GEN_API_KEY")
	}

	baseURL := os.Getenv("GEMINI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &geminiBackend{
		log:        baseLog.With("service", "GeminiBackend"),
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{},
	}, nil
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type generateContentRequest struct {
	Contents []geminiContent `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// geminiRole maps chat roles onto Gemini's two-role scheme: anything the
// model said is "model", everything else is "user".
func geminiRole(role string) string {
	if role == RoleAssistant {
		return "model"
	}
	return "user"
}

func (b *geminiBackend) Generate(ctx context.Context, messages []Message) (string, error) {
	contents := make([]geminiContent, 0, len(messages))
	for _, msg := range messages {
		contents = append(contents, geminiContent{
			Role:  geminiRole(msg.Role),
			Parts: []geminiPart{{Text: msg.Content}},
		})
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(generateContentRequest{Contents: contents}); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", b.baseURL, b.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("x-goog-api-key", b.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return "", readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("gemini http %d: %s", resp.StatusCode, string(raw))
	}

	var out generateContentResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("gemini decode error: %w; raw=%s", err, string(raw))
	}
	if len(out.Candidates) == 0 {
		return "", fmt.Errorf("gemini response contained no candidates")
	}

	var sb strings.Builder
	for _, part := range out.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini response contained no text parts")
	}

	return sb.String(), nil
}
