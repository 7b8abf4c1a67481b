package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/davidgrezoski/vitaflow/config"
)

// ErrAIBackendUnavailable means every configured model failed. Callers either
// surface a retryable error or fall back to a canned offline payload.
var ErrAIBackendUnavailable = errors.New("no generative backend available")

// ChatTurn is one prior message of a conversation, in API order.
type ChatTurn struct {
	Role    string // "user" | "assistant"
	Content string
}

// GeminiService calls the Gemini REST API with an ordered model fallback
// list. Each attempt is independent and sequential; a timeout counts as a
// backend failure and advances to the next model. Generation is a pure query,
// so retrying is always safe.
type GeminiService struct {
	client *http.Client
	apiKey string
	models []string
}

func NewGeminiService() *GeminiService {
	return &GeminiService{
		client: &http.Client{Timeout: 15 * time.Second},
		apiKey: os.Getenv("GEMINI_API_KEY"),
		models: config.GeminiModels,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiService) call(ctx context.Context, model string, reqBody geminiRequest) (string, error) {
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal gemini payload: %w", err)
	}

	u := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		model, g.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call gemini: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(body))
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("failed to parse gemini JSON: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}

// generate runs the request against each model in order until one answers.
func (g *GeminiService) generate(ctx context.Context, reqBody geminiRequest) (string, error) {
	if g.apiKey == "" {
		return "", ErrAIBackendUnavailable
	}

	var lastErr error
	for _, model := range g.models {
		out, err := g.call(ctx, model, reqBody)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		log.Printf("gemini model %s failed: %v", model, err)
		lastErr = err
	}
	return "", fmt.Errorf("%w: %v", ErrAIBackendUnavailable, lastErr)
}

// GenerateText sends a single prompt and returns the raw model output.
func (g *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	})
}

// Chat sends a system persona plus prior turns plus the current message.
func (g *GeminiService) Chat(ctx context.Context, systemPrompt string, history []ChatTurn, message string) (string, error) {
	req := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemPrompt}}},
	}
	for _, turn := range history {
		role := "user"
		if turn.Role == "assistant" {
			role = "model"
		}
		req.Contents = append(req.Contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: turn.Content}},
		})
	}
	req.Contents = append(req.Contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: message}},
	})

	return g.generate(ctx, req)
}
