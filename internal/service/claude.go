package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yourusername/roleradar-api/internal/model"
)

// ClaudeClient wraps the Anthropic Messages API
type ClaudeClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewClaudeClient(apiKey, baseURL string) *ClaudeClient {
	return &ClaudeClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ── Anthropic API request/response types ──────────────

type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	System    string          `json:"system,omitempty"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// ── Company profile inference ─────────────────────────

const inferSystemPrompt = `You are a company profiler. Given a company website, infer the industry and the most representative job role that company hires for.

Always respond with ONLY a JSON object (no markdown, no backticks, no explanation) with these fields:
{
  "industry": "Primary industry of the company (e.g. Healthcare, Finance, Media)",
  "department": "Department the role belongs to",
  "subDepartment": "Sub-department if applicable, empty string if not",
  "jobRole": "The single most representative job role this company hires for",
  "skills": ["skill1", "skill2"],
  "tasks": ["task1", "task2"],
  "knowledgeAreas": ["area1", "area2"],
  "reasoning": "One or two sentences on how you reached this conclusion",
  "confidence": 75
}

Rules:
- Infer from the website content when provided; otherwise infer from the URL alone.
- industry and jobRole must never be empty.
- skills, tasks and knowledgeAreas each get 3-6 short free-text entries.
- confidence is an integer 0-100 reflecting how sure you are.
- Don't invent specifics the site doesn't support — lower the confidence instead.`

// InferCompanyProfile asks Claude for an industry/job-role guess for the
// company behind websiteURL. Single attempt, no retry; callers fall back to
// the offline heuristic on any error.
func (c *ClaudeClient) InferCompanyProfile(ctx context.Context, websiteURL string) (*model.CompanyInference, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("Claude API key not configured")
	}

	userContent := "Company website: " + websiteURL

	// Give the model the page text when we can get it. A fetch failure is
	// fine — the URL alone is often enough.
	if content, err := FetchURLContent(ctx, websiteURL); err != nil {
		log.Debug().Err(err).Str("url", websiteURL).Msg("Could not fetch website content, inferring from URL alone")
	} else {
		if len(content) > 50000 {
			content = content[:50000]
		}
		userContent += "\n\nPage content:\n" + content
	}

	reqBody := claudeRequest{
		Model:     "claude-sonnet-4-5-20250929",
		MaxTokens: 1500,
		System:    inferSystemPrompt,
		Messages: []claudeMessage{
			{Role: "user", Content: "Profile this company and return the JSON:\n\n" + userContent},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/messages", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling Claude API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Claude API returned %d: %s", resp.StatusCode, string(body))
	}

	var claudeResp claudeResponse
	if err := json.Unmarshal(body, &claudeResp); err != nil {
		return nil, fmt.Errorf("parsing Claude response: %w", err)
	}

	if len(claudeResp.Content) == 0 {
		return nil, fmt.Errorf("empty response from Claude")
	}

	text := strings.TrimSpace(claudeResp.Content[0].Text)
	text = stripCodeFences(text)

	var inference model.CompanyInference
	if err := json.Unmarshal([]byte(text), &inference); err != nil {
		return nil, fmt.Errorf("parsing inference: %w (raw: %s)", err, text)
	}

	// Structurally invalid output gets the same treatment as a failed call.
	if strings.TrimSpace(inference.Industry) == "" || strings.TrimSpace(inference.JobRole) == "" {
		return nil, fmt.Errorf("incomplete inference: industry=%q jobRole=%q", inference.Industry, inference.JobRole)
	}

	if inference.Confidence < 0 {
		inference.Confidence = 0
	}
	if inference.Confidence > 100 {
		inference.Confidence = 100
	}

	return &inference, nil
}

// ── Fetch URL content ─────────────────────────────────

// FetchURLContent retrieves the text content of a URL for inference
func FetchURLContent(ctx context.Context, url string) (string, error) {
	client := &http.Client{
		Timeout: 15 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	// Set a browser-like user agent so company sites don't block us
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("URL returned status %d", resp.StatusCode)
	}

	// Limit to 100KB to avoid massive pages
	body, err := io.ReadAll(io.LimitReader(resp.Body, 100*1024))
	if err != nil {
		return "", fmt.Errorf("reading URL content: %w", err)
	}

	return string(body), nil
}

// stripCodeFences removes markdown ```json ... ``` wrappers
func stripCodeFences(text string) string {
	if strings.HasPrefix(text, "```") {
		if idx := strings.Index(text, "\n"); idx != -1 {
			text = text[idx+1:]
		}
		if idx := strings.LastIndex(text, "```"); idx != -1 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}
	return text
}
