package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ExecRequest is the outbound judging request. Code and grading text
// travel base64-encoded so they survive transport as text.
type ExecRequest struct {
	SourceCode     string `json:"source_code"`
	LanguageID     int    `json:"language_id"`
	CallbackURL    string `json:"callback_url"`
	ExpectedOutput string `json:"expected_output"`
	Stdin          string `json:"stdin"`
}

// ExecClient sends a judging request to the external execution engine
// and returns the correlation token it assigned.
type ExecClient interface {
	SubmitExec(ctx context.Context, req ExecRequest) (token string, err error)
}

type execHttpClient struct {
	submitURL string
	httpc     *http.Client
}

// NewExecHttpClient builds the production client for a Judge0-compatible
// engine. endpoint is the engine base URL.
func NewExecHttpClient(endpoint string) ExecClient {
	return &execHttpClient{
		submitURL: endpoint + "/submissions?base64_encoded=true",
		httpc:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *execHttpClient) SubmitExec(ctx context.Context, req ExecRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal exec request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.submitURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build exec request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to reach execution engine: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("execution engine returned status %d", resp.StatusCode)
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode exec response: %w", err)
	}
	if payload.Token == "" {
		return "", fmt.Errorf("execution engine response carries no token")
	}

	return payload.Token, nil
}
