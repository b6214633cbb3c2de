package score

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrScore wraps every failure of a scoring call: transport errors, non-2xx
// responses, malformed bodies, and out-of-range values.
var ErrScore = errors.New("score fragment")

const (
	defaultUserAgent = "fraglens/0.1"
	requestTimeout   = 120 * time.Second
	maxAnswerTokens  = 10

	systemPrompt = "You are an evaluation model. Respond only with a floating point number " +
		"from 0 to 1 with 3 decimal places. It should represent the probability that the " +
		"question following in the system prompt is true for the code in the user prompt."
)

// Client talks to an OpenAI-compatible chat completions endpoint and turns
// fragment text into a relevance score. It performs no retries; callers issue
// one request at a time.
type Client struct {
	endpoint    *url.URL
	http        *http.Client
	userAgent   string
	model       string
	temperature float64
	question    string
}

// NewClient validates the endpoint URL and builds a scoring client bound to
// one question.
func NewClient(endpoint, model string, temperature float64, question string) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("endpoint %q: unsupported scheme %q", endpoint, u.Scheme)
	}
	return &Client{
		endpoint: u,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent:   defaultUserAgent,
		model:       model,
		temperature: temperature,
		question:    question,
	}, nil
}

// Score submits the fragment text for evaluation and returns a value in [0,1].
func (c *Client) Score(ctx context.Context, fragmentText string) (float64, error) {
	if c == nil {
		return 0, fmt.Errorf("%w: client is nil", ErrScore)
	}
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: fmt.Sprintf("%s Question: %s", systemPrompt, c.question)},
			{Role: "user", Content: fragmentText},
		},
		Temperature: c.temperature,
		MaxTokens:   maxAnswerTokens,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("%w: encode request: %v", ErrScore, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("%w: create request: %v", ErrScore, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: execute request: %v", ErrScore, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return 0, fmt.Errorf("%w: endpoint returned status %d", ErrScore, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("%w: decode response: %v", ErrScore, err)
	}
	if len(parsed.Choices) == 0 {
		return 0, fmt.Errorf("%w: no choices in response", ErrScore)
	}
	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	value, err := strconv.ParseFloat(content, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parse %q as score: %v", ErrScore, content, err)
	}
	if value < 0 || value > 1 {
		return 0, fmt.Errorf("%w: value %v outside [0,1]", ErrScore, value)
	}
	return value, nil
}
