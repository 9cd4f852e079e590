// Package vision is the concrete vision-LLM adapter behind the Extractor
// contract. It is deliberately thin: encode images, call the chat API,
// hand the untrusted text to extract.DecodeRawExtraction.
package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/paradize/restodocs/internal/entity"
	"github.com/paradize/restodocs/internal/extract"
)

type Config struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 90 * time.Second
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// chat API request/response shapes (the subset we use)

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float32       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"` // string or []contentPart
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) Recognize(ctx context.Context, image []byte, hint extract.DocTypeHint) (entity.RawExtraction, error) {
	return c.call(ctx, [][]byte{image}, userInstruction(hint))
}

func (c *Client) RecognizeMulti(ctx context.Context, images [][]byte) (entity.RawExtraction, error) {
	return c.call(ctx, images, "Extract this multi-page document. All images belong to one document; return one JSON object covering all pages combined, with total_pages equal to the number of images.")
}

func (c *Client) call(ctx context.Context, images [][]byte, instruction string) (entity.RawExtraction, error) {
	parts := make([]contentPart, 0, len(images)+1)
	parts = append(parts, contentPart{Type: "text", Text: instruction})
	for _, img := range images {
		parts = append(parts, contentPart{
			Type:     "image_url",
			ImageURL: &imageURL{URL: asDataURL(img)},
		})
	}

	body := chatRequest{
		Model:       c.cfg.Model,
		Temperature: 0,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt()},
			{Role: "user", Content: parts},
		},
	}

	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, err := sendJSON(ctx, c.http, c.cfg.BaseURL, body, headers, c.logger)
	if err != nil {
		return entity.RawExtraction{}, &extract.RecognitionError{Reason: err.Error(), Retryable: true}
	}

	var resp chatResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return entity.RawExtraction{}, &extract.RecognitionError{Reason: "decode chat response: " + err.Error()}
	}
	if len(resp.Choices) == 0 {
		return entity.RawExtraction{}, &extract.RecognitionError{Reason: "empty response", Retryable: true}
	}

	return extract.DecodeRawExtraction([]byte(resp.Choices[0].Message.Content))
}

// asDataURL inlines image bytes for the vision API. Photos from chat
// uploads are JPEG; the content sniff covers PNG scans too.
func asDataURL(img []byte) string {
	mt := http.DetectContentType(img)
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(img)
}
