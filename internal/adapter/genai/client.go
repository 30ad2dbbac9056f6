package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

// ErrEmptyAnswer indicates the model produced no usable candidate.
var ErrEmptyAnswer = errors.New("empty generation result")

// TooManyRequestsError represents a rate limiting signal from the generation API.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Client suggests product copy from a product name.
type Client interface {
	Suggest(ctx context.Context, productName string) (*model.ProductSuggestion, error)
}

// NoopClient is used when no API key is configured.
type NoopClient struct{}

func (NoopClient) Suggest(context.Context, string) (*model.ProductSuggestion, error) {
	return nil, domainErrors.ErrAssistDisabled
}

// HTTPClient implements Client against the generateContent REST endpoint.
type HTTPClient struct {
	baseURL    *url.URL
	model      string
	apiKey     string
	storeName  string
	httpClient *http.Client
	logger     *slog.Logger
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type schema struct {
	Type       string            `json:"type"`
	Properties map[string]schema `json:"properties,omitempty"`
	Required   []string          `json:"required,omitempty"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
	ResponseSchema   schema `json:"responseSchema"`
}

type request struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type response struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type suggestion struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	SKU         string `json:"sku"`
}

var suggestionSchema = schema{
	Type: "OBJECT",
	Properties: map[string]schema{
		"description": {Type: "STRING"},
		"category":    {Type: "STRING"},
		"sku":         {Type: "STRING"},
	},
	Required: []string{"description", "category", "sku"},
}

// NewHTTPClient creates a generation client with default timeout.
func NewHTTPClient(baseURL, modelName, apiKey, storeName string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse genai url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("genai url must be absolute")
	}
	return &HTTPClient{
		baseURL:   parsed,
		model:     modelName,
		apiKey:    apiKey,
		storeName: storeName,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

func (c *HTTPClient) prompt(productName string) string {
	return fmt.Sprintf("Você é um redator gourmet para a lanchonete '%s'. "+
		"Crie uma descrição curta (máx 150 caracteres) e apetitosa para o produto: %q. "+
		"Sugira também a categoria e um SKU curto.", c.storeName, productName)
}

// Suggest asks the model for a description, category and SKU as structured JSON.
func (c *HTTPClient) Suggest(ctx context.Context, productName string) (*model.ProductSuggestion, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v1beta/models/", c.model+":generateContent")

	body, err := json.Marshal(request{
		Contents: []content{{Parts: []part{{Text: c.prompt(productName)}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   suggestionSchema,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var data response
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			return nil, err
		}
		return decodeSuggestion(data)
	case http.StatusTooManyRequests:
		return nil, TooManyRequestsError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	default:
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("genai request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return nil, fmt.Errorf("genai error: %s", resp.Status)
	}
}

func decodeSuggestion(data response) (*model.ProductSuggestion, error) {
	if len(data.Candidates) == 0 || len(data.Candidates[0].Content.Parts) == 0 {
		return nil, ErrEmptyAnswer
	}

	text := strings.TrimSpace(data.Candidates[0].Content.Parts[0].Text)
	var s suggestion
	if err := json.Unmarshal([]byte(text), &s); err != nil {
		return nil, fmt.Errorf("decode suggestion: %w", err)
	}
	if s.Description == "" {
		return nil, ErrEmptyAnswer
	}
	return &model.ProductSuggestion{Description: s.Description, Category: s.Category, SKU: s.SKU}, nil
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
