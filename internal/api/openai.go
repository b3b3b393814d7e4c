package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"interview-analyzer/internal/config"
)

// OpenAI API структуры
type OpenAIRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIResponse struct {
	Choices []Choice  `json:"choices"`
	Usage   Usage     `json:"usage"`
	Error   *APIError `json:"error,omitempty"`
}

type Choice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

// CallOptions задает параметры одного обращения к модели
type CallOptions struct {
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// OpenAIClient выполняет запросы к chat completions API.
// Ключ читается один раз при создании клиента и больше не перечитывается.
// Пул соединений http.Client безопасен для конкурентного использования.
type OpenAIClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

// NewOpenAIClient создает клиент OpenAI API
func NewOpenAIClient(cfg *config.OpenAIConfig, logger *zap.Logger) *OpenAIClient {
	return &OpenAIClient{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		client: &http.Client{
			// Страховочный таймаут; рабочий лимит задается контекстом в Call
			Timeout: cfg.RequestTimeout + 5*time.Second,
		},
		logger: logger,
	}
}

// Model возвращает имя используемой модели
func (c *OpenAIClient) Model() string {
	return c.model
}

// Call выполняет один запрос к модели и возвращает текст первого ответа.
// Ретраев нет: лимиты провайдера и бюджет задержки делают их небезопасными.
func (c *OpenAIClient) Call(ctx context.Context, prompt string, opts CallOptions) (string, error) {
	request := OpenAIRequest{
		Model: c.model,
		Messages: []Message{
			{
				Role:    "user",
				Content: prompt,
			},
		},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", newCallError(ErrUnreachable, fmt.Sprintf("ошибка сериализации запроса: %v", err), err)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", newCallError(ErrUnreachable, fmt.Sprintf("ошибка создания запроса: %v", err), err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	started := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", newCallError(ErrTimeout, "превышен таймаут запроса к OpenAI", err)
		}
		return "", newCallError(ErrUnreachable, fmt.Sprintf("ошибка выполнения запроса: %v", err), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newCallError(ErrUnreachable, fmt.Sprintf("ошибка чтения ответа: %v", err), err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", newCallError(ErrUnauthorized, fmt.Sprintf("HTTP %d: неверный или отозванный API ключ", resp.StatusCode), nil)
	}

	if resp.StatusCode != http.StatusOK {
		return "", newCallError(ErrProvider, fmt.Sprintf("HTTP ошибка %d: %s", resp.StatusCode, truncate(string(body), 300)), nil)
	}

	var openaiResp OpenAIResponse
	err = json.Unmarshal(body, &openaiResp)
	if err != nil {
		return "", newCallError(ErrEmptyResponse, fmt.Sprintf("ошибка парсинга ответа: %v", err), err)
	}

	if openaiResp.Error != nil {
		return "", newCallError(ErrProvider, fmt.Sprintf("OpenAI API ошибка: %s", openaiResp.Error.Message), nil)
	}

	if len(openaiResp.Choices) == 0 || openaiResp.Choices[0].Message.Content == "" {
		return "", newCallError(ErrEmptyResponse, "пустой ответ от OpenAI", nil)
	}

	c.logger.Debug("запрос к OpenAI выполнен",
		zap.String("model", c.model),
		zap.Duration("latency", time.Since(started)),
		zap.Int("prompt_tokens", openaiResp.Usage.PromptTokens),
		zap.Int("completion_tokens", openaiResp.Usage.CompletionTokens),
	)

	return openaiResp.Choices[0].Message.Content, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
