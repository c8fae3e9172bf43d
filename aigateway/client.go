// Package aigateway is the single outbound contract to the LLM backends.
package aigateway

import (
	"context"
	"iter"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"editorial-cms/config"
	"editorial-cms/httpclient"
	"editorial-cms/logger"
	"editorial-cms/models"
	"editorial-cms/quota"
	"editorial-cms/trace"
)

const (
	ProviderGateway = "gateway"
	ProviderGemini  = "gemini"
)

// Config is fixed at construction.
type Config struct {
	Provider     string
	BaseURL      string
	APIKey       string
	DefaultModel string
	MaxTokens    int
	Temperature  float64
	Timeout      time.Duration
	AppName      string
	// Referer is sent as HTTP-Referer, which OpenRouter uses for attribution.
	Referer string
}

func ConfigFrom(ai config.AIConfig, siteURL string) Config {
	return Config{
		Provider:     ai.Provider,
		BaseURL:      ai.BaseURL,
		APIKey:       ai.APIKey,
		DefaultModel: ai.DefaultModel,
		MaxTokens:    ai.MaxTokens,
		Temperature:  ai.Temperature,
		Timeout:      ai.Timeout(),
		AppName:      ai.AppName,
		Referer:      siteURL,
	}
}

// UsageRecorder persists one record per call (the ai_logs repository).
type UsageRecorder interface {
	RecordUsage(ctx context.Context, log models.AILog) error
}

type backend interface {
	chat(ctx context.Context, r resolvedRequest) (ChatResponse, error)
	chatStream(ctx context.Context, r resolvedRequest, done func(ChatResponse, error)) iter.Seq2[string, error]
}

type resolvedRequest struct {
	model       string
	messages    []Message
	maxTokens   int
	temperature float64
	jsonMode    bool
}

type Client struct {
	cfg        Config
	backend    backend
	recorder   UsageRecorder
	limiter    quota.Limiter
	httpClient *http.Client
	streamHTTP *http.Client
	now        func() time.Time
}

var _ Generator = (*Client)(nil)

type Option func(*Client)

func WithUsageRecorder(r UsageRecorder) Option {
	return func(c *Client) { c.recorder = r }
}

func WithLimiter(l quota.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// WithHTTPClient replaces both the request and the streaming HTTP clients.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
		c.streamHTTP = h
	}
}

func New(cfg Config, opts ...Option) *Client {
	if cfg.Provider == "" {
		cfg.Provider = ProviderGateway
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 2000
	}
	c := &Client{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = httpclient.New(httpclient.Config{Timeout: cfg.Timeout})
	}
	if c.streamHTTP == nil {
		// streams are bounded by the caller's context only
		c.streamHTTP = httpclient.New(httpclient.Config{Timeout: -1})
	}

	switch cfg.Provider {
	case ProviderGemini:
		c.backend = &geminiBackend{apiKey: cfg.APIKey, httpClient: c.httpClient}
	default:
		c.backend = &gatewayBackend{
			base:    httpclient.NewBaseClientWithClient(c.httpClient, cfg.BaseURL),
			stream:  httpclient.NewBaseClientWithClient(c.streamHTTP, cfg.BaseURL),
			apiKey:  cfg.APIKey,
			appName: cfg.AppName,
			referer: cfg.Referer,
		}
	}
	return c
}

func (c *Client) Configured() bool {
	return strings.TrimSpace(c.cfg.APIKey) != ""
}

func (c *Client) DefaultModel() string {
	return c.cfg.DefaultModel
}

func (c *Client) resolve(req ChatRequest) resolvedRequest {
	r := resolvedRequest{
		model:       c.cfg.DefaultModel,
		messages:    req.Messages,
		maxTokens:   c.cfg.MaxTokens,
		temperature: c.cfg.Temperature,
		jsonMode:    req.Options.JSONMode,
	}
	if req.Options.Model != "" {
		r.model = req.Options.Model
	}
	if req.Options.MaxTokens > 0 {
		r.maxTokens = req.Options.MaxTokens
	}
	if req.Options.Temperature != nil {
		r.temperature = *req.Options.Temperature
	}
	if req.Options.SystemPrompt != "" && (len(r.messages) == 0 || r.messages[0].Role != RoleSystem) {
		r.messages = append([]Message{{Role: RoleSystem, Content: req.Options.SystemPrompt}}, r.messages...)
	}
	return r
}

// admit checks configuration and reserves quota.
func (c *Client) admit(ctx context.Context) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	if c.limiter == nil {
		return nil
	}
	ok, err := c.limiter.WaitAndReserve(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return quotaError()
	}
	return nil
}

// Chat issues one non-streaming request.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	if err := c.admit(ctx); err != nil {
		return ChatResponse{}, err
	}
	r := c.resolve(req)
	start := c.now()
	resp, err := c.backend.chat(ctx, r)
	if err == nil {
		resp.Cost = EstimateCost(resp.Model, resp.Usage)
	}
	c.record(ctx, r, start, resp, err)
	return resp, err
}

// Generate sends prompt as a user message (after the optional system prompt)
// and returns the first choice, or "".
func (c *Client) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	resp, err := c.Chat(ctx, ChatRequest{Messages: []Message{{Role: RoleUser, Content: prompt}}, Options: opts})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// ChatStream yields content deltas as they arrive. The sequence is single-use;
// breaking out of the range loop abandons the upstream request.
func (c *Client) ChatStream(ctx context.Context, req ChatRequest) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if err := c.admit(ctx); err != nil {
			yield("", err)
			return
		}
		r := c.resolve(req)
		start := c.now()
		done := func(final ChatResponse, err error) {
			final.Cost = EstimateCost(final.Model, final.Usage)
			c.record(ctx, r, start, final, err)
		}
		for delta, err := range c.backend.chatStream(ctx, r, done) {
			if !yield(delta, err) {
				return
			}
		}
	}
}

// GenerateJSON asks for JSON mode and decodes the answer with ParseJSON.
func GenerateJSON[T any](ctx context.Context, g Generator, prompt string, opts Options) (T, error) {
	opts.JSONMode = true
	raw, err := g.Generate(ctx, prompt, opts)
	if err != nil {
		var zero T
		return zero, err
	}
	return ParseJSON[T](raw)
}

const maxLoggedText = 4000

func (c *Client) record(ctx context.Context, r resolvedRequest, start time.Time, resp ChatResponse, err error) {
	end := c.now()
	fields := logger.Fields{
		"request_id":        trace.RequestIDFromContext(ctx),
		"provider":          c.cfg.Provider,
		"model":             r.model,
		"prompt_tokens":     resp.Usage.PromptTokens,
		"completion_tokens": resp.Usage.CompletionTokens,
		"cost_usd":          resp.Cost,
		"duration_ms":       end.Sub(start).Milliseconds(),
	}
	if err != nil {
		fields["error"] = err.Error()
		logger.WarnWithFields("ai gateway call failed", fields)
	} else {
		logger.InfoWithFields("ai gateway call", fields)
	}

	if c.recorder == nil {
		return
	}
	entry := models.AILog{
		RequestID:        trace.RequestIDFromContext(ctx),
		Provider:         c.cfg.Provider,
		ModelName:        r.model,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.Total(),
		CostUSD:          resp.Cost,
		DurationMs:       end.Sub(start).Milliseconds(),
		JSONMode:         r.jsonMode,
		InputPrompt:      clip(lastUserMessage(r.messages), maxLoggedText),
		OutputResponse:   clip(resp.Content, maxLoggedText),
		RequestedAt:      start,
		CompletedAt:      end,
	}
	if resp.Model != "" {
		entry.ModelName = resp.Model
	}
	if err != nil {
		msg := err.Error()
		entry.ErrorMessage = &msg
	}
	if recErr := c.recorder.RecordUsage(context.WithoutCancel(ctx), entry); recErr != nil {
		fields["error"] = recErr.Error()
		logger.WarnWithFields("ai usage log insert failed", fields)
	}
}

func lastUserMessage(msgs []Message) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == RoleUser {
			return msgs[i].Content
		}
	}
	return ""
}

func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
