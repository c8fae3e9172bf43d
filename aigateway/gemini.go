package aigateway

import (
	"context"
	"errors"
	"iter"
	"net/http"
	"strings"
	"sync"

	"google.golang.org/genai"
)

// geminiBackend calls Google GenAI directly with the official SDK.
type geminiBackend struct {
	apiKey     string
	httpClient *http.Client

	once    sync.Once
	client  *genai.Client
	initErr error
}

func (g *geminiBackend) sdk(ctx context.Context) (*genai.Client, error) {
	g.once.Do(func() {
		g.client, g.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:     g.apiKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: g.httpClient,
		})
	})
	if g.initErr != nil {
		return nil, &RemoteError{Message: g.initErr.Error(), Err: g.initErr}
	}
	return g.client, nil
}

// geminiRequest splits system messages into the system instruction and maps
// the rest onto user/model turns.
func geminiRequest(r resolvedRequest) ([]*genai.Content, *genai.GenerateContentConfig) {
	var system []string
	contents := make([]*genai.Content, 0, len(r.messages))
	for _, m := range r.messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			contents = append(contents, &genai.Content{Role: "model", Parts: []*genai.Part{{Text: m.Content}}})
		default:
			contents = append(contents, &genai.Content{Role: "user", Parts: []*genai.Part{{Text: m.Content}}})
		}
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(r.temperature)),
		MaxOutputTokens: int32(r.maxTokens),
	}
	if len(system) > 0 {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: strings.Join(system, "\n\n")}}}
	}
	if r.jsonMode {
		cfg.ResponseMIMEType = "application/json"
	}
	return contents, cfg
}

func (g *geminiBackend) chat(ctx context.Context, r resolvedRequest) (ChatResponse, error) {
	client, err := g.sdk(ctx)
	if err != nil {
		return ChatResponse{}, err
	}
	contents, cfg := geminiRequest(r)
	result, err := client.Models.GenerateContent(ctx, r.model, contents, cfg)
	if err != nil {
		return ChatResponse{}, geminiError(err)
	}
	return geminiResponse(r.model, result), nil
}

func (g *geminiBackend) chatStream(ctx context.Context, r resolvedRequest, done func(ChatResponse, error)) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		final := ChatResponse{Model: r.model}
		client, err := g.sdk(ctx)
		if err != nil {
			done(final, err)
			yield("", err)
			return
		}
		contents, cfg := geminiRequest(r)

		var content strings.Builder
		for result, err := range client.Models.GenerateContentStream(ctx, r.model, contents, cfg) {
			if err != nil {
				err = geminiError(err)
				final.Content = content.String()
				done(final, err)
				yield("", err)
				return
			}
			chunk := geminiResponse(r.model, result)
			if chunk.Usage.Total() > 0 {
				final.Usage = chunk.Usage
			}
			if chunk.Content == "" {
				continue
			}
			content.WriteString(chunk.Content)
			if !yield(chunk.Content, nil) {
				break
			}
		}
		final.Content = content.String()
		done(final, nil)
	}
}

func geminiResponse(model string, result *genai.GenerateContentResponse) ChatResponse {
	out := ChatResponse{Model: model}
	if result == nil {
		return out
	}
	out.Content = result.Text()
	if result.ModelVersion != "" {
		out.Model = result.ModelVersion
	}
	if result.UsageMetadata != nil {
		out.Usage = Usage{
			PromptTokens:     int64(result.UsageMetadata.PromptTokenCount),
			CompletionTokens: int64(result.UsageMetadata.CandidatesTokenCount),
		}
	}
	return out
}

func geminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &RemoteError{StatusCode: apiErr.Code, Message: apiErr.Message, Err: err}
	}
	return &RemoteError{Message: err.Error(), Err: err}
}
