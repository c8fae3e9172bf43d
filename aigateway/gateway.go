package aigateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"strings"

	"editorial-cms/httpclient"
)

// gatewayBackend speaks the chat-completions protocol of OpenAI-compatible
// aggregators (OpenRouter and similar).
type gatewayBackend struct {
	base    *httpclient.BaseClient
	stream  *httpclient.BaseClient
	apiKey  string
	appName string
	referer string
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    float64         `json:"temperature"`
	Stream         bool            `json:"stream"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	StreamOptions  *streamOptions  `json:"stream_options,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type streamOptions struct {
	IncludeUsage bool `json:"include_usage"`
}

type chatCompletionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage Usage `json:"usage"`
}

type gatewayErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

const maxResponseBody = 5 * 1024 * 1024

func (g *gatewayBackend) chat(ctx context.Context, r resolvedRequest) (ChatResponse, error) {
	req, err := g.newRequest(ctx, g.base, r, false)
	if err != nil {
		return ChatResponse{}, err
	}

	resp, err := g.base.Do(req)
	if err != nil {
		return ChatResponse{}, &RemoteError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return ChatResponse{}, &RemoteError{StatusCode: resp.StatusCode, Message: "response read failed", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ChatResponse{}, &RemoteError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	var out chatCompletionResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return ChatResponse{}, &RemoteError{StatusCode: resp.StatusCode, Message: "undecodable response body", Err: err}
	}

	res := ChatResponse{Model: out.Model, Usage: out.Usage}
	if res.Model == "" {
		res.Model = r.model
	}
	if len(out.Choices) > 0 {
		res.Content = out.Choices[0].Message.Content
	}
	return res, nil
}

func (g *gatewayBackend) chatStream(ctx context.Context, r resolvedRequest, done func(ChatResponse, error)) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		final := ChatResponse{Model: r.model}
		fail := func(err error) {
			done(final, err)
			yield("", err)
		}

		req, err := g.newRequest(ctx, g.stream, r, true)
		if err != nil {
			fail(err)
			return
		}
		resp, err := g.stream.Do(req)
		if err != nil {
			fail(&RemoteError{Message: err.Error(), Err: err})
			return
		}
		// closing the body is how an abandoned stream is cancelled
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
			fail(&RemoteError{StatusCode: resp.StatusCode, Message: errorMessage(body)})
			return
		}

		var content strings.Builder
		stopped := false
		err = readSSE(resp.Body, func(chunk streamChunk) bool {
			if chunk.Model != "" {
				final.Model = chunk.Model
			}
			if chunk.Usage != nil {
				final.Usage = *chunk.Usage
			}
			if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == "" {
				return true
			}
			delta := chunk.Choices[0].Delta.Content
			content.WriteString(delta)
			if !yield(delta, nil) {
				stopped = true
				return false
			}
			return true
		})
		final.Content = content.String()
		if err != nil && !stopped && ctx.Err() == nil {
			fail(&RemoteError{StatusCode: resp.StatusCode, Message: "stream interrupted", Err: err})
			return
		}
		done(final, nil)
	}
}

func (g *gatewayBackend) newRequest(ctx context.Context, base *httpclient.BaseClient, r resolvedRequest, stream bool) (*http.Request, error) {
	payload := chatCompletionRequest{
		Model:       r.model,
		Messages:    r.messages,
		MaxTokens:   r.maxTokens,
		Temperature: r.temperature,
		Stream:      stream,
	}
	if r.jsonMode {
		payload.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	if stream {
		payload.StreamOptions = &streamOptions{IncludeUsage: true}
	}
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := base.NewRequest(ctx, http.MethodPost, "/chat/completions", nil, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	if stream {
		req.Header.Set("Accept", "text/event-stream")
	}
	if g.referer != "" {
		req.Header.Set("HTTP-Referer", g.referer)
	}
	if g.appName != "" {
		req.Header.Set("X-Title", g.appName)
	}
	return req, nil
}

// errorMessage prefers {"error":{"message":...}} and falls back to the raw body.
func errorMessage(body []byte) string {
	var eb gatewayErrorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Error.Message != "" {
		return eb.Error.Message
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 512 {
		msg = msg[:512]
	}
	return msg
}
