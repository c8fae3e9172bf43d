package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"editorial-cms/aigateway"
)

// rewriteLimit is larger than PreviewLimit: the whole text has to come back.
const rewriteLimit = 12000

var ErrEmptyText = errors.New("text is empty")

type RewriteRequest struct {
	Content     string `json:"content"`
	Instruction string `json:"instruction"`
	Tone        string `json:"tone"`
}

const rewriteSystemPrompt = `You are a meticulous copy editor. Rewrite the text you are given following the instruction.
Preserve facts, names, numbers and Markdown structure. Return only the rewritten text, with no preamble.`

type Rewriter struct{ base }

func NewRewriter(gen aigateway.Generator, tiers Tiers, language string) *Rewriter {
	return &Rewriter{newBase(gen, tiers, language)}
}

// Rewrite runs on the strong tier.
func (r *Rewriter) Rewrite(ctx context.Context, req RewriteRequest) (string, error) {
	text := clip(req.Content, rewriteLimit)
	if text == "" {
		return "", ErrEmptyText
	}
	instruction := clip(req.Instruction, 500)
	if instruction == "" {
		instruction = "Improve clarity and flow."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Instruction: %s\n", instruction)
	if tone := clip(req.Tone, 60); tone != "" {
		fmt.Fprintf(&b, "Tone: %s\n", tone)
	}
	fmt.Fprintf(&b, "Language: %s\n\nText:\n%s", r.language, text)

	out, err := r.gen.Generate(ctx, b.String(), r.strong(rewriteSystemPrompt, 4000))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
