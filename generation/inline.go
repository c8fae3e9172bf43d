package generation

import (
	"context"
	"fmt"
	"strings"

	"editorial-cms/aigateway"
	"editorial-cms/validation"
)

type InlineOperation string

const (
	OpImprove    InlineOperation = "improve"
	OpShorten    InlineOperation = "shorten"
	OpExpand     InlineOperation = "expand"
	OpFixGrammar InlineOperation = "fix_grammar"
	OpSimplify   InlineOperation = "simplify"
	OpContinue   InlineOperation = "continue"
	OpTone       InlineOperation = "tone"
)

// inlineLimit caps the selection; inline edits work on a paragraph or two.
const inlineLimit = 2000

var inlineInstructions = map[InlineOperation]string{
	OpImprove:    "Improve the clarity and flow of the text without changing its meaning.",
	OpShorten:    "Make the text about half as long, keeping the key information.",
	OpExpand:     "Expand the text with more detail and one concrete example, about twice as long.",
	OpFixGrammar: "Fix spelling, grammar and punctuation only. Do not rephrase anything else.",
	OpSimplify:   "Rewrite the text in plain language a teenager would understand.",
	OpContinue:   "Write the next one or two sentences that naturally continue the text. Return only the new sentences.",
	OpTone:       "Rewrite the text in a %s tone.",
}

type InlineRequest struct {
	Operation InlineOperation `json:"operation"`
	Text      string          `json:"text"`
	// Tone is required by OpTone and ignored otherwise.
	Tone string `json:"tone"`
	// Context is the surrounding paragraph, if any.
	Context string `json:"context"`
}

const inlineSystemPrompt = `You are an inline writing assistant inside an article editor.
Return only the resulting text. No quotes, no preamble, no Markdown code block.`

type InlineEditor struct{ base }

func NewInlineEditor(gen aigateway.Generator, tiers Tiers, language string) *InlineEditor {
	return &InlineEditor{newBase(gen, tiers, language)}
}

func (e *InlineEditor) Apply(ctx context.Context, req InlineRequest) (string, error) {
	instruction, err := inlineInstruction(req)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Instruction: %s\n", instruction)
	if c := clip(req.Context, PreviewLimit); c != "" {
		fmt.Fprintf(&b, "Surrounding context:\n%s\n", c)
	}
	fmt.Fprintf(&b, "Language: %s\n\nText:\n%s", e.language, clip(req.Text, inlineLimit))

	out, err := e.gen.Generate(ctx, b.String(), e.fast(inlineSystemPrompt, 1000))
	if err != nil {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(out), `"`), nil
}

func inlineInstruction(req InlineRequest) (string, error) {
	v := &validation.ValidationError{}
	if strings.TrimSpace(req.Text) == "" {
		v.Add("text", "text is required")
	}
	tmpl, ok := inlineInstructions[req.Operation]
	if !ok {
		v.Add("operation", "operation must be one of: improve, shorten, expand, fix_grammar, simplify, continue, tone")
	}
	tone := clip(req.Tone, 60)
	if req.Operation == OpTone && tone == "" {
		v.Add("tone", "tone is required")
	}
	if err := v.Err(); err != nil {
		return "", err
	}
	if req.Operation == OpTone {
		return fmt.Sprintf(tmpl, tone), nil
	}
	return tmpl, nil
}
