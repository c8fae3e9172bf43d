package aigateway

import "strings"

type price struct {
	prompt     float64 // USD per million prompt tokens
	completion float64 // USD per million completion tokens
}

// prices are keyed by model id without the vendor prefix.
var prices = map[string]price{
	"gpt-4o-mini":            {0.15, 0.60},
	"gpt-4o":                 {2.50, 10.00},
	"claude-3.5-sonnet":      {3.00, 15.00},
	"claude-3-haiku":         {0.25, 1.25},
	"gemini-2.0-flash":       {0.10, 0.40},
	"gemini-2.0-flash-001":   {0.10, 0.40},
	"gemini-2.5-flash":       {0.30, 2.50},
	"llama-3.1-70b-instruct": {0.40, 0.40},
}

// EstimateCost returns the USD cost of usage on model, or 0 when the model has no price.
func EstimateCost(model string, usage Usage) float64 {
	p, ok := prices[model]
	if !ok {
		if i := strings.LastIndexByte(model, '/'); i >= 0 {
			p, ok = prices[model[i+1:]]
		}
	}
	if !ok {
		return 0
	}
	return (float64(usage.PromptTokens)*p.prompt + float64(usage.CompletionTokens)*p.completion) / 1_000_000
}
