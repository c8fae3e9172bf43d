package models

import (
	"encoding/json"
	"strings"
)

// TagList decodes from either ["go", ...] or [{"tag": "go"}, ...] (the editor's array field shape).
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		var obj struct {
			Tag string `json:"tag"`
		}
		if err := json.Unmarshal(item, &obj); err == nil {
			out = append(out, obj.Tag)
		}
	}
	*t = out
	return nil
}

// NormalizeTags trims and lowercases tags, dropping empties and duplicates while keeping order.
func NormalizeTags(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
