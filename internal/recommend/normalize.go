package recommend

import (
	"encoding/json"
	"strings"

	apperrors "brighterbiz-api/internal/common/errors"
)

// NormalizeModelOutput reduces raw completion text to the JSON array it
// should contain. The model is instructed to return only a JSON array, but
// in practice may wrap it in a fenced code block or prefix it with prose.
// Idempotent: already-clean JSON text passes through unchanged.
func NormalizeModelOutput(raw string) string {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```") {
		// Drop the opening fence line, with or without a language tag.
		if idx := strings.IndexByte(text, '\n'); idx >= 0 {
			text = text[idx+1:]
		} else {
			text = strings.TrimPrefix(text, "```")
		}
		text = strings.TrimSpace(text)
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}

	// Discard any leading prose before the array.
	if idx := strings.IndexByte(text, '['); idx > 0 {
		text = text[idx:]
	}

	return text
}

// ParseRecommendationArray parses normalized text as a JSON array. Elements
// stay loosely typed so that a single badly shaped element is dropped by the
// validator instead of failing the whole array.
func ParseRecommendationArray(jsonText string) ([]interface{}, error) {
	var items []interface{}
	if err := json.Unmarshal([]byte(jsonText), &items); err != nil {
		return nil, apperrors.NewMalformedCompletionError(err)
	}
	return items, nil
}
