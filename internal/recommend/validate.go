package recommend

import (
	apperrors "brighterbiz-api/internal/common/errors"
)

// ValidateAndCap filters parsed elements to those carrying every mandatory
// field for the template, truncates to the template's maximum count, and
// assigns sequential 1-based identifiers. Elements missing a field are
// dropped silently; relative order of survivors is preserved.
func ValidateAndCap(items []interface{}, tmpl Template) ([]Recommendation, error) {
	out := make([]Recommendation, 0, tmpl.MaxCount)

	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		rec, ok := buildRecommendation(obj, tmpl.RequireTools)
		if !ok {
			continue
		}
		out = append(out, rec)
	}

	if len(out) == 0 {
		return nil, apperrors.NewNoValidRecommendationsError()
	}

	if len(out) > tmpl.MaxCount {
		out = out[:tmpl.MaxCount]
	}

	for i := range out {
		out[i].ID = i + 1
	}

	return out, nil
}

// buildRecommendation extracts one element. Reports false when any mandatory
// field is absent, empty, or not the expected type.
func buildRecommendation(obj map[string]interface{}, requireTools bool) (Recommendation, bool) {
	rec := Recommendation{
		Title:           stringField(obj, "title"),
		Description:     stringField(obj, "description"),
		Category:        stringField(obj, "category"),
		Difficulty:      stringField(obj, "difficulty"),
		EstimatedCost:   stringField(obj, "estimatedCost"),
		TimeToImplement: stringField(obj, "timeToImplement"),
		SuggestedTools:  stringSliceField(obj, "suggestedTools"),
	}

	if rec.Title == "" || rec.Description == "" || rec.Category == "" ||
		rec.Difficulty == "" || rec.EstimatedCost == "" || rec.TimeToImplement == "" {
		return Recommendation{}, false
	}

	if requireTools && len(rec.SuggestedTools) == 0 {
		return Recommendation{}, false
	}

	return rec, true
}

func stringField(obj map[string]interface{}, key string) string {
	if s, ok := obj[key].(string); ok {
		return s
	}
	return ""
}

func stringSliceField(obj map[string]interface{}, key string) []string {
	raw, ok := obj[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
