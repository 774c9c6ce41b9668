package app

import (
	"encoding/json"
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/rs/zerolog/log"

	"daypass/internal/domain"
)

// normalizeKeys rewrites every object key to lowerCamel, recursively.
// Feeds mix snake_case and camelCase.
func normalizeKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[strcase.ToLowerCamel(k)] = normalizeKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeKeys(val)
		}
		return out
	default:
		return v
	}
}

// mapStages decodes a raw feed payload into typed stages.
func mapStages(raw []map[string]any) ([]domain.SearchStage, error) {
	norm := make([]any, len(raw))
	for i, s := range raw {
		norm[i] = normalizeKeys(s)
	}
	b, err := json.Marshal(norm)
	if err != nil {
		log.Error().Err(err).Str("context", "mapStages").Msg("failed to marshal normalized stages")
		return nil, err
	}
	var out []domain.SearchStage
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode stages: %w", err)
	}
	return out, nil
}

// GetAllHotels flattens every stage's hotels, stage order then hotel order.
func GetAllHotels(stages []domain.SearchStage) []domain.Hotel {
	n := 0
	for _, s := range stages {
		n += len(s.Hotels)
	}
	out := make([]domain.Hotel, 0, n)
	for _, s := range stages {
		out = append(out, s.Hotels...)
	}
	return out
}

func firstCurrency(stages []domain.SearchStage) *domain.Currency {
	for _, s := range stages {
		if s.Currency != nil {
			c := *s.Currency
			return &c
		}
	}
	return nil
}
