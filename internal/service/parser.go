package service

import (
	"encoding/json"
	"fmt"

	"listinggen/internal/model"
	"listinggen/internal/utils"
)

// ParseResult decodes the raw completion text into the fixed result schema.
// Pipeline: strip the known markdown-fence wrappers, then decode. Fails with
// ErrInvalidFormat when decoding fails or any of the 7 required fields is
// absent. Field shapes beyond presence (bullet counts, meta length limits)
// are accepted as returned.
func ParseResult(raw string) (*model.GenerationResult, error) {
	cleaned := utils.StripCodeFence(raw)

	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &keys); err != nil {
		// Some models pad the object with prose; try the balanced-brace
		// extraction before giving up.
		extracted := utils.ExtractJSONObject(cleaned)
		if extracted == "" {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		if err := json.Unmarshal([]byte(extracted), &keys); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		cleaned = extracted
	}

	for _, field := range model.ResultFields {
		if _, ok := keys[field]; !ok {
			return nil, fmt.Errorf("%w: missing field %q", ErrInvalidFormat, field)
		}
	}

	var result model.GenerationResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	return &result, nil
}
