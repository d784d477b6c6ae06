package service

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"listinggen/internal/model"
)

const validResponse = `{
	"title": "Charming 2 BHK Flat in the Heart of Kothrud",
	"teaser_text": "Your next home is waiting in Pune's most loved neighborhood",
	"full_description": "A lovely 2 BHK flat in Kothrud, Pune.",
	"bullet_points": ["a", "b", "c", "d", "e"],
	"seo_keywords": ["k1", "k2", "k3", "k4", "k5"],
	"meta_title": "2 BHK Flat for Rent in Kothrud",
	"meta_description": "Rent this 2 BHK in Kothrud, Pune. Enquire today!"
}`

func TestParseResult_FenceEquivalence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"Unwrapped", validResponse},
		{"Fence with json tag", "```json\n" + validResponse + "\n```"},
		{"Fence without tag", "```\n" + validResponse + "\n```"},
	}

	var want *model.GenerationResult
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResult(tt.raw)
			if err != nil {
				t.Fatalf("ParseResult() error = %v", err)
			}
			if i == 0 {
				want = got
				return
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("wrapped parse differs from unwrapped: got %+v, want %+v", got, want)
			}
		})
	}
}

func TestParseResult_MissingFields(t *testing.T) {
	var full map[string]json.RawMessage
	if err := json.Unmarshal([]byte(validResponse), &full); err != nil {
		t.Fatalf("fixture is invalid: %v", err)
	}

	for _, field := range model.ResultFields {
		t.Run(field, func(t *testing.T) {
			partial := make(map[string]json.RawMessage, len(full)-1)
			for k, v := range full {
				if k != field {
					partial[k] = v
				}
			}
			raw, err := json.Marshal(partial)
			if err != nil {
				t.Fatal(err)
			}

			_, err = ParseResult(string(raw))
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("ParseResult() without %q = %v, want ErrInvalidFormat", field, err)
			}
		})
	}
}

func TestParseResult_InvalidJSON(t *testing.T) {
	_, err := ParseResult("this is not json at all")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("ParseResult() = %v, want ErrInvalidFormat", err)
	}
}

func TestParseResult_SurroundingProse(t *testing.T) {
	raw := "Sure! Here is the listing:\n" + validResponse + "\nHope this helps."
	got, err := ParseResult(raw)
	if err != nil {
		t.Fatalf("ParseResult() error = %v", err)
	}
	if got.Title == "" {
		t.Error("expected title to be populated")
	}
}

func TestParseResult_LooseShapesAccepted(t *testing.T) {
	// The contract is deliberately loose: only key presence is validated,
	// not bullet counts or meta length limits.
	raw := `{
		"title": "t", "teaser_text": "t", "full_description": "d",
		"bullet_points": ["only one"],
		"seo_keywords": [],
		"meta_title": "way too long meta title way too long meta title way too long meta title",
		"meta_description": "m"
	}`
	got, err := ParseResult(raw)
	if err != nil {
		t.Fatalf("ParseResult() error = %v", err)
	}
	if len(got.BulletPoints) != 1 {
		t.Errorf("expected loose bullet count to pass through, got %d", len(got.BulletPoints))
	}
}
