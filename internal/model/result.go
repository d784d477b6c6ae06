package model

// GenerationResult is the fixed 7-field content schema produced by both the
// completion path and the template fallback.
type GenerationResult struct {
	Title           string   `json:"title"`
	TeaserText      string   `json:"teaser_text"`
	FullDescription string   `json:"full_description"`
	BulletPoints    []string `json:"bullet_points"`
	SEOKeywords     []string `json:"seo_keywords"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
}

// ResultFields lists the JSON keys the response parser requires. The parser
// checks key presence only; bullet/keyword counts and meta length limits are
// accepted as the model returns them.
var ResultFields = []string{
	"title",
	"teaser_text",
	"full_description",
	"bullet_points",
	"seo_keywords",
	"meta_title",
	"meta_description",
}

// EditedContent carries the user's in-place edits. Fields left nil fall back
// to the stored result; the stored result itself is never mutated.
type EditedContent struct {
	Title           *string  `json:"title,omitempty"`
	TeaserText      *string  `json:"teaser_text,omitempty"`
	FullDescription *string  `json:"full_description,omitempty"`
	BulletPoints    []string `json:"bullet_points,omitempty"`
	SEOKeywords     []string `json:"seo_keywords,omitempty"`
	MetaTitle       *string  `json:"meta_title,omitempty"`
	MetaDescription *string  `json:"meta_description,omitempty"`
}

// Merge returns the stored result with the overlay applied field by field.
func (e *EditedContent) Merge(base GenerationResult) GenerationResult {
	if e == nil {
		return base
	}
	merged := base
	if e.Title != nil {
		merged.Title = *e.Title
	}
	if e.TeaserText != nil {
		merged.TeaserText = *e.TeaserText
	}
	if e.FullDescription != nil {
		merged.FullDescription = *e.FullDescription
	}
	if len(e.BulletPoints) > 0 {
		merged.BulletPoints = e.BulletPoints
	}
	if len(e.SEOKeywords) > 0 {
		merged.SEOKeywords = e.SEOKeywords
	}
	if e.MetaTitle != nil {
		merged.MetaTitle = *e.MetaTitle
	}
	if e.MetaDescription != nil {
		merged.MetaDescription = *e.MetaDescription
	}
	return merged
}
