package model

// GenerateRequest is the body for POST /sessions/:id/generate and
// /sessions/:id/regenerate. On regenerate the record may be omitted to reuse
// the one held by the session.
type GenerateRequest struct {
	Record *PropertyRecord `json:"record"`
}

// GenerateResponse returns the result together with its version metadata.
type GenerateResponse struct {
	SessionID string           `json:"session_id"`
	Result    GenerationResult `json:"result"`
	Version   int              `json:"version"`
	Style     string           `json:"style"`
	Fallback  bool             `json:"fallback"`
}

// EnhanceRequest is the body for POST /sessions/:id/enhance.
type EnhanceRequest struct {
	Style  string `json:"style"`
	Length string `json:"length"`
}

// EnhanceResponse carries the enhanced description text.
type EnhanceResponse struct {
	SessionID   string `json:"session_id"`
	Enhanced    string `json:"enhanced_description"`
	Style       string `json:"style"`
	Length      string `json:"length"`
	WordCount   int    `json:"word_count"`
	UseEnhanced bool   `json:"use_enhanced"`
}

// EnhancedUpdateRequest edits the held enhancement text or toggles whether it
// replaces the description in exports.
type EnhancedUpdateRequest struct {
	Text        *string `json:"text,omitempty"`
	UseEnhanced *bool   `json:"use_enhanced,omitempty"`
}

// ExportRequest is the body for POST /sessions/:id/export.
type ExportRequest struct {
	Format string         `json:"format"` // json, text, csv
	Edited *EditedContent `json:"edited,omitempty"`
}

// SessionSnapshot is returned by GET /sessions/:id.
type SessionSnapshot struct {
	SessionID       string            `json:"session_id"`
	Record          *PropertyRecord   `json:"record,omitempty"`
	Result          *GenerationResult `json:"result,omitempty"`
	Enhanced        string            `json:"enhanced_description,omitempty"`
	UseEnhanced     bool              `json:"use_enhanced"`
	GenerationCount int               `json:"generation_count"`
	Version         int               `json:"version"`
	Style           string            `json:"style,omitempty"`
}

// ConnectionTestResponse reports the outcome of a completion-endpoint probe.
type ConnectionTestResponse struct {
	Connected bool   `json:"connected"`
	Message   string `json:"message"`
}

// ImportResponse summarizes a bulk tabular import.
type ImportResponse struct {
	Records  []PropertyRecord `json:"records"`
	Imported int              `json:"imported"`
	Failed   int              `json:"failed"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}

// ImportRowError reports one rejected row without aborting the batch.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}
