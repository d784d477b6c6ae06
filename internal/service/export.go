package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"listinggen/internal/model"
)

// Export formats
const (
	FormatJSON = "json"
	FormatText = "text"
	FormatCSV  = "csv"
)

// ExportArtifact is one rendered download artifact.
type ExportArtifact struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Exporter renders a session's content into the download encodings. User
// edits are merged over the stored result at export time; the enhancement
// replaces the description when the use-enhanced flag is set.
type Exporter struct {
	now func() time.Time
}

// NewExporter creates an exporter using wall-clock time for footers.
func NewExporter() *Exporter {
	return &Exporter{now: time.Now}
}

// Export renders the session into the requested format.
func (e *Exporter) Export(s *Session, format string, edited *model.EditedContent) (*ExportArtifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Result == nil || s.Record == nil {
		return nil, fmt.Errorf("nothing to export: generate first")
	}

	content := edited.Merge(*s.Result)
	if s.UseEnhanced && s.Enhanced != "" {
		content.FullDescription = s.Enhanced
	}

	version := s.GenerationCount + 1
	style := VariationFor(s.GenerationCount).Name

	switch strings.ToLower(format) {
	case FormatJSON:
		return e.exportJSON(s.Record, content, version, style)
	case FormatText:
		return e.exportText(content, version, style)
	case FormatCSV:
		return e.exportCSV(s.Record, content, version)
	default:
		return nil, fmt.Errorf("unknown export format: %s", format)
	}
}

// JSONExport is the JSON artifact envelope.
type JSONExport struct {
	PropertyDetails  *model.PropertyRecord  `json:"property_details"`
	GeneratedContent model.GenerationResult `json:"generated_content"`
	Version          int                    `json:"version"`
	Style            string                 `json:"style"`
}

func (e *Exporter) exportJSON(record *model.PropertyRecord, content model.GenerationResult, version int, style string) (*ExportArtifact, error) {
	payload := JSONExport{
		PropertyDetails:  record,
		GeneratedContent: content,
		Version:          version,
		Style:            style,
	}
	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export: %w", err)
	}
	return &ExportArtifact{
		Filename:    fmt.Sprintf("property_v%d.json", version),
		ContentType: "application/json",
		Body:        body,
	}, nil
}

func (e *Exporter) exportText(content model.GenerationResult, version int, style string) (*ExportArtifact, error) {
	var b strings.Builder
	b.WriteString(content.Title)
	b.WriteString("\n")
	b.WriteString(content.TeaserText)
	b.WriteString("\n\n")
	b.WriteString(content.FullDescription)
	b.WriteString("\n\nFeatures:\n")
	for _, point := range content.BulletPoints {
		fmt.Fprintf(&b, "• %s\n", point)
	}
	fmt.Fprintf(&b, "\nKeywords: %s\n", strings.Join(content.SEOKeywords, ", "))
	fmt.Fprintf(&b, "Meta Title: %s\n", content.MetaTitle)
	fmt.Fprintf(&b, "Meta Description: %s\n", content.MetaDescription)
	b.WriteString("\n---\n")
	fmt.Fprintf(&b, "Version #%d | %s\n", version, style)
	fmt.Fprintf(&b, "Generated: %s\n", e.now().Format("2006-01-02 15:04"))

	return &ExportArtifact{
		Filename:    fmt.Sprintf("property_v%d.txt", version),
		ContentType: "text/plain",
		Body:        []byte(b.String()),
	}, nil
}

func (e *Exporter) exportCSV(record *model.PropertyRecord, content model.GenerationResult, version int) (*ExportArtifact, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Property Type", "BHK", "Area Sqft", "City", "Locality",
		"Rent", "Deposit", "Furnishing",
		"Title", "Teaser", "Description", "Features", "Keywords",
		"Meta Title", "Meta Description", "Version",
	}
	row := []string{
		record.PropertyType,
		record.BHK,
		fmt.Sprintf("%d", record.AreaSqft),
		record.City,
		record.Locality,
		fmt.Sprintf("%d", record.RentAmount),
		fmt.Sprintf("%d", record.DepositAmount),
		record.FurnishingStatus,
		content.Title,
		content.TeaserText,
		content.FullDescription,
		strings.Join(content.BulletPoints, " | "),
		strings.Join(content.SEOKeywords, ", "),
		content.MetaTitle,
		content.MetaDescription,
		fmt.Sprintf("%d", version),
	}

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := w.Write(row); err != nil {
		return nil, fmt.Errorf("failed to write csv row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return &ExportArtifact{
		Filename:    fmt.Sprintf("property_v%d.csv", version),
		ContentType: "text/csv",
		Body:        buf.Bytes(),
	}, nil
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
