package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"listinggen/internal/model"
)

func exportSession(t *testing.T) *Session {
	t.Helper()

	result, err := ParseResult(validResponse)
	if err != nil {
		t.Fatalf("ParseResult() error = %v", err)
	}
	return &Session{
		ID:              "test-session",
		Record:          testRecord(),
		Result:          result,
		GenerationCount: 1,
	}
}

func testExporter() *Exporter {
	return &Exporter{now: func() time.Time {
		return time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	}}
}

func TestExport_JSONRoundTrip(t *testing.T) {
	s := exportSession(t)

	artifact, err := testExporter().Export(s, FormatJSON, nil)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if artifact.Filename != "property_v2.json" {
		t.Errorf("Filename = %q", artifact.Filename)
	}
	if artifact.ContentType != "application/json" {
		t.Errorf("ContentType = %q", artifact.ContentType)
	}

	var payload JSONExport
	if err := json.Unmarshal(artifact.Body, &payload); err != nil {
		t.Fatalf("export body is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(payload.GeneratedContent, *s.Result) {
		t.Error("generated_content should reproduce the stored result field for field")
	}
	if payload.PropertyDetails.City != "Pune" {
		t.Errorf("property_details.city = %q", payload.PropertyDetails.City)
	}
	if payload.Version != 2 {
		t.Errorf("version = %d, want 2", payload.Version)
	}
	if payload.Style != VariationFor(1).Name {
		t.Errorf("style = %q, want %q", payload.Style, VariationFor(1).Name)
	}
}

func TestExport_TextLayout(t *testing.T) {
	s := exportSession(t)

	artifact, err := testExporter().Export(s, FormatText, nil)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	body := string(artifact.Body)
	for _, want := range []string{
		s.Result.Title,
		s.Result.TeaserText,
		s.Result.FullDescription,
		"Features:\n• a\n",
		"Keywords: " + strings.Join(s.Result.SEOKeywords, ", "),
		"Meta Title: " + s.Result.MetaTitle,
		"\n---\n",
		"Version #2 | " + VariationFor(1).Name,
		"Generated: 2025-06-15 10:30",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("text export missing %q", want)
		}
	}
}

func TestExport_CSVRow(t *testing.T) {
	s := exportSession(t)

	artifact, err := testExporter().Export(s, FormatCSV, nil)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(artifact.Body)).ReadAll()
	if err != nil {
		t.Fatalf("export body is not valid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}

	header, row := records[0], records[1]
	if len(header) != len(row) {
		t.Fatalf("header has %d columns, row has %d", len(header), len(row))
	}

	cell := func(name string) string {
		for i, h := range header {
			if h == name {
				return row[i]
			}
		}
		t.Fatalf("missing column %q", name)
		return ""
	}
	if cell("City") != "Pune" {
		t.Errorf("City = %q", cell("City"))
	}
	if cell("Rent") != "20000" {
		t.Errorf("Rent = %q", cell("Rent"))
	}
	if cell("Features") != strings.Join(s.Result.BulletPoints, " | ") {
		t.Errorf("Features = %q", cell("Features"))
	}
	if cell("Version") != "2" {
		t.Errorf("Version = %q", cell("Version"))
	}
}

func TestExport_EditedOverlay(t *testing.T) {
	s := exportSession(t)

	title := "Hand-edited title"
	edited := &model.EditedContent{Title: &title}

	artifact, err := testExporter().Export(s, FormatJSON, edited)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var payload JSONExport
	if err := json.Unmarshal(artifact.Body, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.GeneratedContent.Title != title {
		t.Errorf("Title = %q, want the edited one", payload.GeneratedContent.Title)
	}
	if payload.GeneratedContent.TeaserText != s.Result.TeaserText {
		t.Error("untouched fields should pass through unchanged")
	}
	if s.Result.Title == title {
		t.Error("the stored result must not be mutated by an export")
	}
}

func TestExport_UseEnhancedSubstitutesDescription(t *testing.T) {
	s := exportSession(t)
	s.Enhanced = "The enhanced description."
	s.UseEnhanced = true

	artifact, err := testExporter().Export(s, FormatJSON, nil)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var payload JSONExport
	if err := json.Unmarshal(artifact.Body, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.GeneratedContent.FullDescription != s.Enhanced {
		t.Error("use_enhanced should substitute the description in exports")
	}
}

func TestExport_EnhancedIgnoredWhenFlagOff(t *testing.T) {
	s := exportSession(t)
	s.Enhanced = "The enhanced description."

	artifact, err := testExporter().Export(s, FormatJSON, nil)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var payload JSONExport
	if err := json.Unmarshal(artifact.Body, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.GeneratedContent.FullDescription != s.Result.FullDescription {
		t.Error("enhancement must not leak into exports while the flag is off")
	}
}

func TestExport_Errors(t *testing.T) {
	if _, err := testExporter().Export(&Session{ID: "empty"}, FormatJSON, nil); err == nil {
		t.Error("export of an empty session should fail")
	}

	s := exportSession(t)
	if _, err := testExporter().Export(s, "pdf", nil); err == nil {
		t.Error("unknown format should fail")
	}
}
