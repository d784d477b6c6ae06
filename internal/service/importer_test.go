package service

import (
	"reflect"
	"strings"
	"testing"
)

const importCSV = `city,locality,area_sqft,rent_amount,deposit_amount,bhk,preferred_tenants,amenities
Pune,Kothrud,900,20000,40000,2 BHK,Family,Lift | Parking | Gym
Mumbai,Andheri,650,35000,100000,1 BHK,Bachelors; Students,Lift
`

func TestImportCSV_HappyPath(t *testing.T) {
	im := NewImporter(0)

	resp, err := im.ImportCSV(strings.NewReader(importCSV), nil)
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}

	if resp.Imported != 2 || resp.Failed != 0 {
		t.Fatalf("Imported = %d, Failed = %d", resp.Imported, resp.Failed)
	}

	first := resp.Records[0]
	if first.City != "Pune" || first.Locality != "Kothrud" {
		t.Errorf("first record = %+v", first)
	}
	if first.AreaSqft != 900 || first.RentAmount != 20000 {
		t.Errorf("numeric fields not coerced: %+v", first)
	}
	if !reflect.DeepEqual(first.Amenities, []string{"Lift", "Parking", "Gym"}) {
		t.Errorf("Amenities = %v", first.Amenities)
	}
	if first.PropertyType != "flat" {
		t.Errorf("defaults not applied: PropertyType = %q", first.PropertyType)
	}

	second := resp.Records[1]
	if !reflect.DeepEqual(second.PreferredTenants, []string{"Bachelors", "Students"}) {
		t.Errorf("PreferredTenants = %v", second.PreferredTenants)
	}
}

func TestImportCSV_ColumnRename(t *testing.T) {
	im := NewImporter(0)

	csvData := "Town,Area Name,sqft,Monthly Rent,deposit_amount\nPune,Kothrud,900,20000,40000\n"
	columnMap := map[string]string{
		"Town":         "city",
		"Area Name":    "locality",
		"sqft":         "area_sqft",
		"Monthly Rent": "rent_amount",
	}

	resp, err := im.ImportCSV(strings.NewReader(csvData), columnMap)
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}
	if resp.Imported != 1 {
		t.Fatalf("Imported = %d, want 1; errors: %v", resp.Imported, resp.Errors)
	}

	r := resp.Records[0]
	if r.City != "Pune" || r.Locality != "Kothrud" || r.AreaSqft != 900 || r.RentAmount != 20000 {
		t.Errorf("renamed columns not mapped: %+v", r)
	}
}

func TestImportCSV_HeaderNormalization(t *testing.T) {
	im := NewImporter(0)

	// Mixed case and spaces in headers resolve without a rename map.
	csvData := "City,Locality,Area Sqft,Rent Amount\nPune,Kothrud,900,20000\n"
	resp, err := im.ImportCSV(strings.NewReader(csvData), nil)
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}
	if resp.Imported != 1 {
		t.Fatalf("Imported = %d, want 1; errors: %v", resp.Imported, resp.Errors)
	}
	if resp.Records[0].AreaSqft != 900 {
		t.Errorf("AreaSqft = %d", resp.Records[0].AreaSqft)
	}
}

func TestImportCSV_CollectsRowErrors(t *testing.T) {
	im := NewImporter(0)

	csvData := `city,locality,area_sqft,rent_amount
Pune,Kothrud,900,20000
Pune,Kothrud,not-a-number,20000
,Kothrud,900,20000
Mumbai,Andheri,650,35000
`
	resp, err := im.ImportCSV(strings.NewReader(csvData), nil)
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}

	if resp.Imported != 2 {
		t.Errorf("Imported = %d, want 2", resp.Imported)
	}
	if resp.Failed != 2 {
		t.Fatalf("Failed = %d, want 2; errors: %v", resp.Failed, resp.Errors)
	}

	// Row numbers count the header as row 1.
	if resp.Errors[0].Row != 3 {
		t.Errorf("first error row = %d, want 3", resp.Errors[0].Row)
	}
	if !strings.Contains(resp.Errors[0].Reason, "area_sqft") {
		t.Errorf("first error reason = %q", resp.Errors[0].Reason)
	}
	if resp.Errors[1].Row != 4 {
		t.Errorf("second error row = %d, want 4", resp.Errors[1].Row)
	}
	if !strings.Contains(resp.Errors[1].Reason, "city") {
		t.Errorf("second error reason = %q", resp.Errors[1].Reason)
	}
}

func TestImportCSV_RowLimit(t *testing.T) {
	im := NewImporter(2)

	var b strings.Builder
	b.WriteString("city,locality,area_sqft\n")
	for i := 0; i < 3; i++ {
		b.WriteString("Pune,Kothrud,900\n")
	}

	if _, err := im.ImportCSV(strings.NewReader(b.String()), nil); err == nil {
		t.Error("import over the row limit should fail")
	}
}

func TestImportCSV_UnknownColumnsIgnored(t *testing.T) {
	im := NewImporter(0)

	csvData := "city,locality,area_sqft,agent_name\nPune,Kothrud,900,Ravi\n"
	resp, err := im.ImportCSV(strings.NewReader(csvData), nil)
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}
	if resp.Imported != 1 {
		t.Fatalf("Imported = %d, want 1; errors: %v", resp.Imported, resp.Errors)
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Lift | Parking | Gym", []string{"Lift", "Parking", "Gym"}},
		{"Lift;Parking", []string{"Lift", "Parking"}},
		{"Lift, Parking", []string{"Lift", "Parking"}},
		{"Lift", []string{"Lift"}},
		{" , ,", nil},
	}
	for _, tt := range tests {
		if got := splitTags(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitTags(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
