package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"listinggen/internal/model"
)

// Importer normalizes tabular listing data into property records. Rows that
// fail coercion or validation are collected per row without aborting the
// batch.
type Importer struct {
	maxRows int
}

// NewImporter creates an importer with a row cap.
func NewImporter(maxRows int) *Importer {
	if maxRows <= 0 {
		maxRows = 500
	}
	return &Importer{maxRows: maxRows}
}

// Canonical column names accepted after renaming.
var importColumns = map[string]bool{
	"property_type": true, "bhk": true, "area_sqft": true,
	"state": true, "district": true, "city": true, "locality": true,
	"pincode": true, "landmark": true, "floor_no": true, "total_floors": true,
	"furnishing_status": true, "rent_amount": true, "deposit_amount": true,
	"maintenance": true, "available_from": true, "preferred_tenants": true,
	"amenities": true, "nearby_points": true, "rough_description": true,
}

// ImportCSV reads a CSV stream with a header row, applies the user-supplied
// column-rename map (source header -> canonical name), and coerces each row
// into a PropertyRecord.
func (im *Importer) ImportCSV(r io.Reader, columnMap map[string]string) (*model.ImportResponse, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	// Resolve every header to a canonical column, via the rename map first.
	columns := make([]string, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if renamed, ok := columnMap[h]; ok {
			name = strings.ToLower(strings.TrimSpace(renamed))
		} else if renamed, ok := columnMap[name]; ok {
			name = strings.ToLower(strings.TrimSpace(renamed))
		}
		name = strings.ReplaceAll(name, " ", "_")
		if importColumns[name] {
			columns[i] = name
		}
	}

	resp := &model.ImportResponse{}
	rowNum := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			resp.Errors = append(resp.Errors, model.ImportRowError{Row: rowNum, Reason: err.Error()})
			resp.Failed++
			continue
		}
		if len(resp.Records) >= im.maxRows {
			return nil, fmt.Errorf("import exceeds row limit of %d", im.maxRows)
		}

		record, err := im.coerceRow(columns, row)
		if err != nil {
			resp.Errors = append(resp.Errors, model.ImportRowError{Row: rowNum, Reason: err.Error()})
			resp.Failed++
			continue
		}
		resp.Records = append(resp.Records, *record)
		resp.Imported++
	}

	return resp, nil
}

func (im *Importer) coerceRow(columns, row []string) (*model.PropertyRecord, error) {
	record := &model.PropertyRecord{}

	for i, value := range row {
		if i >= len(columns) || columns[i] == "" {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		switch columns[i] {
		case "property_type":
			record.PropertyType = strings.ToLower(value)
		case "bhk":
			record.BHK = value
		case "area_sqft":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("area_sqft: %q is not a number", value)
			}
			record.AreaSqft = n
		case "state":
			record.State = value
		case "district":
			record.District = value
		case "city":
			record.City = value
		case "locality":
			record.Locality = value
		case "pincode":
			record.Pincode = value
		case "landmark":
			record.Landmark = value
		case "floor_no":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("floor_no: %q is not a number", value)
			}
			record.FloorNo = &n
		case "total_floors":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("total_floors: %q is not a number", value)
			}
			record.TotalFloors = &n
		case "furnishing_status":
			record.FurnishingStatus = strings.ToLower(value)
		case "rent_amount":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("rent_amount: %q is not a number", value)
			}
			record.RentAmount = n
		case "deposit_amount":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("deposit_amount: %q is not a number", value)
			}
			record.DepositAmount = n
		case "maintenance":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("maintenance: %q is not a number", value)
			}
			record.Maintenance = n
		case "available_from":
			record.AvailableFrom = value
		case "preferred_tenants":
			record.PreferredTenants = splitTags(value)
		case "amenities":
			record.Amenities = splitTags(value)
		case "nearby_points":
			record.NearbyPoints = splitTags(value)
		case "rough_description":
			record.RoughDescription = value
		}
	}

	record.ApplyDefaults()
	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}

// splitTags splits a cell on the common tag separators.
func splitTags(value string) []string {
	sep := ","
	if strings.Contains(value, "|") {
		sep = "|"
	} else if strings.Contains(value, ";") {
		sep = ";"
	}
	var tags []string
	for _, part := range strings.Split(value, sep) {
		if p := strings.TrimSpace(part); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
