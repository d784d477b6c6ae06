package model

import (
	"fmt"
	"strings"
	"time"
)

// PropertyRecord represents the structured input describing one rental listing.
// It is rebuilt wholesale from the submitted form on every generation request.
type PropertyRecord struct {
	PropertyType     string   `json:"property_type"`
	BHK              string   `json:"bhk"`
	AreaSqft         int      `json:"area_sqft"`
	State            string   `json:"state,omitempty"`
	District         string   `json:"district,omitempty"`
	City             string   `json:"city"`
	Locality         string   `json:"locality"`
	Pincode          string   `json:"pincode,omitempty"`
	Landmark         string   `json:"landmark,omitempty"`
	FloorNo          *int     `json:"floor_no,omitempty"`
	TotalFloors      *int     `json:"total_floors,omitempty"`
	FurnishingStatus string   `json:"furnishing_status"`
	RentAmount       int      `json:"rent_amount"`
	DepositAmount    int      `json:"deposit_amount"`
	Maintenance      int      `json:"maintenance,omitempty"`
	AvailableFrom    string   `json:"available_from"`
	PreferredTenants []string `json:"preferred_tenants"`
	Amenities        []string `json:"amenities,omitempty"`
	NearbyPoints     []string `json:"nearby_points,omitempty"`
	RoughDescription string   `json:"rough_description,omitempty"`
}

// Enumerated vocabularies for the form-driven fields.
var (
	PropertyTypes = []string{
		"flat", "villa", "independent house", "pg/hostel",
		"shop", "office space", "studio apartment", "penthouse",
	}
	BHKOptions = []string{
		"1 RK", "1 BHK", "2 BHK", "3 BHK", "4 BHK", "5 BHK", "5+ BHK", "Studio",
	}
	FurnishingLevels = []string{"unfurnished", "semi-furnished", "fully furnished"}
	TenantTypes      = []string{"Family", "Bachelors", "Students", "Company Lease", "Any"}
	States           = []string{
		"Maharashtra", "Delhi", "Karnataka", "Tamil Nadu", "Telangana", "Gujarat", "Other",
	}
)

// Validate checks the record against the form contract. City and locality are
// mandatory for any generation request; everything else has defaults.
func (p *PropertyRecord) Validate() error {
	if strings.TrimSpace(p.City) == "" {
		return fmt.Errorf("city is required")
	}
	if strings.TrimSpace(p.Locality) == "" {
		return fmt.Errorf("locality is required")
	}
	if p.AreaSqft <= 0 {
		return fmt.Errorf("area_sqft must be positive")
	}
	if p.RentAmount < 0 {
		return fmt.Errorf("rent_amount must not be negative")
	}
	if p.DepositAmount < 0 {
		return fmt.Errorf("deposit_amount must not be negative")
	}
	if p.Maintenance < 0 {
		return fmt.Errorf("maintenance must not be negative")
	}
	if len(p.PreferredTenants) == 0 {
		return fmt.Errorf("preferred_tenants must not be empty")
	}
	for _, t := range p.PreferredTenants {
		if !containsFold(TenantTypes, t) {
			return fmt.Errorf("invalid tenant type: %s", t)
		}
	}
	if p.FloorNo != nil {
		if *p.FloorNo < 0 {
			return fmt.Errorf("floor_no must not be negative")
		}
		if p.TotalFloors != nil && *p.FloorNo > *p.TotalFloors {
			return fmt.Errorf("floor_no (%d) cannot exceed total_floors (%d)", *p.FloorNo, *p.TotalFloors)
		}
	}
	if p.TotalFloors != nil && *p.TotalFloors < 0 {
		return fmt.Errorf("total_floors must not be negative")
	}
	if p.AvailableFrom != "" {
		if _, err := time.Parse("2006-01-02", p.AvailableFrom); err != nil {
			return fmt.Errorf("available_from must be YYYY-MM-DD: %w", err)
		}
	}
	if p.FurnishingStatus != "" && !containsFold(FurnishingLevels, p.FurnishingStatus) {
		return fmt.Errorf("invalid furnishing_status: %s", p.FurnishingStatus)
	}
	return nil
}

// ApplyDefaults fills the optional enumerated fields the form pre-selects.
func (p *PropertyRecord) ApplyDefaults() {
	if p.PropertyType == "" {
		p.PropertyType = "flat"
	}
	if p.BHK == "" {
		p.BHK = "2 BHK"
	}
	if p.FurnishingStatus == "" {
		p.FurnishingStatus = "unfurnished"
	}
	if p.AvailableFrom == "" {
		p.AvailableFrom = time.Now().Format("2006-01-02")
	}
	if len(p.PreferredTenants) == 0 {
		p.PreferredTenants = []string{"Any"}
	}
}

// TenantsLine renders the tenant set the way the prompt and the fallback
// templates expect it.
func (p *PropertyRecord) TenantsLine() string {
	return strings.Join(p.PreferredTenants, ", ")
}

func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}
