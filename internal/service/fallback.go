package service

import (
	"fmt"

	"listinggen/internal/model"
)

// GenerateFallback produces a deterministic template-based result for a
// record. Pure and total: no I/O, no randomness, byte-identical output for
// identical input. Used whenever the completion path is unavailable or
// returns a failure.
func GenerateFallback(record *model.PropertyRecord) *model.GenerationResult {
	bhk := record.BHK
	propType := titleCase(record.PropertyType)
	locality := record.Locality
	city := record.City
	area := record.AreaSqft
	rent := formatINR(record.RentAmount)
	furnishing := titleCase(record.FurnishingStatus)

	extraInfo := ""
	if notes := record.RoughDescription; notes != "" {
		extraInfo = " " + notes
	}

	return &model.GenerationResult{
		Title: fmt.Sprintf("Spacious %s %s for Rent in %s", bhk, propType, locality),
		TeaserText: fmt.Sprintf("Well-maintained %s %s in prime %s location",
			bhk, propType, locality),
		FullDescription: fmt.Sprintf(
			"Looking for a comfortable home? This beautiful %s %s in %s, %s is perfect for you. "+
				"Spread across %d sqft, this %s furnished property offers great value at ₹%s/month.%s",
			bhk, propType, locality, city, area, furnishing, rent, extraInfo),
		BulletPoints: []string{
			fmt.Sprintf("%s with %d sqft area", bhk, area),
			fmt.Sprintf("%s furnished with modern fittings", furnishing),
			fmt.Sprintf("Monthly rent: ₹%s", rent),
			fmt.Sprintf("Preferred for: %s", record.TenantsLine()),
			fmt.Sprintf("Available from: %s", record.AvailableFrom),
		},
		SEOKeywords: []string{
			fmt.Sprintf("%s bhk %s", bhk, city),
			fmt.Sprintf("%s rental", locality),
			fmt.Sprintf("%s rent", propType),
			fmt.Sprintf("flat %s", locality),
			fmt.Sprintf("rent %s", city),
		},
		MetaTitle: fmt.Sprintf("%s %s for Rent in %s", bhk, propType, locality),
		MetaDescription: fmt.Sprintf("Rent this %s in %s, %s. %d sqft, %s. ₹%s/month.",
			bhk, locality, city, area, furnishing, rent),
	}
}
