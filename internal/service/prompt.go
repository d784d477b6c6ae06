package service

import (
	"fmt"
	"strings"

	"listinggen/internal/model"
)

// Variation is one fixed creative angle applied to a generation prompt.
type Variation struct {
	Name        string
	Focus       string
	Tone        string
	Instruction string
}

// The five creative angles, cycled by the session's generation counter.
var Variations = []Variation{
	{
		Name:        "Lifestyle",
		Focus:       "lifestyle and experience",
		Tone:        "aspirational and emotional",
		Instruction: "Focus on the lifestyle transformation and daily experiences this property offers.",
	},
	{
		Name:        "Investment",
		Focus:       "investment value and practicality",
		Tone:        "professional and value-driven",
		Instruction: "Emphasize the practical benefits, value for money, and smart investment aspects.",
	},
	{
		Name:        "Location",
		Focus:       "location benefits and connectivity",
		Tone:        "convenience-focused and modern",
		Instruction: "Highlight the strategic location, connectivity advantages, and nearby conveniences.",
	},
	{
		Name:        "Luxury",
		Focus:       "comfort and luxury features",
		Tone:        "premium and sophisticated",
		Instruction: "Emphasize the premium features, comfort elements, and luxurious living experience.",
	},
	{
		Name:        "Community",
		Focus:       "community and safety",
		Tone:        "warm and family-oriented",
		Instruction: "Focus on the safe neighborhood, community aspects, and family-friendly environment.",
	},
}

// VariationFor selects the creative angle for a generation counter.
func VariationFor(seed int) Variation {
	if seed < 0 {
		seed = -seed
	}
	return Variations[seed%len(Variations)]
}

// TemperatureFor derives the sampling temperature from the variation seed.
// Base 0.8 plus a small step per seed; wrapped back into range instead of
// exceeding 1.0.
func TemperatureFor(seed int) float64 {
	if seed < 0 {
		seed = -seed
	}
	temperature := 0.8 + float64(seed)*0.05
	if temperature > 1.0 {
		temperature = 0.8 + float64(seed%3)*0.05
	}
	return temperature
}

// SystemPromptFor renders the copywriter system message for a variation.
func SystemPromptFor(v Variation) string {
	return fmt.Sprintf(
		"You are an expert real estate copywriter. Focus: %s. Tone: %s. Return only valid JSON.",
		v.Focus, v.Tone,
	)
}

// BuildListingPrompt renders the primary generation instruction for a record
// at the given variation seed. Pure string construction.
func BuildListingPrompt(record *model.PropertyRecord, seed int) string {
	variation := VariationFor(seed)

	amenities := "Standard amenities"
	if len(record.Amenities) > 0 {
		amenities = strings.Join(record.Amenities, ", ")
	}

	nearby := "Various conveniences"
	if len(record.NearbyPoints) > 0 {
		nearby = strings.Join(record.NearbyPoints, ", ")
	}

	fullLocation := fmt.Sprintf("%s, %s", record.Locality, record.City)
	if record.District != "" {
		fullLocation += ", " + record.District
	}
	if record.State != "" {
		fullLocation += ", " + record.State
	}
	if record.Pincode != "" {
		fullLocation += " - " + record.Pincode
	}
	if record.Landmark != "" {
		fullLocation += fmt.Sprintf(" (Near %s)", record.Landmark)
	}

	floorInfo := ""
	if record.FloorNo != nil && record.TotalFloors != nil {
		floorInfo = fmt.Sprintf("\n- Floor: %d of %d floors", *record.FloorNo, *record.TotalFloors)
	}

	maintenanceInfo := ""
	if record.Maintenance > 0 {
		maintenanceInfo = fmt.Sprintf("\n- Maintenance: ₹%s/month", formatINR(record.Maintenance))
	}

	notesSection := ""
	if notes := strings.TrimSpace(record.RoughDescription); notes != "" {
		notesSection = fmt.Sprintf(`

**Owner's Additional Notes/Description:**
"%s"
(IMPORTANT: Please incorporate these owner-provided details naturally and prominently into the description!)
`, notes)
	}

	var b strings.Builder
	b.WriteString("You are an expert real estate copywriter specializing in premium property listings.\n\n")
	b.WriteString("Create a compelling rental property listing for:\n\n")
	b.WriteString("**Property Details:**\n")
	fmt.Fprintf(&b, "- Type: %s %s\n", record.BHK, titleCase(record.PropertyType))
	fmt.Fprintf(&b, "- Location: %s\n", fullLocation)
	fmt.Fprintf(&b, "- Area: %d square feet%s\n", record.AreaSqft, floorInfo)
	fmt.Fprintf(&b, "- Monthly Rent: ₹%s\n", formatINR(record.RentAmount))
	fmt.Fprintf(&b, "- Security Deposit: ₹%s%s\n", formatINR(record.DepositAmount), maintenanceInfo)
	fmt.Fprintf(&b, "- Furnishing: %s furnished\n", record.FurnishingStatus)
	fmt.Fprintf(&b, "- Amenities: %s\n", amenities)
	fmt.Fprintf(&b, "- Preferred Tenants: %s\n", record.TenantsLine())
	fmt.Fprintf(&b, "- Available From: %s\n", record.AvailableFrom)
	fmt.Fprintf(&b, "- Nearby: %s\n", nearby)
	b.WriteString(notesSection)
	fmt.Fprintf(&b, "\n**CREATIVE DIRECTION (Version #%d):**\n", seed+1)
	fmt.Fprintf(&b, "- Primary Focus: %s\n", variation.Focus)
	fmt.Fprintf(&b, "- Tone: %s\n", variation.Tone)
	fmt.Fprintf(&b, "- Instruction: %s\n", variation.Instruction)
	b.WriteString(`
**Requirements:**
1. **Title**: Attention-grabbing, emotional title (8-12 words). DO NOT start with "Discover" or "Welcome".
2. **Teaser**: Compelling hook (15-20 words) with urgency
3. **Full Description**: Engaging 150-200 word description with lifestyle benefits
4. **Bullet Points**: 5 benefit-focused features
5. **SEO Keywords**: 5 search-optimized keywords
6. **Meta Title**: Under 60 chars
7. **Meta Description**: Under 160 chars with CTA

Return ONLY valid JSON:
{
    "title": "captivating title here",
    "teaser_text": "compelling teaser here",
    "full_description": "detailed description here",
    "bullet_points": ["benefit 1", "benefit 2", "benefit 3", "benefit 4", "benefit 5"],
    "seo_keywords": ["keyword1", "keyword2", "keyword3", "keyword4", "keyword5"],
    "meta_title": "SEO meta title",
    "meta_description": "SEO meta description with CTA"
}`)

	return b.String()
}

// Enhancement styles and their prompt instructions.
var EnhanceStyles = map[string]string{
	"More Detailed & Elaborate":    "Add more specific details about each feature and room descriptions.",
	"More Emotional & Persuasive":  "Use emotional triggers and create vivid lifestyle imagery.",
	"More Professional & Formal":   "Use sophisticated vocabulary and focus on specifications.",
	"Add Local Flavor & Culture":   "Include references to local culture and neighborhood character.",
	"Focus on Investment Value":    "Emphasize rental yield potential and location growth.",
	"Luxury & Premium Feel":        "Use upscale vocabulary and emphasize exclusivity.",
}

// Target length bands for enhancement.
var EnhanceLengths = map[string]string{
	"Medium (200-250 words)":     "200-250 words",
	"Long (300-350 words)":       "300-350 words",
	"Extra Long (400-500 words)": "400-500 words",
}

// EnhanceSystemPrompt is the fixed system message for the enhancement call.
const EnhanceSystemPrompt = "You are an expert real estate copywriter. Return only the enhanced description."

// BuildEnhancePrompt renders the "enhance this text" instruction. Unknown
// style or length names fall back to the original defaults.
func BuildEnhancePrompt(originalDesc string, record *model.PropertyRecord, style, length string) string {
	styleGuide, ok := EnhanceStyles[style]
	if !ok {
		styleGuide = "Make it more detailed."
	}
	targetLength, ok := EnhanceLengths[length]
	if !ok {
		targetLength = "250-300 words"
	}

	location := fmt.Sprintf("%s, %s", record.Locality, record.City)

	return fmt.Sprintf(`Enhance this property description:

**ORIGINAL:**
%s

**PROPERTY:**
- %s %s
- Location: %s
- Area: %d sq ft
- Rent: ₹%s/month

**STYLE:** %s
**LENGTH:** %s

Return ONLY the enhanced description text, nothing else.`,
		originalDesc,
		record.BHK, titleCase(record.PropertyType),
		location,
		record.AreaSqft,
		formatINR(record.RentAmount),
		styleGuide,
		targetLength,
	)
}

// formatINR renders an amount with comma grouping ("20000" -> "20,000").
func formatINR(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// titleCase capitalizes the first letter of every space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
