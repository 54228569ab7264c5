package schemas

// PlantJSONSchema returns the JSON Schema document for the plant collection,
// served on /schema for external tooling introspection. The enum literals and
// numeric bounds here must stay in sync with the validate tags on Plant.
func PlantJSONSchema() map[string]any {
	return map[string]any{
		"title":       "Plant",
		"description": "Houseplants collection schema",
		"type":        "object",
		"properties": map[string]any{
			"name": map[string]any{
				"type":        "string",
				"description": "Common name",
			},
			"scientific_name": map[string]any{
				"type":        "string",
				"description": "Botanical name",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "Short description and care notes",
			},
			"image_url": map[string]any{
				"type":        "string",
				"format":      "uri",
				"description": "Image URL",
			},
			"light": map[string]any{
				"type":        "string",
				"enum":        []string{LightLow, LightMedium, LightBright},
				"description": "Preferred light level",
			},
			"water": map[string]any{
				"type":        "string",
				"enum":        []string{WaterLow, WaterModerate, WaterHigh},
				"description": "Watering needs",
			},
			"care_level": map[string]any{
				"type":        "string",
				"enum":        []string{CareEasy, CareModerate, CareAdvanced},
				"description": "Overall difficulty",
			},
			"pet_friendly": map[string]any{
				"type":        "boolean",
				"default":     false,
				"description": "Safe for pets",
			},
			"size": map[string]any{
				"type":        "string",
				"enum":        []string{SizeSmall, SizeMedium, SizeLarge},
				"default":     SizeMedium,
				"description": "Typical mature size indoors",
			},
			"humidity": map[string]any{
				"type":        "string",
				"description": "Humidity preference",
			},
			"placement": map[string]any{
				"type":        "string",
				"description": "Best placement e.g., north window",
			},
			"growth_rate": map[string]any{
				"type":        "string",
				"description": "Slow / Moderate / Fast",
			},
			"ideal_temp_min_c": map[string]any{
				"type":        "number",
				"description": "Min ideal temp in °C",
			},
			"ideal_temp_max_c": map[string]any{
				"type":        "number",
				"description": "Max ideal temp in °C",
			},
			"price": map[string]any{
				"type":        "number",
				"minimum":     0,
				"description": "Typical price in dollars",
			},
			"tags": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Extra labels for filtering",
			},
		},
		"required": []string{"name", "light", "water", "care_level"},
	}
}
