package seed

import "plantcompareapi/pkg/schemas"

// Plants returns the curated records served when no database is configured.
// This is a demo affordance, not a cache: the list is fixed and read-only.
func Plants() []schemas.Plant {
	return []schemas.Plant{
		{
			Name:           "Monstera Deliciosa",
			ScientificName: str("Monstera deliciosa"),
			Description:    str("Iconic split leaves, fast grower and forgiving."),
			ImageURL:       str("https://images.unsplash.com/photo-1519681393784-d120267933ba?q=80&w=1200&auto=format&fit=crop"),
			Light:          schemas.LightBright,
			Water:          schemas.WaterModerate,
			CareLevel:      schemas.CareEasy,
			PetFriendly:    false,
			Size:           schemas.SizeLarge,
			Tags:           []string{"statement", "fast-growing"},
		},
		{
			Name:           "Snake Plant",
			ScientificName: str("Sansevieria trifasciata"),
			Description:    str("Thrives on neglect, great for low light."),
			ImageURL:       str("https://images.unsplash.com/photo-1587300003388-59208cc962cb?q=80&w=1200&auto=format&fit=crop"),
			Light:          schemas.LightLow,
			Water:          schemas.WaterLow,
			CareLevel:      schemas.CareEasy,
			PetFriendly:    false,
			Size:           schemas.SizeMedium,
			Tags:           []string{"air-purifier", "beginner"},
		},
		{
			Name:           "ZZ Plant",
			ScientificName: str("Zamioculcas zamiifolia"),
			Description:    str("Glossy leaves, tolerates low light and infrequent watering."),
			ImageURL:       str("https://images.unsplash.com/photo-1620916566398-579615a6df65?q=80&w=1200&auto=format&fit=crop"),
			Light:          schemas.LightLow,
			Water:          schemas.WaterLow,
			CareLevel:      schemas.CareEasy,
			PetFriendly:    false,
			Size:           schemas.SizeMedium,
			Tags:           []string{"hardy", "office"},
		},
		{
			Name:           "Pothos",
			ScientificName: str("Epipremnum aureum"),
			Description:    str("Vining plant that adapts to many conditions."),
			ImageURL:       str("https://images.unsplash.com/photo-1601482256584-5f934a95a204?q=80&w=1200&auto=format&fit=crop"),
			Light:          schemas.LightMedium,
			Water:          schemas.WaterModerate,
			CareLevel:      schemas.CareEasy,
			PetFriendly:    false,
			Size:           schemas.SizeMedium,
			Tags:           []string{"trailing", "versatile"},
		},
		{
			Name:           "Parlor Palm",
			ScientificName: str("Chamaedorea elegans"),
			Description:    str("Pet-friendly palm that tolerates low light."),
			ImageURL:       str("https://images.unsplash.com/photo-1501004318641-b39e6451bec6?q=80&w=1200&auto=format&fit=crop"),
			Light:          schemas.LightLow,
			Water:          schemas.WaterModerate,
			CareLevel:      schemas.CareModerate,
			PetFriendly:    true,
			Size:           schemas.SizeMedium,
			Tags:           []string{"pet-safe", "palm"},
		},
	}
}

func str(s string) *string {
	return &s
}
