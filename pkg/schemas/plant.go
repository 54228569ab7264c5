package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Enum values accepted by the plant schema. Validation rejects anything
// outside these sets on write.
const (
	LightLow    = "low"
	LightMedium = "medium"
	LightBright = "bright"

	WaterLow      = "low"
	WaterModerate = "moderate"
	WaterHigh     = "high"

	CareEasy     = "easy"
	CareModerate = "moderate"
	CareAdvanced = "advanced"

	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

type Plant struct {
	Id        bson.ObjectID `bson:"_id,omitempty" json:"-"`
	CreatedAt time.Time     `bson:"created_at,omitempty" json:"-"`
	UpdatedAt time.Time     `bson:"updated_at,omitempty" json:"-"`

	Name           string   `bson:"name" json:"name" validate:"required,maxgraphemes=128"`
	ScientificName *string  `bson:"scientific_name,omitempty" json:"scientific_name,omitempty" validate:"omitempty,maxgraphemes=128"`
	Description    *string  `bson:"description,omitempty" json:"description,omitempty" validate:"omitempty,maxgraphemes=2048"`
	ImageURL       *string  `bson:"image_url,omitempty" json:"image_url,omitempty" validate:"omitempty,url"`
	Light          string   `bson:"light" json:"light" validate:"required,oneof=low medium bright"`
	Water          string   `bson:"water" json:"water" validate:"required,oneof=low moderate high"`
	CareLevel      string   `bson:"care_level" json:"care_level" validate:"required,oneof=easy moderate advanced"`
	PetFriendly    bool     `bson:"pet_friendly" json:"pet_friendly"`
	Size           string   `bson:"size" json:"size" validate:"omitempty,oneof=small medium large"`
	Humidity       *string  `bson:"humidity,omitempty" json:"humidity,omitempty"`
	Placement      *string  `bson:"placement,omitempty" json:"placement,omitempty"`
	GrowthRate     *string  `bson:"growth_rate,omitempty" json:"growth_rate,omitempty"`
	IdealTempMinC  *float64 `bson:"ideal_temp_min_c,omitempty" json:"ideal_temp_min_c,omitempty"`
	IdealTempMaxC  *float64 `bson:"ideal_temp_max_c,omitempty" json:"ideal_temp_max_c,omitempty"`
	Price          *float64 `bson:"price,omitempty" json:"price,omitempty" validate:"omitempty,gte=0"`
	Tags           []string `bson:"tags,omitempty" json:"tags,omitempty"`
}

// ApplyDefaults fills schema defaults for fields the client omitted.
func (p *Plant) ApplyDefaults() {
	if p.Size == "" {
		p.Size = SizeMedium
	}
}

// SetTimestamps assigns the server-side creation and update times.
func (p *Plant) SetTimestamps(t time.Time) {
	p.CreatedAt = t
	p.UpdatedAt = t
}
