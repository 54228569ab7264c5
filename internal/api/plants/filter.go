package plants

import (
	"regexp"
	"slices"
	"strings"

	"plantcompareapi/pkg/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Query holds the optional list criteria. Zero values impose no constraint.
type Query struct {
	Q           string
	Light       string
	Water       string
	CareLevel   string
	PetFriendly *bool
	Size        string
	Tag         string
}

// BuildFilter translates the criteria into a conjunctive Mongo predicate.
// Free-text search is a case-insensitive literal substring match over name,
// scientific name and description.
func BuildFilter(q Query) bson.M {

	filt := bson.M{}

	if q.Q != "" {
		pattern := regexp.QuoteMeta(q.Q)
		filt["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"scientific_name": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	if q.Light != "" {
		filt["light"] = q.Light
	}
	if q.Water != "" {
		filt["water"] = q.Water
	}
	if q.CareLevel != "" {
		filt["care_level"] = q.CareLevel
	}
	if q.PetFriendly != nil {
		filt["pet_friendly"] = *q.PetFriendly
	}
	if q.Size != "" {
		filt["size"] = q.Size
	}
	if q.Tag != "" {
		filt["tags"] = bson.M{"$in": bson.A{q.Tag}}
	}

	return filt

}

// MatchSeed applies the same predicate in memory, for the seed fallback path.
func MatchSeed(p schemas.Plant, q Query) bool {

	if q.Q != "" {
		needle := strings.ToLower(q.Q)
		if !containsFold(p.Name, needle) &&
			!containsFoldPtr(p.ScientificName, needle) &&
			!containsFoldPtr(p.Description, needle) {
			return false
		}
	}
	if q.Light != "" && p.Light != q.Light {
		return false
	}
	if q.Water != "" && p.Water != q.Water {
		return false
	}
	if q.CareLevel != "" && p.CareLevel != q.CareLevel {
		return false
	}
	if q.PetFriendly != nil && p.PetFriendly != *q.PetFriendly {
		return false
	}
	if q.Size != "" && p.Size != q.Size {
		return false
	}
	if q.Tag != "" && !slices.Contains(p.Tags, q.Tag) {
		return false
	}

	return true

}

func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}

func containsFoldPtr(s *string, lowerNeedle string) bool {
	return s != nil && containsFold(*s, lowerNeedle)
}
