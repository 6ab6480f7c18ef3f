package mongo

import (
	"inventory/domain"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stableSort orders listings by creation time with the id as tie breaker.
var stableSort = bson.D{
	{Key: "createdAt", Value: 1},
	{Key: "_id", Value: 1},
}

// nameRegex matches name as a literal, case-insensitive substring. ok is
// false for a blank name.
func nameRegex(name string) (primitive.Regex, bool) {
	if strings.TrimSpace(name) == "" {
		return primitive.Regex{}, false
	}

	return primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"}, true
}

func categoryFilter(f domain.CategoryFilter) bson.D {
	filter := bson.D{}
	if re, ok := nameRegex(f.Name); ok {
		filter = append(filter, bson.E{Key: "name", Value: re})
	}
	return filter
}

func productFilter(f domain.ProductFilter) bson.D {
	filter := bson.D{}
	if re, ok := nameRegex(f.Name); ok {
		filter = append(filter, bson.E{Key: "name", Value: re})
	}
	if f.CategoryID != "" {
		filter = append(filter, bson.E{Key: "categoryId", Value: f.CategoryID})
	}
	return filter
}

func byID(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}
