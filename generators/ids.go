package generators

import (
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"datagen/apperrors"
	"datagen/faker"
)

// maxCodeAttempts bounds every uniqueness retry loop. The code spaces are
// large relative to the requested counts, so hitting the cap means the
// configuration asks for more values than the family can supply.
const maxCodeAttempts = 1000

var slugStrip = regexp.MustCompile(`[^a-z0-9-]`)

// NewID returns a fresh 24-hex-char object id. ObjectIDs embed a timestamp
// and enough entropy that collisions are impossible by construction.
func NewID() primitive.ObjectID {
	return primitive.NewObjectID()
}

// NewUniqueCode draws from gen until it produces a value not yet in reg,
// recording the accepted value. Fails with the exhausted error once the
// attempt cap is reached.
func NewUniqueCode(gen func() string, reg *Registry) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		if code := gen(); reg.Add(code) {
			return code, nil
		}
	}
	return "", apperrors.Exhausted("code")
}

// OrderNumberFunc yields codes of the form ORD-########.
func OrderNumberFunc(f *faker.Faker) func() string {
	return func() string {
		return fmt.Sprintf("ORD-%d", f.IntBetween(10000000, 99999999))
	}
}

// SKUFunc yields codes of the form SKU-####-A.
func SKUFunc(f *faker.Faker) func() string {
	variants := []string{"A", "B", "C"}
	return func() string {
		return fmt.Sprintf("SKU-%d-%s", f.IntBetween(1000, 9999), f.Pick(variants))
	}
}

// Slugify lowercases name, turns whitespace into hyphens, strips everything
// outside [a-z0-9-], then disambiguates against reg with random numeric
// suffixes until unique.
func Slugify(name string, f *faker.Faker, reg *Registry) (string, error) {
	base := strings.ToLower(name)
	base = strings.Join(strings.Fields(base), "-")
	base = slugStrip.ReplaceAllString(base, "")

	if reg.Add(base) {
		return base, nil
	}
	for i := 0; i < maxCodeAttempts; i++ {
		slug := fmt.Sprintf("%s-%d", base, f.IntBetween(1000, 9999))
		if reg.Add(slug) {
			return slug, nil
		}
	}
	return "", apperrors.Exhausted("slug")
}
