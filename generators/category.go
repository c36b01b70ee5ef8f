package generators

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"datagen/faker"
	"datagen/models"
)

var categoryStatuses = []string{
	string(models.CategoryActive),
	string(models.CategoryInactive),
}

// NewCategory builds one category with a slug guaranteed fresh against
// slugs. parentID is nil for a root node; when set it must be the id of a
// category created earlier — the generator only accepts a parent, it never
// searches for one.
func NewCategory(f *faker.Faker, slugs *Registry, parentID *primitive.ObjectID) (models.Category, error) {
	name := f.CapitalizedWord() + " " + f.CapitalizedWord()
	slug, err := Slugify(name, f, slugs)
	if err != nil {
		return models.Category{}, err
	}

	title := f.Sentence(6)
	if len(title) > 60 {
		title = title[:60]
	}

	return models.Category{
		ID:          NewID(),
		Name:        name,
		Slug:        slug,
		Description: f.Text(200),
		ParentID:    parentID,
		Image:       f.ImageURL(),
		SortOrder:   f.IntBetween(0, 100),
		Featured:    f.Bool(),
		Status:      models.CategoryStatus(f.Pick(categoryStatuses)),
		SEO: models.CategorySEO{
			MetaTitle:       title,
			MetaDescription: f.Text(160),
			Keywords:        f.Words(f.IntBetween(3, 8)),
		},
		CreatedAt: f.PastTime(historyWindow),
		UpdatedAt: f.PastTime(historyWindow),
	}, nil
}
