package generators

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"datagen/apperrors"
	"datagen/faker"
	"datagen/models"
)

// Counts fixes the size of each collection. Record counts are owned here,
// not read from external input.
type Counts struct {
	Users          int
	Categories     int
	Products       int
	Orders         int
	Reviews        int
	CategoryLevels int
	RootCategories int
}

// DefaultCounts mirrors the reference dataset: 10k records per collection,
// a three-level category forest seeded with 100 roots.
var DefaultCounts = Counts{
	Users:          10000,
	Categories:     10000,
	Products:       10000,
	Orders:         10000,
	Reviews:        10000,
	CategoryLevels: 3,
	RootCategories: 100,
}

// reviewAttemptFactor caps the review rejection-sampling loop at this many
// attempts per requested review.
const reviewAttemptFactor = 50

// Dataset is the finished, internally consistent set of collections.
type Dataset struct {
	Users             []models.User
	Categories        []models.Category
	Products          []models.Product
	ProductCategories []models.ProductCategory
	Orders            []models.Order
	Reviews           []models.ProductReview
}

// Coordinator sequences the generators so later collections reference
// earlier ones correctly. It holds no state across runs; every registry is
// created fresh inside Generate.
type Coordinator struct {
	faker  *faker.Faker
	counts Counts
	log    *zap.Logger
}

func NewCoordinator(f *faker.Faker, counts Counts, log *zap.Logger) *Coordinator {
	return &Coordinator{faker: f, counts: counts, log: log}
}

// Generate runs the full pipeline:
// Users -> Categories -> Products -> Links -> Orders -> PurchaseIndex ->
// Reviews. Each stage's complete output feeds the next; any failure aborts
// the run.
func (c *Coordinator) Generate() (*Dataset, error) {
	ds := &Dataset{}

	if err := c.generateUsers(ds); err != nil {
		return nil, err
	}
	if err := c.generateCategories(ds); err != nil {
		return nil, err
	}
	if err := c.generateProducts(ds); err != nil {
		return nil, err
	}
	c.linkCategories(ds)
	if err := c.generateOrders(ds); err != nil {
		return nil, err
	}
	if err := c.generateReviews(ds); err != nil {
		return nil, err
	}
	return ds, nil
}

func (c *Coordinator) generateUsers(ds *Dataset) error {
	emails := NewRegistry()
	ds.Users = make([]models.User, 0, c.counts.Users)
	for i := 0; i < c.counts.Users; i++ {
		u, err := NewUser(c.faker, emails)
		if err != nil {
			return err
		}
		ds.Users = append(ds.Users, u)
	}
	c.log.Info("generated users", zap.Int("count", len(ds.Users)))
	return nil
}

// generateCategories builds the forest level by level. Roots come first;
// each deeper level samples parents only from categories created in prior
// levels, which is what guarantees acyclicity. If the level batches leave
// the total short, the remainder is topped up with extra roots.
func (c *Coordinator) generateCategories(ds *Dataset) error {
	slugs := NewRegistry()
	target := c.counts.Categories
	ds.Categories = make([]models.Category, 0, target)

	rootCount := c.counts.RootCategories
	if rootCount > target {
		rootCount = target
	}
	for i := 0; i < rootCount; i++ {
		cat, err := NewCategory(c.faker, slugs, nil)
		if err != nil {
			return err
		}
		ds.Categories = append(ds.Categories, cat)
	}

	remaining := target - rootCount
	for level := 1; level < c.counts.CategoryLevels && remaining > 0; level++ {
		levelCount := c.faker.IntBetween(50, 200)
		if quota := remaining / (c.counts.CategoryLevels - level); levelCount > quota {
			levelCount = quota
		}

		// Level 1 hangs off roots only; deeper levels may pick any
		// already-created category. The current level's batch is collected
		// separately so its members can never parent each other.
		var parents []primitive.ObjectID
		if level == 1 {
			for _, cat := range ds.Categories {
				if cat.ParentID == nil {
					parents = append(parents, cat.ID)
				}
			}
		} else {
			for _, cat := range ds.Categories {
				parents = append(parents, cat.ID)
			}
		}
		if len(parents) == 0 {
			break
		}

		batch := make([]models.Category, 0, levelCount)
		for i := 0; i < levelCount; i++ {
			parentID := parents[c.faker.Intn(len(parents))]
			cat, err := NewCategory(c.faker, slugs, &parentID)
			if err != nil {
				return err
			}
			batch = append(batch, cat)
		}
		ds.Categories = append(ds.Categories, batch...)
		remaining -= len(batch)
	}

	for len(ds.Categories) < target {
		cat, err := NewCategory(c.faker, slugs, nil)
		if err != nil {
			return err
		}
		ds.Categories = append(ds.Categories, cat)
	}
	c.log.Info("generated categories", zap.Int("count", len(ds.Categories)))
	return nil
}

func (c *Coordinator) generateProducts(ds *Dataset) error {
	skus := NewRegistry()
	ds.Products = make([]models.Product, 0, c.counts.Products)
	for i := 0; i < c.counts.Products; i++ {
		p, err := NewProduct(c.faker, skus)
		if err != nil {
			return err
		}
		ds.Products = append(ds.Products, p)
	}
	c.log.Info("generated products", zap.Int("count", len(ds.Products)))
	return nil
}

// linkCategories assigns 1-3 distinct categories to each product, skipping
// pairs already linked, and marks at most one link per product as primary by
// coin-flipping the candidates in order. A product may end up with no
// primary link; that relaxation is intentional.
func (c *Coordinator) linkCategories(ds *Dataset) {
	pairs := NewPairRegistry()
	for _, p := range ds.Products {
		numCategories := c.faker.IntBetween(1, 3)
		if numCategories > len(ds.Categories) {
			numCategories = len(ds.Categories)
		}
		perm := c.faker.Perm(len(ds.Categories))

		primarySet := false
		for _, idx := range perm[:numCategories] {
			cat := ds.Categories[idx]
			if !pairs.Add(p.ID, cat.ID) {
				continue
			}
			link := NewProductCategory(c.faker, p.ID, cat.ID)
			link.IsPrimary = false
			if !primarySet && c.faker.Bool() {
				link.IsPrimary = true
				primarySet = true
			}
			ds.ProductCategories = append(ds.ProductCategories, link)
		}
	}
	c.log.Info("linked product categories", zap.Int("count", len(ds.ProductCategories)))
}

func (c *Coordinator) generateOrders(ds *Dataset) error {
	orderNumbers := NewRegistry()
	ds.Orders = make([]models.Order, 0, c.counts.Orders)
	for i := 0; i < c.counts.Orders; i++ {
		o, err := NewOrder(c.faker, ds.Users, ds.Products, orderNumbers)
		if err != nil {
			return err
		}
		ds.Orders = append(ds.Orders, o)
	}
	c.log.Info("generated orders", zap.Int("count", len(ds.Orders)))
	return nil
}

// generateReviews rejection-samples random (product, user) pairs until the
// target count is reached, bounded by a hard attempt cap so an exhausted
// pair space fails the run instead of spinning forever.
func (c *Coordinator) generateReviews(ds *Dataset) error {
	purchases := BuildPurchaseIndex(ds.Orders)
	pairs := NewPairRegistry()
	ds.Reviews = make([]models.ProductReview, 0, c.counts.Reviews)

	maxAttempts := c.counts.Reviews * reviewAttemptFactor
	for attempts := 0; len(ds.Reviews) < c.counts.Reviews; attempts++ {
		if attempts >= maxAttempts {
			return apperrors.Exhausted("(product, user) review pair")
		}
		product := ds.Products[c.faker.Intn(len(ds.Products))]
		user := ds.Users[c.faker.Intn(len(ds.Users))]
		review, ok := NewProductReview(c.faker, product.ID, user.ID, purchases, pairs)
		if !ok {
			continue
		}
		ds.Reviews = append(ds.Reviews, review)
	}
	c.log.Info("generated reviews", zap.Int("count", len(ds.Reviews)))
	return nil
}
