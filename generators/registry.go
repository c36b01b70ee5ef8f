package generators

import "go.mongodb.org/mongo-driver/bson/primitive"

// Registry tracks values already issued for one code family (emails, SKUs,
// slugs, order numbers). It is passed explicitly into each generator call
// instead of living as process-wide state, so test runs never leak into
// each other.
type Registry struct {
	seen map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]struct{})}
}

func (r *Registry) Has(v string) bool {
	_, ok := r.seen[v]
	return ok
}

// Add records v and reports whether it was fresh.
func (r *Registry) Add(v string) bool {
	if r.Has(v) {
		return false
	}
	r.seen[v] = struct{}{}
	return true
}

func (r *Registry) Len() int { return len(r.seen) }

// PairRegistry deduplicates id pairs: (productId, userId) for reviews and
// (productId, categoryId) for category links.
type PairRegistry struct {
	seen map[[2]primitive.ObjectID]struct{}
}

func NewPairRegistry() *PairRegistry {
	return &PairRegistry{seen: make(map[[2]primitive.ObjectID]struct{})}
}

func (r *PairRegistry) Has(a, b primitive.ObjectID) bool {
	_, ok := r.seen[[2]primitive.ObjectID{a, b}]
	return ok
}

// Add records the pair and reports whether it was fresh.
func (r *PairRegistry) Add(a, b primitive.ObjectID) bool {
	if r.Has(a, b) {
		return false
	}
	r.seen[[2]primitive.ObjectID{a, b}] = struct{}{}
	return true
}

func (r *PairRegistry) Len() int { return len(r.seen) }
