package catalog

import (
	"context"
	"sort"
)

// MemoryRepository serves the catalog from in-process slices. Used in tests
// and in dev mode when no POSTGRES_DSN is configured. The data is read-only
// after construction, so no locking is needed.
type MemoryRepository struct {
	products []Product
	services []Service
	posts    []BlogPost
	slots    []Slot
}

func NewMemoryRepository(products []Product, services []Service, posts []BlogPost, slots []Slot) *MemoryRepository {
	return &MemoryRepository{
		products: products,
		services: services,
		posts:    posts,
		slots:    slots,
	}
}

func (r *MemoryRepository) ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error) {
	out := make([]Product, 0)
	for _, p := range r.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.FeaturedOnly && !p.Featured {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepository) GetProduct(ctx context.Context, id string) (Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

func (r *MemoryRepository) ListServices(ctx context.Context) ([]Service, error) {
	out := make([]Service, len(r.services))
	copy(out, r.services)
	return out, nil
}

func (r *MemoryRepository) ListBlogPosts(ctx context.Context) ([]BlogPost, error) {
	out := make([]BlogPost, len(r.posts))
	copy(out, r.posts)
	return out, nil
}

func (r *MemoryRepository) GetBlogPost(ctx context.Context, id string) (BlogPost, error) {
	for _, b := range r.posts {
		if b.ID == id {
			return b, nil
		}
	}
	return BlogPost{}, ErrPostNotFound
}

func (r *MemoryRepository) ListSlots(ctx context.Context, date string) ([]Slot, error) {
	out := make([]Slot, 0)
	for _, s := range r.slots {
		if date != "" && s.Date != date {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}
