package catalog

import (
	"context"
	"errors"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrPostNotFound    = errors.New("blog post not found")
)

// ProductFilter narrows ListProducts. Zero value means no filtering.
type ProductFilter struct {
	Category     Category
	FeaturedOnly bool
}

// Repository is the read-only catalog backing the shop, services, blog and
// slot-picker screens.
type Repository interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error)
	GetProduct(ctx context.Context, id string) (Product, error)

	ListServices(ctx context.Context) ([]Service, error)

	ListBlogPosts(ctx context.Context) ([]BlogPost, error)
	GetBlogPost(ctx context.Context, id string) (BlogPost, error)

	// ListSlots returns slots for the given ISO date, or all slots when
	// date is empty.
	ListSlots(ctx context.Context, date string) ([]Slot, error)
}
