package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

// Helpers

func scanProduct(row pgx.Row) (Product, error) {
	var p Product

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Image,
		&p.Category,
		&p.Stock,
		&p.Featured,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, ErrProductNotFound
		}
		return Product{}, err
	}

	return p, nil
}

func scanPost(row pgx.Row) (BlogPost, error) {
	var b BlogPost

	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Description,
		&b.Image,
		&b.Category,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return BlogPost{}, ErrPostNotFound
		}
		return BlogPost{}, err
	}

	return b, nil
}

// Interface methods

func (r *PgRepository) ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error) {
	q := `
		SELECT id, name, description, price, image, category, stock, featured
		FROM products
	`
	var (
		conds []string
		args  []any
	)
	if filter.Category != "" {
		args = append(args, string(filter.Category))
		conds = append(conds, "category = $"+strconv.Itoa(len(args)))
	}
	if filter.FeaturedOnly {
		conds = append(conds, "featured")
	}
	for i, c := range conds {
		if i == 0 {
			q += " WHERE " + c
		} else {
			q += " AND " + c
		}
	}
	q += " ORDER BY id"

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Category, &p.Stock, &p.Featured); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PgRepository) GetProduct(ctx context.Context, id string) (Product, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, description, price, image, category, stock, featured
		FROM products
		WHERE id = $1
	`, id)
	return scanProduct(row)
}

func (r *PgRepository) ListServices(ctx context.Context) ([]Service, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, icon, price
		FROM services
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	out := make([]Service, 0)
	for rows.Next() {
		var s Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Icon, &s.Price); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PgRepository) ListBlogPosts(ctx context.Context) ([]BlogPost, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, image, category
		FROM blog_posts
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	out := make([]BlogPost, 0)
	for rows.Next() {
		var b BlogPost
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.Image, &b.Category); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PgRepository) GetBlogPost(ctx context.Context, id string) (BlogPost, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, description, image, category
		FROM blog_posts
		WHERE id = $1
	`, id)
	return scanPost(row)
}

func (r *PgRepository) ListSlots(ctx context.Context, date string) ([]Slot, error) {
	q := `
		SELECT id, slot_date, slot_time, available
		FROM appointment_slots
	`
	var args []any
	if date != "" {
		q += " WHERE slot_date = $1"
		args = append(args, date)
	}
	q += " ORDER BY slot_date, slot_time"

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	out := make([]Slot, 0)
	for rows.Next() {
		var s Slot
		if err := rows.Scan(&s.ID, &s.Date, &s.Time, &s.Available); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
