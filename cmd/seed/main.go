package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawmate/petcare-backend/internal/catalog"
	"github.com/pawmate/petcare-backend/internal/db"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("POSTGRES_DSN is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.ConnectPostgres(ctx, dsn)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	gofakeit.Seed(time.Now().UnixNano())

	if err := createSchema(context.Background(), pool); err != nil {
		log.Fatalf("create schema: %v", err)
	}
	if err := seedProducts(context.Background(), pool, 40); err != nil {
		log.Fatalf("seed products: %v", err)
	}
	if err := seedServices(context.Background(), pool); err != nil {
		log.Fatalf("seed services: %v", err)
	}
	if err := seedBlogPosts(context.Background(), pool, 20); err != nil {
		log.Fatalf("seed blog posts: %v", err)
	}
	if err := seedSlots(context.Background(), pool, 14); err != nil {
		log.Fatalf("seed slots: %v", err)
	}

	log.Println("seed complete")
}

func createSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id          text PRIMARY KEY,
			name        text NOT NULL,
			description text NOT NULL,
			price       double precision NOT NULL,
			image       text NOT NULL,
			category    text NOT NULL,
			stock       int NOT NULL,
			featured    boolean NOT NULL DEFAULT false
		)`,
		`CREATE TABLE IF NOT EXISTS services (
			id          text PRIMARY KEY,
			title       text NOT NULL,
			description text NOT NULL,
			icon        text NOT NULL,
			price       text NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS blog_posts (
			id          text PRIMARY KEY,
			title       text NOT NULL,
			description text NOT NULL,
			image       text NOT NULL,
			category    text NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS appointment_slots (
			id        text PRIMARY KEY,
			slot_date text NOT NULL,
			slot_time text NOT NULL,
			available boolean NOT NULL
		)`,
		`TRUNCATE products, services, blog_posts, appointment_slots`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

var extraCategories = []catalog.Category{
	catalog.CategoryFood,
	catalog.CategoryToys,
	catalog.CategoryAccessories,
	catalog.CategoryHygiene,
	catalog.CategoryMedicine,
}

// seedProducts inserts the built-in fixtures first so dev and prod share a
// common base, then pads the shop with generated products.
func seedProducts(ctx context.Context, pool *pgxpool.Pool, extra int) error {
	products := catalog.FixtureProducts()

	for i := 0; i < extra; i++ {
		products = append(products, catalog.Product{
			ID:          uuid.NewString(),
			Name:        gofakeit.ProductName(),
			Description: gofakeit.ProductDescription(),
			Price:       gofakeit.Price(3, 120),
			Image:       gofakeit.ImageURL(800, 600),
			Category:    extraCategories[gofakeit.Number(0, len(extraCategories)-1)],
			Stock:       gofakeit.Number(0, 60),
			Featured:    gofakeit.Number(0, 9) == 0,
		})
	}

	log.Printf("seeding %d products", len(products))

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, p := range products {
		_, err := tx.Exec(ctx, `
			INSERT INTO products (id, name, description, price, image, category, stock, featured)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, p.ID, p.Name, p.Description, p.Price, p.Image, string(p.Category), p.Stock, p.Featured)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func seedServices(ctx context.Context, pool *pgxpool.Pool) error {
	services := catalog.FixtureServices()
	log.Printf("seeding %d services", len(services))

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, s := range services {
		_, err := tx.Exec(ctx, `
			INSERT INTO services (id, title, description, icon, price)
			VALUES ($1, $2, $3, $4, $5)
		`, s.ID, s.Title, s.Description, s.Icon, s.Price)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func seedBlogPosts(ctx context.Context, pool *pgxpool.Pool, extra int) error {
	posts := catalog.FixtureBlogPosts()

	topics := []string{"Puppies", "Nutrition", "Wellbeing", "Health", "Training"}
	for i := 0; i < extra; i++ {
		posts = append(posts, catalog.BlogPost{
			ID:          uuid.NewString(),
			Title:       gofakeit.Sentence(4),
			Description: gofakeit.Sentence(12),
			Image:       gofakeit.ImageURL(800, 600),
			Category:    topics[gofakeit.Number(0, len(topics)-1)],
		})
	}

	log.Printf("seeding %d blog posts", len(posts))

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, b := range posts {
		_, err := tx.Exec(ctx, `
			INSERT INTO blog_posts (id, title, description, image, category)
			VALUES ($1, $2, $3, $4, $5)
		`, b.ID, b.Title, b.Description, b.Image, b.Category)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// seedSlots writes a rolling slot calendar starting today. Roughly one in
// five slots is marked taken so the picker shows realistic availability.
func seedSlots(ctx context.Context, pool *pgxpool.Pool, days int) error {
	slots := catalog.FixtureSlots(time.Now(), days)
	log.Printf("seeding %d slots over %d days", len(slots), days)

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i, s := range slots {
		available := gofakeit.Number(0, 4) != 0
		_, err := tx.Exec(ctx, `
			INSERT INTO appointment_slots (id, slot_date, slot_time, available)
			VALUES ($1, $2, $3, $4)
		`, strconv.Itoa(i+1), s.Date, s.Time, available)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
