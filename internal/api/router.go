package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pawmate/petcare-backend/internal/appointment"
	"github.com/pawmate/petcare-backend/internal/cart"
	"github.com/pawmate/petcare-backend/internal/catalog"
)

type RouterConfig struct {
	Appointments *appointment.Store
	Cart         *cart.Store
	Catalog      catalog.Repository
	PgPool       *pgxpool.Pool // nil when running on the memory catalog
	Redis        *redis.Client // nil when running on memory snapshots
	Logger       *zap.Logger
	Env          string
	Version      string
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(cfg.Logger))

	// Health endpoints
	health := NewHealthHandler(cfg.PgPool, cfg.Redis, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	// Pets
	r.Post("/pets", createPetHandler(cfg.Appointments))
	r.Get("/pets", listPetsHandler(cfg.Appointments))
	r.Delete("/pets/{id}", deletePetHandler(cfg.Appointments))

	// Appointments
	r.Post("/appointments", createAppointmentHandler(cfg.Appointments))
	r.Get("/appointments", listAppointmentsHandler(cfg.Appointments))
	r.Delete("/appointments/{id}", cancelAppointmentHandler(cfg.Appointments))

	// Booking draft
	r.Get("/booking/draft", getDraftHandler(cfg.Appointments))
	r.Patch("/booking/draft", patchDraftHandler(cfg.Appointments))
	r.Post("/booking/draft/reset", resetDraftHandler(cfg.Appointments))
	r.Post("/booking/confirm", confirmDraftHandler(cfg.Appointments))
	r.Get("/booking/reasons", listReasonsHandler())

	// Cart
	r.Get("/cart", getCartHandler(cfg.Cart))
	r.Post("/cart/items", addCartItemHandler(cfg.Cart, cfg.Catalog))
	r.Patch("/cart/items/{productID}", updateCartItemHandler(cfg.Cart))
	r.Delete("/cart/items/{productID}", removeCartItemHandler(cfg.Cart))
	r.Delete("/cart", clearCartHandler(cfg.Cart))

	// Catalog
	r.Get("/products", listProductsHandler(cfg.Catalog))
	r.Get("/products/{id}", getProductHandler(cfg.Catalog))
	r.Get("/services", listServicesHandler(cfg.Catalog))
	r.Get("/blog", listBlogPostsHandler(cfg.Catalog))
	r.Get("/blog/{id}", getBlogPostHandler(cfg.Catalog))
	r.Get("/slots", listSlotsHandler(cfg.Catalog))
	r.Get("/regions", listRegionsHandler())

	return r
}
