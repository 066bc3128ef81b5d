package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pawmate/petcare-backend/internal/catalog"
)

func listProductsHandler(repo catalog.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := catalog.ProductFilter{
			Category:     catalog.Category(r.URL.Query().Get("category")),
			FeaturedOnly: r.URL.Query().Get("featured") == "true",
		}

		products, err := repo.ListProducts(r.Context(), filter)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, products)
	}
}

func getProductHandler(repo catalog.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, err := repo.GetProduct(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				writeError(w, http.StatusNotFound, "product_not_found", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, product)
	}
}

func listServicesHandler(repo catalog.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := repo.ListServices(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, services)
	}
}

func listBlogPostsHandler(repo catalog.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := repo.ListBlogPosts(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, posts)
	}
}

func getBlogPostHandler(repo catalog.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := repo.GetBlogPost(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, catalog.ErrPostNotFound) {
				writeError(w, http.StatusNotFound, "post_not_found", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, post)
	}
}

func listSlotsHandler(repo catalog.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slots, err := repo.ListSlots(r.Context(), r.URL.Query().Get("date"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, slots)
	}
}
