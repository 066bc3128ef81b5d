package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pawmate/petcare-backend/internal/cart"
	"github.com/pawmate/petcare-backend/internal/catalog"
)

func getCartHandler(store *cart.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, cartResponse{
			Items:     store.Items(),
			ItemCount: store.ItemCount(),
			Total:     store.Total(),
		})
	}
}

// addCartItemHandler resolves the product from the catalog and stores the
// full snapshot on the line, so the cart keeps rendering even if the
// catalog entry changes later.
func addCartItemHandler(store *cart.Store, repo catalog.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addCartItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}
		if req.ProductID == "" {
			writeError(w, http.StatusBadRequest, "invalid_product_id", "productId is required")
			return
		}

		product, err := repo.GetProduct(r.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				writeError(w, http.StatusNotFound, "product_not_found", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		quantity := 1
		if req.Quantity != nil {
			quantity = *req.Quantity
		}
		store.AddItem(product, quantity)

		writeJSON(w, http.StatusOK, cartResponse{
			Items:     store.Items(),
			ItemCount: store.ItemCount(),
			Total:     store.Total(),
		})
	}
}

func updateCartItemHandler(store *cart.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateCartItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		store.UpdateQuantity(chi.URLParam(r, "productID"), req.Quantity)

		writeJSON(w, http.StatusOK, cartResponse{
			Items:     store.Items(),
			ItemCount: store.ItemCount(),
			Total:     store.Total(),
		})
	}
}

func removeCartItemHandler(store *cart.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.RemoveItem(chi.URLParam(r, "productID"))
		w.WriteHeader(http.StatusNoContent)
	}
}

func clearCartHandler(store *cart.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.Clear()
		w.WriteHeader(http.StatusNoContent)
	}
}
