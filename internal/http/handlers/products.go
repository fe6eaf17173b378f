package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/maryamazeem12/websitelive/internal/http/respond"
	"github.com/maryamazeem12/websitelive/internal/models"
	"github.com/maryamazeem12/websitelive/internal/router"
	"github.com/maryamazeem12/websitelive/internal/storage"
)

// ProductHandler serves the catalog: listing, lookup by business id, and
// creation (normally exercised once by seeding, but exposed regardless).
type ProductHandler struct {
	store storage.Store
}

// NewProductHandler constructs the handler.
func NewProductHandler(store storage.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// Register attaches the product routes. The prefix route picks up
// /api/products/{id}; the exact /api/products routes win when there is no
// trailing segment.
func (h *ProductHandler) Register(rt *router.Router) {
	rt.Handle(http.MethodGet, "/api/products", h.handleList)
	rt.Handle(http.MethodPost, "/api/products", h.handleCreate)
	rt.HandlePrefix(http.MethodGet, "/api/products/", h.handleGet)
}

func (h *ProductHandler) handleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListProducts(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	respond.JSON(w, http.StatusOK, map[string]any{"products": products})
}

func (h *ProductHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	product, err := h.store.FindProductByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"product": product})
}

func (h *ProductHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}
	if strings.TrimSpace(product.ID) == "" || strings.TrimSpace(product.Name) == "" {
		respond.Error(w, http.StatusBadRequest, "Product id and name are required")
		return
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}

	created, err := h.store.InsertProduct(r.Context(), product)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond.JSON(w, http.StatusCreated, map[string]any{
		"message": "Product created successfully",
		"product": created,
	})
}
