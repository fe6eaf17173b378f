package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/maryamazeem12/websitelive/internal/http/respond"
	"github.com/maryamazeem12/websitelive/internal/models"
	"github.com/maryamazeem12/websitelive/internal/router"
	"github.com/maryamazeem12/websitelive/internal/storage"
)

// OrderHandler serves order creation. Orders take no validation: every
// field defaults, and the user id is stored without checking that such a
// user exists.
type OrderHandler struct {
	store storage.Store
}

// NewOrderHandler constructs the handler.
func NewOrderHandler(store storage.Store) *OrderHandler {
	return &OrderHandler{store: store}
}

// Register attaches the order routes.
func (h *OrderHandler) Register(rt *router.Router) {
	rt.Handle(http.MethodPost, "/api/orders", h.handleCreate)
}

type orderRequest struct {
	UserID      string           `json:"user_id"`
	Items       []map[string]any `json:"items"`
	TotalAmount int64            `json:"total_amount"`
	Currency    string           `json:"currency"`
}

func (h *OrderHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	// An empty body is a valid all-defaults order; a body that is present
	// but unparseable is not.
	var req orderRequest
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			respond.Error(w, http.StatusBadRequest, "Invalid JSON data")
			return
		}
	}

	order := models.Order{
		UserID:      req.UserID,
		Items:       req.Items,
		TotalAmount: req.TotalAmount,
		Currency:    req.Currency,
		Status:      models.OrderStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if order.Items == nil {
		order.Items = []map[string]any{}
	}
	if order.Currency == "" {
		order.Currency = "AED"
	}

	created, err := h.store.InsertOrder(r.Context(), order)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond.JSON(w, http.StatusCreated, map[string]any{
		"message": "Order created successfully",
		"order":   created,
	})
}
