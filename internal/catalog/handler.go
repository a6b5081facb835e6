package catalog

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/andino-pos/andino-pos/internal/platform/httpx"
)

// Handler exposes the product catalog over HTTP.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs the catalog HTTP handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(),
	}
}

// List handles GET /api/products.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list products failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if products == nil {
		products = []Product{}
	}
	httpx.Success(w, http.StatusOK, products)
}

// Create handles POST /api/products.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	if err := h.service.Create(r.Context(), req.toProduct()); err != nil {
		if errors.Is(err, ErrDuplicate) {
			httpx.Error(w, http.StatusConflict, err.Error())
			return
		}
		h.logger.Error("create product failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpx.SuccessMessage(w, http.StatusCreated, "Producto añadido")
}

// Update handles PUT /api/products.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	if req.OriginalSKU == "" {
		httpx.Error(w, http.StatusBadRequest, "originalSku required")
		return
	}

	if err := h.service.Update(r.Context(), req.OriginalSKU, req.toProduct()); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.Error(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrDuplicate):
			httpx.Error(w, http.StatusConflict, err.Error())
		default:
			h.logger.Error("update product failed", slog.Any("error", err))
			httpx.Error(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	httpx.SuccessMessage(w, http.StatusOK, "Producto actualizado")
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (ProductRequest, bool) {
	var payload productPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return ProductRequest{}, false
	}
	if err := h.validate.Struct(payload.Data); err != nil {
		h.logger.Debug("product payload rejected", slog.Any("error", err))
		httpx.Error(w, http.StatusBadRequest, "Datos de producto inválidos")
		return ProductRequest{}, false
	}
	return payload.Data, true
}
