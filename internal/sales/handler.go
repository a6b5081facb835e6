package sales

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/andino-pos/andino-pos/internal/platform/httpx"
)

// Handler exposes the sales workflows over HTTP.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs the sales HTTP handler.
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

type createSaleResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	SaleID  string `json:"saleId"`
}

// Create handles POST /api/sales.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var payload createSalePayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(payload.Data); err != nil {
		h.logger.Debug("create sale rejected", slog.Any("error", err))
		httpx.Error(w, http.StatusBadRequest, "Datos de venta inválidos")
		return
	}

	saleID, err := h.service.Create(r.Context(), payload.Data.toInput())
	if err != nil {
		h.logger.Error("create sale failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpx.JSON(w, http.StatusCreated, createSaleResponse{
		Status:  "success",
		Message: "Venta registrada",
		SaleID:  saleID,
	})
}

// Annul handles PUT /api/sales/annul.
func (h *Handler) Annul(w http.ResponseWriter, r *http.Request) {
	var payload annulSalePayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(payload.Data); err != nil {
		httpx.Error(w, http.StatusBadRequest, "saleId requerido")
		return
	}

	h.annul(w, r, payload.Data.SaleID)
}

// AnnulByID handles the path variant PUT /api/sales/{saleID}/annul.
func (h *Handler) AnnulByID(w http.ResponseWriter, r *http.Request) {
	saleID := chi.URLParam(r, "saleID")
	if saleID == "" {
		httpx.Error(w, http.StatusBadRequest, "saleId requerido")
		return
	}
	h.annul(w, r, saleID)
}

func (h *Handler) annul(w http.ResponseWriter, r *http.Request, saleID string) {
	if err := h.service.Annul(r.Context(), saleID); err != nil {
		if errors.Is(err, ErrNotFoundOrAnnulled) {
			httpx.Error(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("annul sale failed", slog.String("sale_id", saleID), slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpx.SuccessMessage(w, http.StatusOK, "Venta anulada y stock restaurado")
}

// List handles GET /api/sales.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sales, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list sales failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if sales == nil {
		sales = []Sale{}
	}
	httpx.Success(w, http.StatusOK, sales)
}
