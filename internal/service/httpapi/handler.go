package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/vadimdragunov/shoporders/internal/domain"
	"github.com/vadimdragunov/shoporders/internal/interchange"
	"github.com/vadimdragunov/shoporders/internal/report"
)

const defaultTopClientsLimit = 5

// Handler публикует операции репозитория, обмена данными и отчётов по HTTP/JSON.
type Handler struct {
	repo   domain.Repository
	exch   *interchange.Service
	events domain.EventPublisher
	logger *log.Entry
}

// NewHandler конструирует обработчик с зависимостями.
func NewHandler(repo domain.Repository, exch *interchange.Service, events domain.EventPublisher, logger *log.Entry) *Handler {
	if logger == nil {
		logger = log.WithField("layer", "http")
	}
	if events == nil {
		events = domain.NopPublisher{}
	}
	return &Handler{repo: repo, exch: exch, events: events, logger: logger}
}

// Routes собирает маршруты API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(h.loggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/clients", h.handleAddClient)
		r.Get("/clients", h.handleListClients)
		r.Get("/clients/export", h.handleExportClientsCSV)
		r.Post("/clients/import", h.handleImportClientsCSV)

		r.Post("/products", h.handleAddProduct)
		r.Get("/products", h.handleListProducts)

		r.Post("/orders", h.handleAddOrder)
		r.Get("/orders", h.handleListOrders)
		r.Get("/orders/export", h.handleExportOrdersJSON)

		r.Get("/reports/top-clients", h.handleTopClients)
		r.Get("/reports/sales-by-day", h.handleSalesByDay)
		r.Get("/reports/client-product-links", h.handleClientProductLinks)
	})

	return r
}

func (h *Handler) handleAddClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, r, "invalid json body")
		return
	}

	client, err := domain.NewClient(req.Name, req.Email, req.Phone, req.City)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.repo.AddClient(client); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, statusResponse{Status: "created"})
}

func (h *Handler) handleListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.repo.ListClients()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newClientResponses(clients))
}

func (h *Handler) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, r, "invalid json body")
		return
	}

	product, err := domain.NewProduct(req.Name, req.Price, req.Category)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.repo.AddProduct(product); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, statusResponse{Status: "created"})
}

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.ListProducts()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newProductResponses(products))
}

func (h *Handler) handleAddOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, r, "invalid json body")
		return
	}

	order, err := req.toDomain()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.repo.AddOrder(order); err != nil {
		h.writeError(w, r, err)
		return
	}

	// Публикация события не влияет на результат запроса: заказ уже сохранён.
	if err := h.events.OrderCreated(order); err != nil {
		h.logger.WithError(err).Warn("failed to publish order.created event")
	}

	h.writeJSON(w, http.StatusCreated, orderCreatedResponse{Status: "created", Total: order.TotalCost()})
}

func (h *Handler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.repo.ListOrders()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newOrderResponses(orders))
}

func (h *Handler) handleExportClientsCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="clients.csv"`)
	if err := h.exch.ExportClientsCSV(w); err != nil {
		h.logger.WithError(err).Error("clients csv export failed")
	}
}

func (h *Handler) handleImportClientsCSV(w http.ResponseWriter, r *http.Request) {
	if err := h.exch.ImportClientsCSV(r.Body); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, statusResponse{Status: "imported"})
}

func (h *Handler) handleExportOrdersJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.json"`)
	if err := h.exch.ExportOrdersJSON(w); err != nil {
		h.logger.WithError(err).Error("orders json export failed")
	}
}

func (h *Handler) handleTopClients(w http.ResponseWriter, r *http.Request) {
	n := defaultTopClientsLimit
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.writeBadRequest(w, r, "n must be a non-negative integer")
			return
		}
		n = parsed
	}

	orders, err := h.repo.ListOrders()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newTopClientsResponse(report.TopClients(orders, n)))
}

func (h *Handler) handleSalesByDay(w http.ResponseWriter, r *http.Request) {
	orders, err := h.repo.ListOrders()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newSalesResponse(report.SalesByDay(orders)))
}

func (h *Handler) handleClientProductLinks(w http.ResponseWriter, r *http.Request) {
	orders, err := h.repo.ListOrders()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newLinkResponses(report.ClientProductLinks(orders)))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.WithError(err).Error("failed to encode response")
	}
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	h.logger.WithField("path", r.URL.Path).Warn(msg)
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// writeError переводит доменные ошибки в HTTP-статусы.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	switch {
	case domain.IsValidation(err):
		code = http.StatusBadRequest
	case errors.Is(err, domain.ErrClientExists):
		code = http.StatusConflict
	case errors.Is(err, domain.ErrClientNotFound):
		code = http.StatusNotFound
	}

	entry := h.logger.WithError(err).WithField("path", r.URL.Path)
	if code == http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Warn("request rejected")
	}
	h.writeJSON(w, code, errorResponse{Error: err.Error()})
}
