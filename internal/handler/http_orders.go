package handler

import (
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/number/{number}", h.GetByNumber)
		r.Get("/customer", h.ByCustomer)
		r.Get("/status/{status}", h.ByStatus)
		r.Get("/date-range", h.ByDateRange)
		r.Get("/count/{status}", h.CountByStatus)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Post("/cancel", h.Cancel)
			r.Patch("/status", h.UpdateStatus)
			r.Get("/total", h.Total)
		})
	})
}

// Create places an order. Either every line is reserved or nothing is.
// @Summary      Place order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      CreateOrderRequest  true  "Order"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Invalid order or product not available"
// @Failure      404  {object}  utils.ErrorResponse "Unknown product"
// @Failure      409  {object}  utils.ErrorResponse "Insufficient stock"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(r.Context(), req.toInput())
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to create order")
		return
	}
	utils.WriteJSON(w, orderToJSON(order), http.StatusCreated)
}

// @Summary      List orders, newest first
// @Tags         orders
// @Produce      json
// @Success      200  {array}   Order
// @Router       /orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListOrders(r.Context())
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to list orders")
		return
	}
	utils.WriteJSON(w, ordersToJSON(orders), http.StatusOK)
}

// Get returns an order by ID.
// @Summary      Get order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	order, err := h.svc.GetOrder(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to get order")
		return
	}
	utils.WriteJSON(w, orderToJSON(order), http.StatusOK)
}

// @Summary      Get order by number
// @Tags         orders
// @Produce      json
// @Param        number  path      string  true  "Order number"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/number/{number} [get]
func (h *OrderHandler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.GetOrderByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to get order by number")
		return
	}
	utils.WriteJSON(w, orderToJSON(order), http.StatusOK)
}

// @Summary      List orders of a customer
// @Tags         orders
// @Produce      json
// @Param        email  query  string  true  "Customer email"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ErrorResponse
// @Router       /orders/customer [get]
func (h *OrderHandler) ByCustomer(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListByCustomerEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to list orders by customer")
		return
	}
	utils.WriteJSON(w, ordersToJSON(orders), http.StatusOK)
}

// @Summary      List orders in a status
// @Tags         orders
// @Produce      json
// @Param        status  path  string  true  "Order status"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ErrorResponse
// @Router       /orders/status/{status} [get]
func (h *OrderHandler) ByStatus(w http.ResponseWriter, r *http.Request) {
	status, err := entities.ParseStatus(chi.URLParam(r, "status"))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "invalid status")
		return
	}

	orders, err := h.svc.ListByStatus(r.Context(), status)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to list orders by status")
		return
	}
	utils.WriteJSON(w, ordersToJSON(orders), http.StatusOK)
}

// @Summary      List orders created within a period
// @Tags         orders
// @Produce      json
// @Param        start  query  string  true  "RFC3339, inclusive"
// @Param        end    query  string  true  "RFC3339, inclusive"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ErrorResponse
// @Router       /orders/date-range [get]
func (h *OrderHandler) ByDateRange(w http.ResponseWriter, r *http.Request) {
	start, ok := queryTime(w, r, "start")
	if !ok {
		return
	}
	end, ok := queryTime(w, r, "end")
	if !ok {
		return
	}

	orders, err := h.svc.ListByDateRange(r.Context(), start, end)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to list orders by date")
		return
	}
	utils.WriteJSON(w, ordersToJSON(orders), http.StatusOK)
}

// @Summary      Count orders in a status
// @Tags         orders
// @Produce      json
// @Param        status  path  string  true  "Order status"
// @Success      200  {object}  StatusCount
// @Failure      400  {object}  utils.ErrorResponse
// @Router       /orders/count/{status} [get]
func (h *OrderHandler) CountByStatus(w http.ResponseWriter, r *http.Request) {
	status, err := entities.ParseStatus(chi.URLParam(r, "status"))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "invalid status")
		return
	}

	count, err := h.svc.CountByStatus(r.Context(), status)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to count orders")
		return
	}
	utils.WriteJSON(w, StatusCount{Status: status.String(), Count: count}, http.StatusOK)
}

// Cancel cancels an order and returns its stock.
// @Summary      Cancel order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Order already shipped, delivered or cancelled"
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.CancelOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to cancel order")
		return
	}
	utils.WriteJSON(w, orderToJSON(order), http.StatusOK)
}

// @Summary      Move order to another status
// @Tags         orders
// @Produce      json
// @Param        id      path   string  true  "Order ID"
// @Param        status  query  string  true  "Target status"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Transition not allowed"
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	status, err := entities.ParseStatus(r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "invalid status")
		return
	}

	order, err := h.svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), status)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to update order status")
		return
	}
	utils.WriteJSON(w, orderToJSON(order), http.StatusOK)
}

// @Summary      Order total
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  Amount
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/{id}/total [get]
func (h *OrderHandler) Total(w http.ResponseWriter, r *http.Request) {
	total, err := h.svc.CalculateOrderTotal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to calculate order total")
		return
	}
	utils.WriteJSON(w, Amount{Total: money(total)}, http.StatusOK)
}
