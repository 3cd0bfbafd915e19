package handler

import (
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	catalog   CatalogService
	inventory InventoryService
}

func NewProductHandler(logger *slog.Logger, catalog CatalogService, inventory InventoryService) *ProductHandler {
	return &ProductHandler{
		logger:    logger.With(slog.String("handler", "products")),
		validate:  validator.New(),
		catalog:   catalog,
		inventory: inventory,
	}
}

func (h *ProductHandler) Init(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/active", h.ListActive)
		r.Get("/sku/{sku}", h.GetBySKU)
		r.Get("/category/{category}", h.ByCategory)
		r.Get("/search", h.Search)
		r.Get("/price-range", h.ByPriceRange)
		r.Get("/low-stock", h.LowStock)
		r.Get("/categories", h.Categories)
		r.Get("/total-value", h.TotalValue)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Put("/", h.Update)
			r.Delete("/", h.Delete)
			r.Post("/activate", h.Activate)
			r.Post("/deactivate", h.Deactivate)
			r.Get("/discounted-price", h.DiscountedPrice)
			r.Patch("/stock", h.SetStock)
			r.Post("/stock/add", h.AddStock)
			r.Post("/stock/remove", h.RemoveStock)
			r.Get("/stock/check", h.CheckStock)
		})
	})
}

// Create adds a product to the catalog.
// @Summary      Create product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        product  body      ProductRequest  true  "Product"
// @Success      201  {object}  Product
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "SKU already taken"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	p, err := h.catalog.Create(r.Context(), req.toInput())
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to create product")
		return
	}
	utils.WriteJSON(w, productToJSON(p), http.StatusCreated)
}

// List returns every product.
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}   Product
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ps, err := h.catalog.List(r.Context())
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to list products")
		return
	}
	utils.WriteJSON(w, productsToJSON(ps), http.StatusOK)
}

// ListActive returns the products open for ordering.
// @Summary      List active products
// @Tags         products
// @Produce      json
// @Success      200  {array}   Product
// @Router       /products/active [get]
func (h *ProductHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	ps, err := h.catalog.ListActive(r.Context())
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to list active products")
		return
	}
	utils.WriteJSON(w, productsToJSON(ps), http.StatusOK)
}

// Get returns a product by id.
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to get product")
		return
	}
	utils.WriteJSON(w, productToJSON(p), http.StatusOK)
}

// GetBySKU returns a product by its SKU.
// @Summary      Get product by SKU
// @Tags         products
// @Produce      json
// @Param        sku  path      string  true  "SKU"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/sku/{sku} [get]
func (h *ProductHandler) GetBySKU(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.GetBySKU(r.Context(), chi.URLParam(r, "sku"))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to get product by sku")
		return
	}
	utils.WriteJSON(w, productToJSON(p), http.StatusOK)
}

// Update replaces the descriptive fields of a product. Stock is not touched.
// @Summary      Update product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Product ID"
// @Param        product  body      ProductRequest  true  "Product"
// @Success      200  {object}  Product
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	p, err := h.catalog.Update(r.Context(), chi.URLParam(r, "id"), req.toInput())
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to update product")
		return
	}
	utils.WriteJSON(w, productToJSON(p), http.StatusOK)
}

// Delete removes a product that no order references.
// @Summary      Delete product
// @Tags         products
// @Param        id   path  string  true  "Product ID"
// @Success      204
// @Failure      400  {object}  utils.ErrorResponse "Product is referenced by orders"
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to delete product")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Activate product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/{id}/activate [post]
func (h *ProductHandler) Activate(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.Activate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to activate product")
		return
	}
	utils.WriteJSON(w, productToJSON(p), http.StatusOK)
}

// @Summary      Deactivate product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/{id}/deactivate [post]
func (h *ProductHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.Deactivate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to deactivate product")
		return
	}
	utils.WriteJSON(w, productToJSON(p), http.StatusOK)
}

// @Summary      List products of a category
// @Tags         products
// @Produce      json
// @Param        category  path  string  true  "Category"
// @Success      200  {array}   Product
// @Router       /products/category/{category} [get]
func (h *ProductHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	ps, err := h.catalog.ByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to list products by category")
		return
	}
	utils.WriteJSON(w, productsToJSON(ps), http.StatusOK)
}

// @Summary      Search products by name or description
// @Tags         products
// @Produce      json
// @Param        keyword  query  string  true  "Keyword"
// @Success      200  {array}   Product
// @Failure      400  {object}  utils.ErrorResponse
// @Router       /products/search [get]
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	ps, err := h.catalog.Search(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to search products")
		return
	}
	utils.WriteJSON(w, productsToJSON(ps), http.StatusOK)
}

// @Summary      List products within a price range
// @Tags         products
// @Produce      json
// @Param        min  query  string  true  "Lower bound, inclusive"
// @Param        max  query  string  true  "Upper bound, inclusive"
// @Success      200  {array}   Product
// @Failure      400  {object}  utils.ErrorResponse
// @Router       /products/price-range [get]
func (h *ProductHandler) ByPriceRange(w http.ResponseWriter, r *http.Request) {
	lower, ok := queryDecimal(w, r, "min")
	if !ok {
		return
	}
	upper, ok := queryDecimal(w, r, "max")
	if !ok {
		return
	}

	ps, err := h.catalog.ByPriceRange(r.Context(), lower, upper)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to list products by price")
		return
	}
	utils.WriteJSON(w, productsToJSON(ps), http.StatusOK)
}

// @Summary      List products running low on stock
// @Tags         products
// @Produce      json
// @Param        threshold  query  int  false  "Stock strictly below this value, defaults to the configured threshold"
// @Success      200  {array}   Product
// @Router       /products/low-stock [get]
func (h *ProductHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	threshold, ok := queryIntDefault(w, r, "threshold", 0)
	if !ok {
		return
	}

	ps, err := h.catalog.LowStock(r.Context(), threshold)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to list low stock products")
		return
	}
	utils.WriteJSON(w, productsToJSON(ps), http.StatusOK)
}

// @Summary      List distinct categories
// @Tags         products
// @Produce      json
// @Success      200  {array}  string
// @Router       /products/categories [get]
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to list categories")
		return
	}
	utils.WriteJSON(w, categories, http.StatusOK)
}

// @Summary      Value of the active inventory
// @Tags         products
// @Produce      json
// @Success      200  {object}  Amount
// @Router       /products/total-value [get]
func (h *ProductHandler) TotalValue(w http.ResponseWriter, r *http.Request) {
	total, err := h.catalog.TotalStockValue(r.Context())
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to compute stock value")
		return
	}
	utils.WriteJSON(w, Amount{Total: money(total)}, http.StatusOK)
}

// @Summary      Price after a percentage discount
// @Tags         products
// @Produce      json
// @Param        id       path   string  true  "Product ID"
// @Param        percent  query  string  true  "Discount in percent, 0 to 100"
// @Success      200  {object}  DiscountedPrice
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/{id}/discounted-price [get]
func (h *ProductHandler) DiscountedPrice(w http.ResponseWriter, r *http.Request) {
	percent, ok := queryDecimal(w, r, "percent")
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	price, err := h.catalog.DiscountedPrice(r.Context(), id, percent)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to compute discounted price")
		return
	}
	utils.WriteJSON(w, DiscountedPrice{ProductID: id, Percent: percent.String(), Price: money(price)}, http.StatusOK)
}

// SetStock overwrites the stock level.
// @Summary      Set stock
// @Tags         stock
// @Produce      json
// @Param        id        path   string  true  "Product ID"
// @Param        quantity  query  int     true  "New stock level"
// @Success      200  {object}  Product
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/{id}/stock [patch]
func (h *ProductHandler) SetStock(w http.ResponseWriter, r *http.Request) {
	quantity, ok := queryInt(w, r, "quantity")
	if !ok {
		return
	}

	p, err := h.inventory.SetAbsolute(r.Context(), chi.URLParam(r, "id"), quantity)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to set stock")
		return
	}
	utils.WriteJSON(w, productToJSON(p), http.StatusOK)
}

// @Summary      Add stock
// @Tags         stock
// @Produce      json
// @Param        id        path   string  true  "Product ID"
// @Param        quantity  query  int     true  "Units to add"
// @Success      200  {object}  Product
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/{id}/stock/add [post]
func (h *ProductHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	quantity, ok := queryInt(w, r, "quantity")
	if !ok {
		return
	}

	p, err := h.inventory.AddStock(r.Context(), chi.URLParam(r, "id"), quantity)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to add stock")
		return
	}
	utils.WriteJSON(w, productToJSON(p), http.StatusOK)
}

// @Summary      Remove stock
// @Tags         stock
// @Produce      json
// @Param        id        path   string  true  "Product ID"
// @Param        quantity  query  int     true  "Units to remove"
// @Success      200  {object}  Product
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Not enough stock"
// @Router       /products/{id}/stock/remove [post]
func (h *ProductHandler) RemoveStock(w http.ResponseWriter, r *http.Request) {
	quantity, ok := queryInt(w, r, "quantity")
	if !ok {
		return
	}

	p, err := h.inventory.RemoveStock(r.Context(), chi.URLParam(r, "id"), quantity)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to remove stock")
		return
	}
	utils.WriteJSON(w, productToJSON(p), http.StatusOK)
}

// CheckStock is advisory: the answer may be stale by the time an order is placed.
// @Summary      Check availability
// @Tags         stock
// @Produce      json
// @Param        id        path   string  true  "Product ID"
// @Param        quantity  query  int     true  "Units wanted"
// @Success      200  {object}  StockCheck
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/{id}/stock/check [get]
func (h *ProductHandler) CheckStock(w http.ResponseWriter, r *http.Request) {
	quantity, ok := queryInt(w, r, "quantity")
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	available, err := h.inventory.CheckAvailability(r.Context(), id, quantity)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, err, "failed to check stock")
		return
	}
	utils.WriteJSON(w, StockCheck{ProductID: id, Quantity: quantity, Available: available}, http.StatusOK)
}
