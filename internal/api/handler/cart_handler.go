package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/riverstore/commerce-api/internal/core/domain"
	"github.com/riverstore/commerce-api/internal/core/ports"
)

// CartHandler handles HTTP requests for cart operations.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// Create handles POST /api/carts.
//
// @Summary      Create an empty cart
// @Tags         carts
// @Produce      json
// @Success      201  {object}  envelope
// @Failure      500  {object}  map[string]string
// @Router       /api/carts [post]
func (h *CartHandler) Create(c echo.Context) error {
	cart, err := h.service.Create(c.Request().Context())
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, cart)
}

// Get handles GET /api/carts/:cid. Line items come back with their product
// references resolved against the live catalog.
//
// @Summary      Fetch a cart with resolved products
// @Tags         carts
// @Produce      json
// @Param        cid  path      string  true  "Cart id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  map[string]string
// @Router       /api/carts/{cid} [get]
func (h *CartHandler) Get(c echo.Context) error {
	cart, err := h.service.Get(c.Request().Context(), c.Param("cid"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, cart)
}

// AddProduct handles POST /api/carts/:cid/product/:pid. Adding a product
// already in the cart increments its quantity instead of duplicating the
// line item.
//
// @Summary      Add a product to a cart
// @Tags         carts
// @Produce      json
// @Param        cid  path      string  true  "Cart id"
// @Param        pid  path      string  true  "Product id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  map[string]string
// @Router       /api/carts/{cid}/product/{pid} [post]
func (h *CartHandler) AddProduct(c echo.Context) error {
	cart, err := h.service.AddProduct(c.Request().Context(), c.Param("cid"), c.Param("pid"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, cart)
}

// Replace handles PUT /api/carts/:cid, swapping the whole line-item sequence.
//
// @Summary      Replace all line items
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        cid   path      string              true  "Cart id"
// @Param        body  body      replaceCartRequest  true  "New line items"
// @Success      200   {object}  envelope
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/carts/{cid} [put]
func (h *CartHandler) Replace(c echo.Context) error {
	var req replaceCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	items := make([]domain.LineItem, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, domain.LineItem{ProductID: p.Product, Quantity: p.Quantity})
	}

	cart, err := h.service.ReplaceItems(c.Request().Context(), c.Param("cid"), items)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, cart)
}

// SetQuantity handles PUT /api/carts/:cid/products/:pid. The target line
// item must already exist; this never inserts.
//
// @Summary      Set the quantity of one line item
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        cid   path      string              true  "Cart id"
// @Param        pid   path      string              true  "Product id"
// @Param        body  body      setQuantityRequest  true  "New quantity"
// @Success      200   {object}  envelope
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/carts/{cid}/products/{pid} [put]
func (h *CartHandler) SetQuantity(c echo.Context) error {
	var req setQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "quantity must be a number")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cart, err := h.service.SetQuantity(c.Request().Context(), c.Param("cid"), c.Param("pid"), req.Quantity)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, cart)
}

// RemoveProduct handles DELETE /api/carts/:cid/products/:pid. Removing a
// product that is not in the cart still succeeds.
//
// @Summary      Remove one product from a cart
// @Tags         carts
// @Produce      json
// @Param        cid  path      string  true  "Cart id"
// @Param        pid  path      string  true  "Product id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  map[string]string
// @Router       /api/carts/{cid}/products/{pid} [delete]
func (h *CartHandler) RemoveProduct(c echo.Context) error {
	cart, err := h.service.RemoveProduct(c.Request().Context(), c.Param("cid"), c.Param("pid"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, cart)
}

// Clear handles DELETE /api/carts/:cid, emptying the line-item sequence.
//
// @Summary      Empty a cart
// @Tags         carts
// @Produce      json
// @Param        cid  path      string  true  "Cart id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  map[string]string
// @Router       /api/carts/{cid} [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	cart, err := h.service.Clear(c.Request().Context(), c.Param("cid"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, cart)
}
