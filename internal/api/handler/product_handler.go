package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/riverstore/commerce-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /api/products with pagination, category/availability
// filtering, and price sorting.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        limit  query     int     false  "Page size (default 10)"
// @Param        page   query     int     false  "Page number (default 1)"
// @Param        sort   query     string  false  "Price sort: asc or desc"
// @Param        query  query     string  false  "Category, or true/false for availability"
// @Success      200    {object}  listProductsResponse
// @Failure      500    {object}  map[string]string
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	page, _ := strconv.Atoi(c.QueryParam("page"))
	sort := c.QueryParam("sort")
	query := c.QueryParam("query")

	result, err := h.service.List(c.Request().Context(), ports.ListProductsInput{
		Page:  page,
		Limit: limit,
		Sort:  sort,
		Query: query,
	})
	if err != nil {
		return err
	}

	resp := listProductsResponse{
		Status:      "success",
		Payload:     result.Docs,
		TotalPages:  result.TotalPages,
		PrevPage:    result.PrevPage,
		NextPage:    result.NextPage,
		Page:        result.Page,
		HasPrevPage: result.HasPrev,
		HasNextPage: result.HasNext,
	}
	if result.HasPrev {
		link := pageLink(result.PrevPage, result.Limit, sort, query)
		resp.PrevLink = &link
	}
	if result.HasNext {
		link := pageLink(result.NextPage, result.Limit, sort, query)
		resp.NextLink = &link
	}

	return c.JSON(http.StatusOK, resp)
}

// pageLink rebuilds the listing URL for a sibling page, preserving the
// caller's limit, sort, and query parameters.
func pageLink(page, limit int, sort, query string) string {
	return fmt.Sprintf("/api/products?page=%d&limit=%d&sort=%s&query=%s", page, limit, sort, query)
}

// Get handles GET /api/products/:pid.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        pid  path      string  true  "Product id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{pid} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("pid"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, product)
}

// Create handles POST /api/products. Admin only.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Code:        req.Code,
		Stock:       req.Stock,
		Status:      req.Status,
		Category:    req.Category,
		Thumbnails:  req.Thumbnails,
	})
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, product)
}

// Update handles PUT /api/products/:pid. Admin only; partial updates.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        pid   path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  envelope
// @Failure      404   {object}  map[string]string
// @Router       /api/products/{pid} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("pid"), ports.ProductUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Code:        req.Code,
		Stock:       req.Stock,
		Status:      req.Status,
		Category:    req.Category,
		Thumbnails:  req.Thumbnails,
	})
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, product)
}

// Delete handles DELETE /api/products/:pid. Admin only.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        pid  path      string  true  "Product id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{pid} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("pid")); err != nil {
		return err
	}
	return successMessage(c, http.StatusOK, "product deleted")
}
