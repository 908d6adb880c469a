// Package views serves the server-rendered product listing and cart pages.
// Templates are embedded into the binary and rendered through echo's
// Renderer contract.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/riverstore/commerce-api/internal/core/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer satisfies echo.Renderer over the embedded templates.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// Handler renders the HTML product listing and cart pages.
type Handler struct {
	products ports.ProductService
	carts    ports.CartService
}

func NewHandler(products ports.ProductService, carts ports.CartService) *Handler {
	return &Handler{products: products, carts: carts}
}

const viewPageSize = 5

type productsView struct {
	Title       string
	Products    any
	TotalPages  int
	Page        int
	HasPrevPage bool
	HasNextPage bool
	PrevLink    string
	NextLink    string
}

// Products handles GET /products.
func (h *Handler) Products(c echo.Context) error {
	page := 1
	if p := c.QueryParam("page"); p != "" {
		fmt.Sscanf(p, "%d", &page)
	}

	result, err := h.products.List(c.Request().Context(), ports.ListProductsInput{
		Page:  page,
		Limit: viewPageSize,
	})
	if err != nil {
		return err
	}

	view := productsView{
		Title:       "Products",
		Products:    result.Docs,
		TotalPages:  result.TotalPages,
		Page:        result.Page,
		HasPrevPage: result.HasPrev,
		HasNextPage: result.HasNext,
	}
	if result.HasPrev {
		view.PrevLink = fmt.Sprintf("/products?page=%d", result.PrevPage)
	}
	if result.HasNext {
		view.NextLink = fmt.Sprintf("/products?page=%d", result.NextPage)
	}

	return c.Render(http.StatusOK, "products.html", view)
}

// Cart handles GET /carts/:cid.
func (h *Handler) Cart(c echo.Context) error {
	cart, err := h.carts.Get(c.Request().Context(), c.Param("cid"))
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "cart.html", map[string]any{
		"Title": "My Cart",
		"Cart":  cart,
	})
}
