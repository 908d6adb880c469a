package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/riverstore/commerce-api/internal/core/domain"
)

type stubCartService struct {
	createFn       func(ctx context.Context) (*domain.Cart, error)
	getFn          func(ctx context.Context, cartID string) (*domain.ResolvedCart, error)
	addProductFn   func(ctx context.Context, cartID, productID string) (*domain.Cart, error)
	replaceItemsFn func(ctx context.Context, cartID string, items []domain.LineItem) (*domain.Cart, error)
	setQuantityFn  func(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error)
	removeFn       func(ctx context.Context, cartID, productID string) (*domain.Cart, error)
	clearFn        func(ctx context.Context, cartID string) (*domain.Cart, error)
}

func (s *stubCartService) Create(ctx context.Context) (*domain.Cart, error) {
	return s.createFn(ctx)
}

func (s *stubCartService) Get(ctx context.Context, cartID string) (*domain.ResolvedCart, error) {
	return s.getFn(ctx, cartID)
}

func (s *stubCartService) AddProduct(ctx context.Context, cartID, productID string) (*domain.Cart, error) {
	return s.addProductFn(ctx, cartID, productID)
}

func (s *stubCartService) ReplaceItems(ctx context.Context, cartID string, items []domain.LineItem) (*domain.Cart, error) {
	return s.replaceItemsFn(ctx, cartID, items)
}

func (s *stubCartService) SetQuantity(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error) {
	return s.setQuantityFn(ctx, cartID, productID, quantity)
}

func (s *stubCartService) RemoveProduct(ctx context.Context, cartID, productID string) (*domain.Cart, error) {
	return s.removeFn(ctx, cartID, productID)
}

func (s *stubCartService) Clear(ctx context.Context, cartID string) (*domain.Cart, error) {
	return s.clearFn(ctx, cartID)
}

func cartContext(t *testing.T, method, target, body string, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for name, value := range params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

func TestCartHandler_Create(t *testing.T) {
	svc := &stubCartService{createFn: func(context.Context) (*domain.Cart, error) {
		return &domain.Cart{ID: "cart1", Items: []domain.LineItem{}}, nil
	}}
	h := NewCartHandler(svc)

	c, rec := cartContext(t, http.MethodPost, "/api/carts", "", nil)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	envelope := decodeEnvelope(t, rec)
	if envelope["status"] != "success" {
		t.Fatalf("unexpected envelope: %v", envelope)
	}
	payload, _ := envelope["payload"].(map[string]any)
	if payload["id"] != "cart1" {
		t.Fatalf("unexpected payload: %v", payload)
	}
	products, ok := payload["products"].([]any)
	if !ok || len(products) != 0 {
		t.Fatalf("expected empty products array, got %v", payload["products"])
	}
}

func TestCartHandler_Get_ResolvedItems(t *testing.T) {
	svc := &stubCartService{getFn: func(_ context.Context, cartID string) (*domain.ResolvedCart, error) {
		if cartID != "cart1" {
			t.Fatalf("unexpected cart id %q", cartID)
		}
		return &domain.ResolvedCart{
			ID: "cart1",
			Items: []domain.ResolvedItem{
				{Product: &domain.Product{ID: "p1", Title: "Mouse"}, Quantity: 2},
				{Product: nil, Quantity: 1},
			},
		}, nil
	}}
	h := NewCartHandler(svc)

	c, rec := cartContext(t, http.MethodGet, "/api/carts/cart1", "", map[string]string{"cid": "cart1"})
	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	envelope := decodeEnvelope(t, rec)
	payload, _ := envelope["payload"].(map[string]any)
	items, _ := payload["products"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 resolved items, got %v", payload)
	}
	second, _ := items[1].(map[string]any)
	if second["product"] != nil {
		t.Fatalf("expected nil product for the deleted entry, got %v", second)
	}
}

func TestCartHandler_Get_NotFound(t *testing.T) {
	svc := &stubCartService{getFn: func(context.Context, string) (*domain.ResolvedCart, error) {
		return nil, domain.ErrCartNotFound
	}}
	h := NewCartHandler(svc)

	c, _ := cartContext(t, http.MethodGet, "/api/carts/missing", "", map[string]string{"cid": "missing"})
	if err := h.Get(c); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound to propagate, got %v", err)
	}
}

func TestCartHandler_AddProduct(t *testing.T) {
	svc := &stubCartService{addProductFn: func(_ context.Context, cartID, productID string) (*domain.Cart, error) {
		if cartID != "cart1" || productID != "p1" {
			t.Fatalf("unexpected ids %q %q", cartID, productID)
		}
		return &domain.Cart{ID: "cart1", Items: []domain.LineItem{{ProductID: "p1", Quantity: 1}}}, nil
	}}
	h := NewCartHandler(svc)

	c, rec := cartContext(t, http.MethodPost, "/api/carts/cart1/product/p1", "", map[string]string{"cid": "cart1", "pid": "p1"})
	if err := h.AddProduct(c); err != nil {
		t.Fatalf("AddProduct returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCartHandler_Replace(t *testing.T) {
	var got []domain.LineItem
	svc := &stubCartService{replaceItemsFn: func(_ context.Context, cartID string, items []domain.LineItem) (*domain.Cart, error) {
		got = items
		return &domain.Cart{ID: cartID, Items: items}, nil
	}}
	h := NewCartHandler(svc)

	body := `{"products":[{"product":"p1","quantity":2},{"product":"p2","quantity":1}]}`
	c, rec := cartContext(t, http.MethodPut, "/api/carts/cart1", body, map[string]string{"cid": "cart1"})
	if err := h.Replace(c); err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(got) != 2 || got[0].ProductID != "p1" || got[0].Quantity != 2 || got[1].ProductID != "p2" {
		t.Fatalf("unexpected items passed to the service: %+v", got)
	}
}

func TestCartHandler_Replace_InvalidBody(t *testing.T) {
	svc := &stubCartService{replaceItemsFn: func(context.Context, string, []domain.LineItem) (*domain.Cart, error) {
		t.Fatal("service should not be called for an invalid payload")
		return nil, nil
	}}
	h := NewCartHandler(svc)

	for _, body := range []string{
		`not json`,
		`{"products":[{"product":"p1","quantity":0}]}`,
		`{"products":[{"quantity":2}]}`,
	} {
		c, _ := cartContext(t, http.MethodPut, "/api/carts/cart1", body, map[string]string{"cid": "cart1"})
		err := h.Replace(c)
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for body %q, got %v", body, err)
		}
	}
}

func TestCartHandler_SetQuantity(t *testing.T) {
	svc := &stubCartService{setQuantityFn: func(_ context.Context, cartID, productID string, quantity int) (*domain.Cart, error) {
		if cartID != "cart1" || productID != "p1" || quantity != 5 {
			t.Fatalf("unexpected call %q %q %d", cartID, productID, quantity)
		}
		return &domain.Cart{ID: "cart1", Items: []domain.LineItem{{ProductID: "p1", Quantity: 5}}}, nil
	}}
	h := NewCartHandler(svc)

	c, rec := cartContext(t, http.MethodPut, "/api/carts/cart1/products/p1", `{"quantity":5}`, map[string]string{"cid": "cart1", "pid": "p1"})
	if err := h.SetQuantity(c); err != nil {
		t.Fatalf("SetQuantity returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCartHandler_SetQuantity_Invalid(t *testing.T) {
	svc := &stubCartService{setQuantityFn: func(context.Context, string, string, int) (*domain.Cart, error) {
		t.Fatal("service should not be called for an invalid quantity")
		return nil, nil
	}}
	h := NewCartHandler(svc)

	for _, body := range []string{`{"quantity":0}`, `{"quantity":-2}`, `{}`, `{"quantity":"three"}`} {
		c, _ := cartContext(t, http.MethodPut, "/api/carts/cart1/products/p1", body, map[string]string{"cid": "cart1", "pid": "p1"})
		err := h.SetQuantity(c)
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for body %q, got %v", body, err)
		}
	}
}

func TestCartHandler_RemoveProduct(t *testing.T) {
	svc := &stubCartService{removeFn: func(_ context.Context, cartID, productID string) (*domain.Cart, error) {
		return &domain.Cart{ID: cartID, Items: []domain.LineItem{}}, nil
	}}
	h := NewCartHandler(svc)

	c, rec := cartContext(t, http.MethodDelete, "/api/carts/cart1/products/p1", "", map[string]string{"cid": "cart1", "pid": "p1"})
	if err := h.RemoveProduct(c); err != nil {
		t.Fatalf("RemoveProduct returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCartHandler_Clear(t *testing.T) {
	svc := &stubCartService{clearFn: func(_ context.Context, cartID string) (*domain.Cart, error) {
		return &domain.Cart{ID: cartID, Items: []domain.LineItem{}}, nil
	}}
	h := NewCartHandler(svc)

	c, rec := cartContext(t, http.MethodDelete, "/api/carts/cart1", "", map[string]string{"cid": "cart1"})
	if err := h.Clear(c); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}

	envelope := decodeEnvelope(t, rec)
	payload, _ := envelope["payload"].(map[string]any)
	products, ok := payload["products"].([]any)
	if !ok || len(products) != 0 {
		t.Fatalf("expected empty products array, got %v", payload)
	}
}
