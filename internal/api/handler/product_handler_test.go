package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/riverstore/commerce-api/internal/core/domain"
	"github.com/riverstore/commerce-api/internal/core/ports"
)

type stubProductService struct {
	createFn func(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error)
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	updateFn func(ctx context.Context, id string, upd ports.ProductUpdate) (*domain.Product, error)
	deleteFn func(ctx context.Context, id string) error
	listFn   func(ctx context.Context, in ports.ListProductsInput) (*ports.ProductPage, error)
}

func (s *stubProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, in)
}

func (s *stubProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) Update(ctx context.Context, id string, upd ports.ProductUpdate) (*domain.Product, error) {
	return s.updateFn(ctx, id, upd)
}

func (s *stubProductService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubProductService) List(ctx context.Context, in ports.ListProductsInput) (*ports.ProductPage, error) {
	return s.listFn(ctx, in)
}

func TestProductHandler_List_PageLinks(t *testing.T) {
	svc := &stubProductService{listFn: func(_ context.Context, in ports.ListProductsInput) (*ports.ProductPage, error) {
		if in.Page != 2 || in.Limit != 5 || in.Sort != "asc" || in.Query != "peripherals" {
			t.Fatalf("unexpected input: %+v", in)
		}
		return &ports.ProductPage{
			Docs:       []*domain.Product{{ID: "p1", Title: "Mouse"}},
			Total:      11,
			Page:       2,
			Limit:      5,
			TotalPages: 3,
			HasPrev:    true,
			HasNext:    true,
			PrevPage:   1,
			NextPage:   3,
		}, nil
	}}
	h := NewProductHandler(svc)

	c, rec := cartContext(t, http.MethodGet, "/api/products?page=2&limit=5&sort=asc&query=peripherals", "", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	var resp listProductsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Status != "success" || resp.TotalPages != 3 || resp.Page != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if !resp.HasPrevPage || !resp.HasNextPage {
		t.Fatalf("expected both sibling pages: %+v", resp)
	}
	if resp.PrevLink == nil || *resp.PrevLink != "/api/products?page=1&limit=5&sort=asc&query=peripherals" {
		t.Fatalf("unexpected prevLink: %v", resp.PrevLink)
	}
	if resp.NextLink == nil || *resp.NextLink != "/api/products?page=3&limit=5&sort=asc&query=peripherals" {
		t.Fatalf("unexpected nextLink: %v", resp.NextLink)
	}
}

func TestProductHandler_List_SinglePage(t *testing.T) {
	svc := &stubProductService{listFn: func(_ context.Context, in ports.ListProductsInput) (*ports.ProductPage, error) {
		return &ports.ProductPage{
			Docs:       []*domain.Product{},
			Page:       1,
			Limit:      10,
			TotalPages: 1,
		}, nil
	}}
	h := NewProductHandler(svc)

	c, rec := cartContext(t, http.MethodGet, "/api/products", "", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	var resp listProductsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.PrevLink != nil || resp.NextLink != nil {
		t.Fatalf("no sibling links expected: %+v", resp)
	}
	if resp.HasPrevPage || resp.HasNextPage {
		t.Fatalf("no sibling pages expected: %+v", resp)
	}
}

func TestProductHandler_Get(t *testing.T) {
	svc := &stubProductService{getFn: func(_ context.Context, id string) (*domain.Product, error) {
		if id != "p1" {
			t.Fatalf("unexpected id %q", id)
		}
		return &domain.Product{ID: "p1", Title: "Mouse", Code: "M-1"}, nil
	}}
	h := NewProductHandler(svc)

	c, rec := cartContext(t, http.MethodGet, "/api/products/p1", "", map[string]string{"pid": "p1"})
	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	envelope := decodeEnvelope(t, rec)
	payload, _ := envelope["payload"].(map[string]any)
	if payload["code"] != "M-1" {
		t.Fatalf("unexpected payload: %v", payload)
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	svc := &stubProductService{getFn: func(context.Context, string) (*domain.Product, error) {
		return nil, domain.ErrProductNotFound
	}}
	h := NewProductHandler(svc)

	c, _ := cartContext(t, http.MethodGet, "/api/products/missing", "", map[string]string{"pid": "missing"})
	if err := h.Get(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound to propagate, got %v", err)
	}
}

func TestProductHandler_Create(t *testing.T) {
	svc := &stubProductService{createFn: func(_ context.Context, in ports.CreateProductInput) (*domain.Product, error) {
		if in.Code != "KB-87" || in.Price != 79.9 {
			t.Fatalf("unexpected input: %+v", in)
		}
		if in.Status == nil || *in.Status != false {
			t.Fatalf("explicit status false not carried: %+v", in.Status)
		}
		return &domain.Product{ID: "p1", Title: in.Title, Code: in.Code}, nil
	}}
	h := NewProductHandler(svc)

	body := `{"title":"Mechanical keyboard","description":"87-key","price":79.9,"code":"KB-87","stock":12,"status":false,"category":"peripherals"}`
	c, rec := cartContext(t, http.MethodPost, "/api/products", body, nil)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProductHandler_Create_ValidationFailure(t *testing.T) {
	svc := &stubProductService{createFn: func(context.Context, ports.CreateProductInput) (*domain.Product, error) {
		t.Fatal("service should not be called for an invalid payload")
		return nil, nil
	}}
	h := NewProductHandler(svc)

	c, _ := cartContext(t, http.MethodPost, "/api/products", `{"title":"No code"}`, nil)
	err := h.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestProductHandler_Update_PartialFields(t *testing.T) {
	svc := &stubProductService{updateFn: func(_ context.Context, id string, upd ports.ProductUpdate) (*domain.Product, error) {
		if id != "p1" {
			t.Fatalf("unexpected id %q", id)
		}
		if upd.Price == nil || *upd.Price != 12.5 {
			t.Fatalf("price not carried: %+v", upd)
		}
		if upd.Title != nil || upd.Code != nil || upd.Stock != nil {
			t.Fatalf("absent fields must stay nil: %+v", upd)
		}
		return &domain.Product{ID: "p1", Price: 12.5}, nil
	}}
	h := NewProductHandler(svc)

	c, rec := cartContext(t, http.MethodPut, "/api/products/p1", `{"price":12.5}`, map[string]string{"pid": "p1"})
	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Delete(t *testing.T) {
	deleted := ""
	svc := &stubProductService{deleteFn: func(_ context.Context, id string) error {
		deleted = id
		return nil
	}}
	h := NewProductHandler(svc)

	c, rec := cartContext(t, http.MethodDelete, "/api/products/p1", "", map[string]string{"pid": "p1"})
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted != "p1" {
		t.Fatalf("expected delete of p1, got %q", deleted)
	}

	envelope := decodeEnvelope(t, rec)
	if envelope["status"] != "success" || envelope["message"] != "product deleted" {
		t.Fatalf("unexpected envelope: %v", envelope)
	}
}
