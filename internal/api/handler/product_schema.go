package handler

// createProductRequest carries the fields of a new catalog entry. Status
// defaults to available when omitted.
type createProductRequest struct {
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price"       validate:"gte=0"`
	Code        string   `json:"code"        validate:"required"`
	Stock       int      `json:"stock"       validate:"gte=0"`
	Status      *bool    `json:"status"`
	Category    string   `json:"category"    validate:"required"`
	Thumbnails  []string `json:"thumbnails"`
}

// updateProductRequest is a partial update; absent fields are left untouched.
type updateProductRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"       validate:"omitempty,gte=0"`
	Code        *string   `json:"code"`
	Stock       *int      `json:"stock"       validate:"omitempty,gte=0"`
	Status      *bool     `json:"status"`
	Category    *string   `json:"category"`
	Thumbnails  *[]string `json:"thumbnails"`
}

// listProductsResponse extends the uniform envelope with the pagination
// metadata the listing contract requires at the top level.
type listProductsResponse struct {
	Status      string  `json:"status"`
	Payload     any     `json:"payload"`
	TotalPages  int     `json:"totalPages"`
	PrevPage    int     `json:"prevPage"`
	NextPage    int     `json:"nextPage"`
	Page        int     `json:"page"`
	HasPrevPage bool    `json:"hasPrevPage"`
	HasNextPage bool    `json:"hasNextPage"`
	PrevLink    *string `json:"prevLink"`
	NextLink    *string `json:"nextLink"`
}
