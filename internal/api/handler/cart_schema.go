package handler

// lineItemRequest is one entry of a cart replacement payload.
type lineItemRequest struct {
	Product  string `json:"product"  validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// replaceCartRequest carries the full line-item sequence for PUT /carts/:cid.
type replaceCartRequest struct {
	Products []lineItemRequest `json:"products" validate:"required,dive"`
}

// setQuantityRequest carries the new quantity for one line item.
type setQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}
