package apirequests

// ProductRequest is the body of POST and PUT /products. Both fields stay
// untyped so that a wrong JSON type reaches the domain validation instead of
// failing JSON decoding.
type ProductRequest struct {
	Name     any `json:"name"`
	Quantity any `json:"quantity"`
}

// SaleItemRequest is one element of the POST and PUT /sales array body.
type SaleItemRequest struct {
	ProductID any `json:"productId"`
	Quantity  any `json:"quantity"`
}
