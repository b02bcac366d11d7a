package apierrors

// Business error codes. These are part of the public HTTP contract and are
// returned verbatim in the `err.code` field of error responses.
const (
	ErrCodeInvalidData  = "invalid_data"  // Malformed input, failed validation, unknown id
	ErrCodeNotFound     = "not_found"     // Well-formed id with no matching record
	ErrCodeStockProblem = "stock_problem" // Requested quantity exceeds available stock
)

// Business error messages.
const (
	MsgInvalidName          = `"name" length must be at least 5 characters long`
	MsgQuantityNotNumber    = `"quantity" must be a number`
	MsgQuantityTooSmall     = `"quantity" must be larger than or equal to 1`
	MsgQuantityTooLarge     = `"quantity" must be less than or equal to 2147483647`
	MsgProductExists        = "Product already exists"
	MsgWrongProductID       = "Wrong id format"
	MsgInvalidSaleItem      = "Wrong product ID or invalid quantity"
	MsgSaleNotFound         = "Sale not found"
	MsgWrongSaleID          = "Wrong sale ID format"
	MsgInsufficientStock    = "Such amount is not permitted to sell"
	MsgInvalidRequestFormat = "Invalid request body format"
)
