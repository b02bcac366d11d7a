package apierrors

import "errors"

// ErrorCategory says who is at fault. Business errors answer a request the
// store rules refuse (bad quantity, unknown sale, too little stock) and are
// expected outcomes. Application errors mean the service itself failed.
type ErrorCategory string

const (
	CategoryBusiness    ErrorCategory = "business"
	CategoryApplication ErrorCategory = "application"
)

// IsBusiness reports whether err is an AppError refused by a store rule.
// A nil or foreign error is not.
func IsBusiness(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr != nil && appErr.Category == CategoryBusiness
}
