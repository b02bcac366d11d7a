// Package validation holds the pure input rules for products and sale lines.
package validation

import (
	"encoding/json"
	"math"
	"reflect"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/validator"
)

const (
	nameRule        = "required,min=5"
	quantityMinRule = "gte=1"
	quantityMaxRule = "lte=2147483647"
)

// ValidateName requires a string of at least five characters, counted as runes.
func ValidateName(name any) *apierrors.AppError {
	_, appErr := ParseName(name)
	return appErr
}

// ParseName returns name as a string when it passes ValidateName. Any other
// JSON type gets the same message as a short name.
func ParseName(name any) (string, *apierrors.AppError) {
	s, ok := name.(string)
	if !ok {
		return "", apierrors.InvalidData(apierrors.MsgInvalidName)
	}
	if err := validator.Var(s, nameRule); err != nil {
		return "", apierrors.InvalidData(apierrors.MsgInvalidName)
	}
	return s, nil
}

// ValidateQuantity checks the type of quantity first and its range second.
func ValidateQuantity(quantity any) *apierrors.AppError {
	_, appErr := ParseQuantity(quantity)
	return appErr
}

// ParseQuantity accepts integral JSON numbers between 1 and math.MaxInt32 and
// returns them as int. Strings, booleans, null and fractional numbers are
// "not a number".
func ParseQuantity(quantity any) (int, *apierrors.AppError) {
	n, ok := toInt64(quantity)
	if !ok {
		return 0, apierrors.InvalidData(apierrors.MsgQuantityNotNumber)
	}
	if err := validator.Var(n, quantityMinRule); err != nil {
		return 0, apierrors.InvalidData(apierrors.MsgQuantityTooSmall)
	}
	if err := validator.Var(n, quantityMaxRule); err != nil {
		return 0, apierrors.InvalidData(apierrors.MsgQuantityTooLarge)
	}
	return int(n), nil
}

// toInt64 saturates at the int64 bounds; anything past int32 fails the range rules anyway.
func toInt64(v any) (int64, bool) {
	switch q := v.(type) {
	case nil:
		return 0, false
	case json.Number:
		if i, err := q.Int64(); err == nil {
			return i, true
		}
		f, err := q.Float64()
		if err != nil {
			return 0, false
		}
		return fromFloat(f)
	case float64:
		return fromFloat(q)
	case float32:
		return fromFloat(float64(q))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return math.MaxInt64, true
		}
		return int64(u), true
	}
	return 0, false
}

func fromFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64, true
	case f <= math.MinInt64:
		return math.MinInt64, true
	}
	return int64(f), true
}
