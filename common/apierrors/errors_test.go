package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorErrorIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewApplicationError(ErrCodeDatabaseAccess, "Failed to read products", cause)

	assert.Equal(t, CategoryApplication, err.Category)
	assert.Contains(t, err.Error(), ErrCodeDatabaseAccess)
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestBusinessErrorDefaults(t *testing.T) {
	err := InvalidData(MsgWrongProductID)

	assert.Equal(t, ErrCodeInvalidData, err.Code)
	assert.Equal(t, MsgWrongProductID, err.Message)
	assert.Equal(t, CategoryBusiness, err.Category)
	assert.Zero(t, err.StatusCode)
	assert.Equal(t, "AppError(Code=invalid_data, Message=Wrong id format)", err.Error())
}

func TestWithStatus(t *testing.T) {
	err := NewBusinessError(ErrCodeNotFound, MsgSaleNotFound, nil).WithStatus(http.StatusUnprocessableEntity)
	assert.Equal(t, http.StatusUnprocessableEntity, err.StatusCode)
}

func TestHasCode(t *testing.T) {
	wrapped := fmt.Errorf("sale: %w", NewBusinessError(ErrCodeStockProblem, MsgInsufficientStock, nil))

	assert.True(t, HasCode(wrapped, ErrCodeStockProblem))
	assert.False(t, HasCode(wrapped, ErrCodeInvalidData))
	assert.False(t, HasCode(errors.New("plain"), ErrCodeInvalidData))
}

func TestIsBusiness(t *testing.T) {
	assert.True(t, IsBusiness(InvalidData(MsgInvalidSaleItem)))
	assert.True(t, IsBusiness(fmt.Errorf("update sale: %w", NewBusinessError(ErrCodeNotFound, MsgSaleNotFound, nil))))
	assert.False(t, IsBusiness(NewApplicationError(ErrCodeDatabaseAccess, "down", nil)))
	assert.False(t, IsBusiness(errors.New("plain")))
	assert.False(t, IsBusiness(nil))

	var typedNil *AppError
	assert.False(t, IsBusiness(typedNil))
}
