package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantitiesByProduct(t *testing.T) {
	items := []SaleItem{
		{ProductID: "b", Quantity: 2},
		{ProductID: "a", Quantity: 1},
		{ProductID: "b", Quantity: 3},
	}

	totals, order := QuantitiesByProduct(items)

	assert.Equal(t, map[string]int{"a": 1, "b": 5}, totals)
	assert.Equal(t, []string{"b", "a"}, order)
	assert.Equal(t, 6, Sale{ItemsSold: items}.Units())
}
