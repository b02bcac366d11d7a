package models

// SaleItem is one line of a sale.
type SaleItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Sale is a recorded sale. The misspelled "itensSold" key is part of the public API.
type Sale struct {
	ID        string     `json:"_id"`
	ItemsSold []SaleItem `json:"itensSold"`
}

// Units returns the total number of units across all lines.
func (s Sale) Units() int {
	total := 0
	for _, item := range s.ItemsSold {
		total += item.Quantity
	}
	return total
}

// QuantitiesByProduct sums the quantity of each product over all lines.
// The returned order lists product ids by first appearance.
func QuantitiesByProduct(items []SaleItem) (map[string]int, []string) {
	totals := make(map[string]int, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		if _, seen := totals[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		totals[item.ProductID] += item.Quantity
	}
	return totals, order
}
