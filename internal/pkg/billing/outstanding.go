package billing

import "github.com/enternet/portal/app/models"

// Outstanding summarizes the invoices still awaiting payment
type Outstanding struct {
	Count    int     `json:"count"`
	TotalCLP float64 `json:"total_clp"`
}

// ComputeOutstanding counts unpaid and overdue invoices and sums their UF
// amounts converted to CLP at rate
func ComputeOutstanding(invoices []models.Invoice, rate float64) Outstanding {
	var out Outstanding
	for _, inv := range invoices {
		if !inv.IsOutstanding() {
			continue
		}
		out.Count++
		out.TotalCLP += inv.UFValue * rate
	}
	return out
}
