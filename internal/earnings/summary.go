package earnings

// CutSummary aggregates haircut records over a range and scope.
// The zero value is the aggregate of the empty set.
type CutSummary struct {
	Count        int64   `json:"count"`
	Total        float64 `json:"total"`
	DividedTotal float64 `json:"dividedTotal"`
}

// Add returns the element-wise sum of two summaries. Aggregation over a
// union of disjoint ranges equals the sum of the per-range aggregates.
func (s CutSummary) Add(o CutSummary) CutSummary {
	return CutSummary{
		Count:        s.Count + o.Count,
		Total:        s.Total + o.Total,
		DividedTotal: s.DividedTotal + o.DividedTotal,
	}
}

// SaleSummary aggregates product-sale records over a range.
type SaleSummary struct {
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

// Add returns the element-wise sum of two summaries.
func (s SaleSummary) Add(o SaleSummary) SaleSummary {
	return SaleSummary{Count: s.Count + o.Count, Total: s.Total + o.Total}
}
