package siman

// EquilibriumStats reports the running statistics gathered during one
// equilibrium. These are diagnostic only: the convergence detector
// consumes the observed score via the history ring, not this struct.
//
// CostVariance and DeltaCostVariance are, despite field names elsewhere
// that once called this "costStdDev", variances (second central moment),
// not standard deviations. The value itself is unchanged; only the name
// here corrects the mislabeling.
type EquilibriumStats struct {
	MeanCost          float64
	CostVariance      float64
	DeltaCostVariance float64
	AcceptRatio       float64
	Attempts          int
	Acceptances       int
}
