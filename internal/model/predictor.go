package model

// Record is one row of tabular input, keyed by the feature names the model
// was trained with. Values are passed through unchanged; the model itself
// rejects unknown categories at prediction time.
type Record struct {
	Numeric     map[string]float64
	Categorical map[string]string
}

// Predictor is the capability every loaded artifact exposes: classify a
// whole batch in one call, returning one label per record in input order.
type Predictor interface {
	Predict(records []Record) ([]string, error)
}

// ProbabilityPredictor is optionally exposed by artifacts that can estimate
// class probabilities. PredictProba returns, per record, a distribution
// aligned with Classes.
type ProbabilityPredictor interface {
	Predictor
	PredictProba(records []Record) ([][]float64, error)
	Classes() []string
}
