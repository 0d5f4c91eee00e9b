package domain

// MovieFeatures carries the input fields for one movie. Numeric fields are
// pointers so that an absent field fails validation instead of defaulting
// to zero.
type MovieFeatures struct {
	StartYear       *float64 `json:"startYear" binding:"required"`
	RuntimeMinutes  *float64 `json:"runtimeMinutes" binding:"required"`
	NumVotes        *float64 `json:"numVotes" binding:"required"`
	AverageRating   *float64 `json:"averageRating" binding:"required"`
	RuntimeCategory string   `json:"runtime_category" binding:"required"`
	Popularity      string   `json:"popularity" binding:"required"`
}

type PredictRequest struct {
	Movies []MovieFeatures `json:"movies" binding:"dive"`
}

// PredictionResult is one classified movie. Confidence is nil when the
// loaded model does not expose class probabilities; the JSON field is then
// an explicit null, never 0.
type PredictionResult struct {
	RatingCategory string   `json:"rating_category"`
	Confidence     *float64 `json:"confidence"`
}

type PredictResponse struct {
	Predictions  []PredictionResult `json:"predictions"`
	ModelName    string             `json:"model_name"`
	ModelMetrics map[string]float64 `json:"model_metrics"`
}

type HealthResponse struct {
	Status         string `json:"status"`
	ModelPath      string `json:"model_path"`
	ModelExists    bool   `json:"model_exists"`
	MetadataExists bool   `json:"metadata_exists"`
}
