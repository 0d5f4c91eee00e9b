package usecase

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"movie-rating-service/internal/domain"
	"movie-rating-service/internal/model"
)

// ArtifactSource provides the loaded model artifact. *model.Cache is the
// production implementation.
type ArtifactSource interface {
	Get() (*model.Artifact, error)
	Stat() model.Status
}

type PredictionUseCase struct {
	source ArtifactSource
}

func NewPredictionUseCase(source ArtifactSource) *PredictionUseCase {
	return &PredictionUseCase{source: source}
}

// Predict classifies a batch of movies. The batch is sent to the model in
// one call; results keep the input order. Confidence is the maximum class
// probability per record when the model supports probability estimation,
// nil otherwise.
func (uc *PredictionUseCase) Predict(ctx context.Context, movies []domain.MovieFeatures) (*domain.PredictResponse, error) {
	if len(movies) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	artifact, err := uc.source.Get()
	if err != nil {
		return nil, err
	}

	records := toRecords(movies)

	labels, err := artifact.Predictor.Predict(records)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInference, err)
	}
	if len(labels) != len(records) {
		return nil, fmt.Errorf("%w: got %d predictions for %d records", domain.ErrInference, len(labels), len(records))
	}

	var confidences []float64
	if artifact.Proba != nil {
		dists, err := artifact.Proba.PredictProba(records)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInference, err)
		}
		if len(dists) != len(records) {
			return nil, fmt.Errorf("%w: got %d distributions for %d records", domain.ErrInference, len(dists), len(records))
		}
		confidences = make([]float64, len(dists))
		for i, dist := range dists {
			confidences[i] = maxProbability(dist)
		}
	}

	predictions := make([]domain.PredictionResult, len(labels))
	for i, label := range labels {
		predictions[i] = domain.PredictionResult{RatingCategory: label}
		if confidences != nil {
			c := confidences[i]
			predictions[i].Confidence = &c
		}
	}

	modelName := "unknown"
	metrics := map[string]float64{}
	if artifact.Metadata != nil {
		modelName = artifact.Metadata.ModelName
		metrics = artifact.Metadata.Metrics
	}

	log.WithFields(log.Fields{
		"batch_size": len(movies),
		"model_name": modelName,
	}).Debug("prediction completed")

	return &domain.PredictResponse{
		Predictions:  predictions,
		ModelName:    modelName,
		ModelMetrics: metrics,
	}, nil
}

// toRecords converts movies to the model's tabular input, keeping the exact
// field names the model was trained with.
func toRecords(movies []domain.MovieFeatures) []model.Record {
	records := make([]model.Record, len(movies))
	for i, m := range movies {
		records[i] = model.Record{
			Numeric: map[string]float64{
				"startYear":      *m.StartYear,
				"runtimeMinutes": *m.RuntimeMinutes,
				"numVotes":       *m.NumVotes,
				"averageRating":  *m.AverageRating,
			},
			Categorical: map[string]string{
				"runtime_category": m.RuntimeCategory,
				"popularity":       m.Popularity,
			},
		}
	}
	return records
}

func maxProbability(dist []float64) float64 {
	best := 0.0
	for _, p := range dist {
		if p > best {
			best = p
		}
	}
	return best
}
