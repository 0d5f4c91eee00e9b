package testutil

import (
	"github.com/stretchr/testify/mock"

	"movie-rating-service/internal/model"
)

// MockArtifactSource is a mock of usecase.ArtifactSource.
type MockArtifactSource struct {
	mock.Mock
}

func (m *MockArtifactSource) Get() (*model.Artifact, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artifact), args.Error(1)
}

func (m *MockArtifactSource) Stat() model.Status {
	args := m.Called()
	return args.Get(0).(model.Status)
}

// StubPredictor returns fixed labels for any batch.
type StubPredictor struct {
	Labels []string
	Err    error
}

func (s *StubPredictor) Predict(records []model.Record) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Labels, nil
}

// StubProbaPredictor adds fixed class distributions on top of StubPredictor.
type StubProbaPredictor struct {
	StubPredictor
	ClassNames []string
	Probas     [][]float64
	ProbaErr   error
}

func (s *StubProbaPredictor) PredictProba(records []model.Record) ([][]float64, error) {
	if s.ProbaErr != nil {
		return nil, s.ProbaErr
	}
	return s.Probas, nil
}

func (s *StubProbaPredictor) Classes() []string {
	return s.ClassNames
}
