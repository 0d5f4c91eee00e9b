package domain

import "errors"

var (
	ErrEmptyBatch    = errors.New("movies list cannot be empty")
	ErrModelNotFound = errors.New("model not found")
	ErrModelLoad     = errors.New("failed to load model")
	ErrInference     = errors.New("inference failed")
)
