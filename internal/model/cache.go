package model

import (
	"fmt"
	"os"
	"sync"

	log "github.com/sirupsen/logrus"

	"movie-rating-service/internal/domain"
)

// Artifact is the loaded model handle shared by all requests. Proba is nil
// when the model does not estimate probabilities; Metadata is nil when the
// sidecar file is absent. Immutable after load.
type Artifact struct {
	Predictor Predictor
	Proba     ProbabilityPredictor
	Metadata  *Metadata
}

// Status reports on-disk presence of the artifact files without loading
// them, for health checks.
type Status struct {
	ModelPath      string
	ModelExists    bool
	MetadataPath   string
	MetadataExists bool
}

// Cache lazily loads the model artifact at most once per process. Only a
// successful load is remembered: a failed load leaves the cache empty so
// the next call retries.
type Cache struct {
	modelPath    string
	metadataPath string

	mu       sync.Mutex
	artifact *Artifact
}

func NewCache(modelPath, metadataPath string) *Cache {
	return &Cache{modelPath: modelPath, metadataPath: metadataPath}
}

// Get returns the cached artifact, loading it on first use. Concurrent
// first callers serialize on the mutex so the deserialization runs once.
func (c *Cache) Get() (*Artifact, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.artifact != nil {
		return c.artifact, nil
	}

	if _, err := os.Stat(c.modelPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", domain.ErrModelNotFound, c.modelPath)
		}
		return nil, fmt.Errorf("%w: stat %s: %v", domain.ErrModelLoad, c.modelPath, err)
	}

	predictor, err := Load(c.modelPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelLoad, err)
	}

	artifact := &Artifact{Predictor: predictor}
	if proba, ok := predictor.(ProbabilityPredictor); ok {
		artifact.Proba = proba
	}

	if c.metadataPath != "" {
		if _, err := os.Stat(c.metadataPath); err == nil {
			md, err := LoadMetadata(c.metadataPath)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrModelLoad, err)
			}
			artifact.Metadata = md
		}
	}

	c.artifact = artifact
	log.WithFields(log.Fields{
		"model_path":   c.modelPath,
		"has_proba":    artifact.Proba != nil,
		"has_metadata": artifact.Metadata != nil,
	}).Info("model artifact loaded")
	return artifact, nil
}

// Stat reports file presence without triggering a load.
func (c *Cache) Stat() Status {
	st := Status{ModelPath: c.modelPath, MetadataPath: c.metadataPath}
	if _, err := os.Stat(c.modelPath); err == nil {
		st.ModelExists = true
	}
	if c.metadataPath != "" {
		if _, err := os.Stat(c.metadataPath); err == nil {
			st.MetadataExists = true
		}
	}
	return st
}
