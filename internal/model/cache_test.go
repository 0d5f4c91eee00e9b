package model

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-rating-service/internal/domain"
)

func TestCacheGetLoadsOnce(t *testing.T) {
	path := writeFile(t, "model.json", forestJSON)
	cache := NewCache(path, "")

	first, err := cache.Get()
	require.NoError(t, err)

	// Removing the file proves the second call never touches disk.
	require.NoError(t, os.Remove(path))

	second, err := cache.Get()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestCacheGetModelMissing(t *testing.T) {
	cache := NewCache(filepath.Join(t.TempDir(), "missing.json"), "")

	_, err := cache.Get()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrModelNotFound)
	assert.Contains(t, err.Error(), "missing.json")
}

func TestCacheGetCorruptModelRetriable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	cache := NewCache(path, "")

	_, err := cache.Get()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrModelLoad)

	// Failure is not cached: fixing the file makes the next call succeed.
	require.NoError(t, os.WriteFile(path, []byte(forestJSON), 0o644))

	artifact, err := cache.Get()
	require.NoError(t, err)
	assert.NotNil(t, artifact.Predictor)
}

func TestCacheGetMetadataAbsentIsNotAnError(t *testing.T) {
	path := writeFile(t, "model.json", forestJSON)
	cache := NewCache(path, filepath.Join(t.TempDir(), "missing_metadata.json"))

	artifact, err := cache.Get()
	require.NoError(t, err)
	assert.Nil(t, artifact.Metadata)
}

func TestCacheGetMalformedMetadataIsAnError(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	metadataPath := filepath.Join(dir, "metadata.json")
	require.NoError(t, os.WriteFile(modelPath, []byte(forestJSON), 0o644))
	require.NoError(t, os.WriteFile(metadataPath, []byte("{broken"), 0o644))

	cache := NewCache(modelPath, metadataPath)

	_, err := cache.Get()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrModelLoad)
}

func TestCacheGetWithMetadata(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	metadataPath := filepath.Join(dir, "metadata.json")
	require.NoError(t, os.WriteFile(modelPath, []byte(forestJSON), 0o644))
	require.NoError(t, os.WriteFile(metadataPath, []byte(`{"model_name": "rf_v2", "metrics": {"f1": 0.82}}`), 0o644))

	cache := NewCache(modelPath, metadataPath)

	artifact, err := cache.Get()
	require.NoError(t, err)
	require.NotNil(t, artifact.Metadata)
	assert.Equal(t, "rf_v2", artifact.Metadata.ModelName)
	assert.Equal(t, map[string]float64{"f1": 0.82}, artifact.Metadata.Metrics)
	assert.NotNil(t, artifact.Proba)
}

func TestCacheGetConcurrentFirstCallers(t *testing.T) {
	path := writeFile(t, "model.json", forestJSON)
	cache := NewCache(path, "")

	const callers = 16
	artifacts := make([]*Artifact, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			artifact, err := cache.Get()
			assert.NoError(t, err)
			artifacts[i] = artifact
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		assert.Same(t, artifacts[0], artifacts[i])
	}
}

func TestCacheStatDoesNotLoad(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	metadataPath := filepath.Join(dir, "metadata.json")

	cache := NewCache(modelPath, metadataPath)

	st := cache.Stat()
	assert.False(t, st.ModelExists)
	assert.False(t, st.MetadataExists)
	assert.Equal(t, modelPath, st.ModelPath)

	// Even a corrupt file only flips the existence bit; Stat never parses.
	require.NoError(t, os.WriteFile(modelPath, []byte("garbage"), 0o644))
	require.NoError(t, os.WriteFile(metadataPath, []byte("garbage"), 0o644))

	st = cache.Stat()
	assert.True(t, st.ModelExists)
	assert.True(t, st.MetadataExists)
}
