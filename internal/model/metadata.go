package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// Metadata is the sidecar document written by the training pipeline. The
// full document is kept so /model-info can return it verbatim.
type Metadata struct {
	ModelName string
	Metrics   map[string]float64
	Document  map[string]interface{}
}

func LoadMetadata(path string) (*Metadata, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("parse model metadata: %w", err)
	}

	md := &Metadata{
		ModelName: "unknown",
		Metrics:   map[string]float64{},
		Document:  doc,
	}
	if name, ok := doc["model_name"].(string); ok {
		md.ModelName = name
	}
	if metrics, ok := doc["metrics"].(map[string]interface{}); ok {
		for k, v := range metrics {
			if f, ok := v.(float64); ok {
				md.Metrics[k] = f
			}
		}
	}
	return md, nil
}
