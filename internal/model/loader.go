package model

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	modelTypeRandomForest = "random_forest"
	modelTypeDecisionTree = "decision_tree"
)

type document struct {
	ModelType string   `json:"model_type"`
	Classes   []string `json:"classes"`
	featureSpec
	Trees []tree `json:"trees"`
}

// Load deserializes a model artifact from disk and returns the predictor it
// describes. The concrete type depends on model_type; callers detect the
// probability capability with a type assertion.
func Load(path string) (Predictor, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact: %w", err)
	}

	switch doc.ModelType {
	case modelTypeRandomForest:
		return &Forest{classes: doc.Classes, spec: doc.featureSpec, trees: doc.Trees}, nil
	case modelTypeDecisionTree:
		return &DecisionTree{classes: doc.Classes, spec: doc.featureSpec, tree: doc.Trees[0]}, nil
	default:
		return nil, fmt.Errorf("unsupported model type %q", doc.ModelType)
	}
}

func (doc *document) validate() error {
	if len(doc.Classes) == 0 {
		return fmt.Errorf("no classes")
	}
	if doc.width() == 0 {
		return fmt.Errorf("no features")
	}
	if len(doc.Trees) == 0 {
		return fmt.Errorf("no trees")
	}
	for ti, t := range doc.Trees {
		if len(t.Nodes) == 0 {
			return fmt.Errorf("tree %d has no nodes", ti)
		}
		for ni, node := range t.Nodes {
			if !node.Leaf {
				if node.Feature < 0 || node.Feature >= doc.width() {
					return fmt.Errorf("tree %d node %d: feature index out of range", ti, ni)
				}
				if node.Left < 0 || node.Left >= len(t.Nodes) || node.Right < 0 || node.Right >= len(t.Nodes) {
					return fmt.Errorf("tree %d node %d: child index out of range", ti, ni)
				}
				continue
			}
			if node.Label < 0 || node.Label >= len(doc.Classes) {
				return fmt.Errorf("tree %d node %d: label index out of range", ti, ni)
			}
			if doc.ModelType == modelTypeRandomForest && len(node.Distribution) != len(doc.Classes) {
				return fmt.Errorf("tree %d node %d: distribution length %d, want %d", ti, ni, len(node.Distribution), len(doc.Classes))
			}
		}
	}
	return nil
}
