package model

import (
	"errors"
	"fmt"
)

type treeNode struct {
	Feature      int       `json:"feature"`
	Threshold    float64   `json:"threshold"`
	Left         int       `json:"left"`
	Right        int       `json:"right"`
	Leaf         bool      `json:"leaf"`
	Label        int       `json:"label"`
	Distribution []float64 `json:"distribution,omitempty"`
}

type tree struct {
	Nodes []treeNode `json:"nodes"`
}

// walk descends from the root to a leaf for the given feature vector and
// returns the leaf node index.
func (t *tree) walk(features []float64) (int, error) {
	if len(t.Nodes) == 0 {
		return 0, errors.New("tree has no nodes")
	}
	idx := 0
	for steps := 0; steps <= len(t.Nodes); steps++ {
		node := t.Nodes[idx]
		if node.Leaf {
			return idx, nil
		}
		if node.Feature < 0 || node.Feature >= len(features) {
			return 0, fmt.Errorf("feature index %d out of range", node.Feature)
		}
		if features[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
		if idx < 0 || idx >= len(t.Nodes) {
			return 0, fmt.Errorf("child index %d out of range", idx)
		}
	}
	return 0, errors.New("tree walk did not reach a leaf")
}

type categoricalFeature struct {
	Name       string             `json:"name"`
	Vocabulary map[string]float64 `json:"vocabulary"`
}

// featureSpec fixes the feature-vector layout: numeric features first, in
// declared order, then categorical features encoded via their vocabulary.
type featureSpec struct {
	Numeric     []string             `json:"numeric_features"`
	Categorical []categoricalFeature `json:"categorical_features"`
}

func (s *featureSpec) width() int {
	return len(s.Numeric) + len(s.Categorical)
}

func (s *featureSpec) encode(rec Record) ([]float64, error) {
	vec := make([]float64, 0, s.width())
	for _, name := range s.Numeric {
		v, ok := rec.Numeric[name]
		if !ok {
			return nil, fmt.Errorf("missing numeric feature %q", name)
		}
		vec = append(vec, v)
	}
	for _, cf := range s.Categorical {
		raw, ok := rec.Categorical[cf.Name]
		if !ok {
			return nil, fmt.Errorf("missing categorical feature %q", cf.Name)
		}
		code, ok := cf.Vocabulary[raw]
		if !ok {
			return nil, fmt.Errorf("unknown category %q for feature %q", raw, cf.Name)
		}
		vec = append(vec, code)
	}
	return vec, nil
}
