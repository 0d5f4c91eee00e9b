package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec() featureSpec {
	return featureSpec{
		Numeric: []string{"averageRating"},
		Categorical: []categoricalFeature{
			{Name: "popularity", Vocabulary: map[string]float64{"low": 0, "high": 1}},
		},
	}
}

func rec(rating float64, popularity string) Record {
	return Record{
		Numeric:     map[string]float64{"averageRating": rating},
		Categorical: map[string]string{"popularity": popularity},
	}
}

// Single tree splitting on averageRating <= 6.5.
func testTree() tree {
	return tree{Nodes: []treeNode{
		{Feature: 0, Threshold: 6.5, Left: 1, Right: 2},
		{Leaf: true, Label: 0, Distribution: []float64{0.8, 0.2}},
		{Leaf: true, Label: 1, Distribution: []float64{0.1, 0.9}},
	}}
}

func TestForestPredict(t *testing.T) {
	f := &Forest{
		classes: []string{"Poor", "Good"},
		spec:    testSpec(),
		trees:   []tree{testTree()},
	}

	labels, err := f.Predict([]Record{rec(4.0, "low"), rec(8.0, "high")})
	require.NoError(t, err)
	assert.Equal(t, []string{"Poor", "Good"}, labels)
}

func TestForestPredictProbaAveragesTrees(t *testing.T) {
	skewed := tree{Nodes: []treeNode{
		{Feature: 0, Threshold: 6.5, Left: 1, Right: 2},
		{Leaf: true, Label: 0, Distribution: []float64{0.6, 0.4}},
		{Leaf: true, Label: 1, Distribution: []float64{0.3, 0.7}},
	}}
	f := &Forest{
		classes: []string{"Poor", "Good"},
		spec:    testSpec(),
		trees:   []tree{testTree(), skewed},
	}

	dists, err := f.PredictProba([]Record{rec(8.0, "high")})
	require.NoError(t, err)
	require.Len(t, dists, 1)
	assert.InDelta(t, 0.2, dists[0][0], 1e-9)
	assert.InDelta(t, 0.8, dists[0][1], 1e-9)
}

func TestForestUnknownCategory(t *testing.T) {
	f := &Forest{
		classes: []string{"Poor", "Good"},
		spec:    testSpec(),
		trees:   []tree{testTree()},
	}

	_, err := f.Predict([]Record{rec(8.0, "viral")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestForestMissingFeature(t *testing.T) {
	f := &Forest{
		classes: []string{"Poor", "Good"},
		spec:    testSpec(),
		trees:   []tree{testTree()},
	}

	_, err := f.Predict([]Record{{
		Numeric:     map[string]float64{},
		Categorical: map[string]string{"popularity": "low"},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing numeric feature")
}

func TestDecisionTreePredict(t *testing.T) {
	d := &DecisionTree{
		classes: []string{"Poor", "Good"},
		spec:    testSpec(),
		tree: tree{Nodes: []treeNode{
			{Feature: 1, Threshold: 0.5, Left: 1, Right: 2},
			{Leaf: true, Label: 0},
			{Leaf: true, Label: 1},
		}},
	}

	labels, err := d.Predict([]Record{rec(5.0, "low"), rec(5.0, "high")})
	require.NoError(t, err)
	assert.Equal(t, []string{"Poor", "Good"}, labels)
}

func TestDecisionTreeHasNoProbaCapability(t *testing.T) {
	var p Predictor = &DecisionTree{}
	_, ok := p.(ProbabilityPredictor)
	assert.False(t, ok)

	p = &Forest{}
	_, ok = p.(ProbabilityPredictor)
	assert.True(t, ok)
}
