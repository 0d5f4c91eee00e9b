package model

import "fmt"

// Forest is a random-forest classifier with per-leaf class distributions.
// It supports probability estimation: tree distributions are averaged and
// the predicted label is the argmax of the average.
type Forest struct {
	classes []string
	spec    featureSpec
	trees   []tree
}

func (f *Forest) Classes() []string {
	return f.classes
}

func (f *Forest) Predict(records []Record) ([]string, error) {
	dists, err := f.PredictProba(records)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(dists))
	for i, dist := range dists {
		labels[i] = f.classes[argmax(dist)]
	}
	return labels, nil
}

func (f *Forest) PredictProba(records []Record) ([][]float64, error) {
	dists := make([][]float64, len(records))
	for i, rec := range records {
		vec, err := f.spec.encode(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		avg := make([]float64, len(f.classes))
		for ti := range f.trees {
			leaf, err := f.trees[ti].walk(vec)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
			for ci, p := range f.trees[ti].Nodes[leaf].Distribution {
				avg[ci] += p
			}
		}
		for ci := range avg {
			avg[ci] /= float64(len(f.trees))
		}
		dists[i] = avg
	}
	return dists, nil
}

// DecisionTree is a single tree with label-only leaves. It cannot estimate
// probabilities, so it implements Predictor but not ProbabilityPredictor.
type DecisionTree struct {
	classes []string
	spec    featureSpec
	tree    tree
}

func (d *DecisionTree) Predict(records []Record) ([]string, error) {
	labels := make([]string, len(records))
	for i, rec := range records {
		vec, err := d.spec.encode(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		leaf, err := d.tree.walk(vec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		labels[i] = d.classes[d.tree.Nodes[leaf].Label]
	}
	return labels, nil
}

func argmax(dist []float64) int {
	best := 0
	for i, v := range dist {
		if v > dist[best] {
			best = i
		}
	}
	return best
}
