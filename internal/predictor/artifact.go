package predictor

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// artifact is the JSON export of the offline-trained regression forest.
// feature_columns is the frozen one-hot schema recorded at training time
// (pandas get_dummies naming, "<prefix>_<category>"); each tree carries
// the flattened sklearn node arrays.
type artifact struct {
	FeatureColumns []string `json:"feature_columns"`
	LocationPrefix string   `json:"location_prefix"`
	CuisinePrefix  string   `json:"cuisine_prefix"`
	Trees          []tree   `json:"trees"`
}

type tree struct {
	Feature   []int     `json:"feature"`
	Threshold []float64 `json:"threshold"`
	Left      []int     `json:"children_left"`
	Right     []int     `json:"children_right"`
	Value     []float64 `json:"value"`
}

// ArtifactPredictor evaluates the exported forest in-process. It is
// immutable after Load and safe for concurrent use.
type ArtifactPredictor struct {
	columns        map[string]int
	featureCount   int
	locationPrefix string
	cuisinePrefix  string
	trees          []tree
}

// Load reads and validates a model artifact.
func Load(path string) (*ArtifactPredictor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open model artifact: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}

	if len(a.FeatureColumns) == 0 {
		return nil, errors.New("model artifact has no feature columns")
	}
	if len(a.Trees) == 0 {
		return nil, errors.New("model artifact has no trees")
	}
	if a.LocationPrefix == "" || a.CuisinePrefix == "" {
		return nil, errors.New("model artifact missing feature prefixes")
	}
	for i, t := range a.Trees {
		n := len(t.Feature)
		if n == 0 || len(t.Threshold) != n || len(t.Left) != n || len(t.Right) != n || len(t.Value) != n {
			return nil, fmt.Errorf("model artifact tree %d is malformed", i)
		}
	}

	p := &ArtifactPredictor{
		columns:        make(map[string]int, len(a.FeatureColumns)),
		featureCount:   len(a.FeatureColumns),
		locationPrefix: a.LocationPrefix,
		cuisinePrefix:  a.CuisinePrefix,
		trees:          a.Trees,
	}
	for i, c := range a.FeatureColumns {
		p.columns[c] = i
	}
	return p, nil
}

// Predict one-hot encodes the pair against the frozen schema and
// averages the tree outputs. Categories unseen at training time encode
// to an all-zero row, which is a valid input, not an error.
func (p *ArtifactPredictor) Predict(location, cuisine string) (float64, error) {
	features := p.encode(location, cuisine)

	var sum float64
	for i := range p.trees {
		v, err := p.trees[i].eval(features)
		if err != nil {
			return 0, fmt.Errorf("tree %d: %w", i, err)
		}
		sum += v
	}
	return sum / float64(len(p.trees)), nil
}

func (p *ArtifactPredictor) encode(location, cuisine string) []float64 {
	features := make([]float64, p.featureCount)
	if idx, ok := p.columns[p.locationPrefix+"_"+location]; ok {
		features[idx] = 1
	}
	if idx, ok := p.columns[p.cuisinePrefix+"_"+cuisine]; ok {
		features[idx] = 1
	}
	return features
}

func (t *tree) eval(features []float64) (float64, error) {
	idx := 0
	for steps := 0; steps <= len(t.Feature); steps++ {
		if t.Left[idx] < 0 {
			return t.Value[idx], nil
		}
		f := t.Feature[idx]
		if f < 0 || f >= len(features) {
			return 0, fmt.Errorf("node %d references feature %d outside schema", idx, f)
		}
		if features[f] <= t.Threshold[idx] {
			idx = t.Left[idx]
		} else {
			idx = t.Right[idx]
		}
		if idx < 0 || idx >= len(t.Feature) {
			return 0, fmt.Errorf("node index %d out of range", idx)
		}
	}
	return 0, errors.New("tree walk did not reach a leaf")
}
