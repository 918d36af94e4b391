package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
)

// modelArtifact is the JSON export of a fitted TF-IDF vectorizer plus linear
// classifier. For binary models Coef holds a single row and a positive score
// selects Classes[1].
type modelArtifact struct {
	Vocabulary map[string]int `json:"vocabulary"`
	Idf        []float64      `json:"idf"`
	Classes    []string       `json:"classes"`
	Coef       [][]float64    `json:"coef"`
	Intercept  []float64      `json:"intercept"`
}

// linearModel scores pre-normalized text against a fitted linear classifier.
// Loaded once at startup and read-only thereafter, it is safe for unlimited
// concurrent readers.
type linearModel struct {
	vocabulary map[string]int
	idf        []float64
	classes    []string
	coef       [][]float64
	intercept  []float64
}

func loadModel(path string) (*linearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact %s: %w", path, err)
	}

	var artifact modelArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact %s: %w", path, err)
	}

	m := &linearModel{
		vocabulary: artifact.Vocabulary,
		idf:        artifact.Idf,
		classes:    artifact.Classes,
		coef:       artifact.Coef,
		intercept:  artifact.Intercept,
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", path, err)
	}

	return m, nil
}

func (m *linearModel) validate() error {
	if len(m.vocabulary) == 0 {
		return fmt.Errorf("empty vocabulary")
	}
	if len(m.idf) != len(m.vocabulary) {
		return fmt.Errorf("idf length %d does not match vocabulary size %d", len(m.idf), len(m.vocabulary))
	}
	if len(m.classes) < 2 {
		return fmt.Errorf("need at least two classes, got %d", len(m.classes))
	}

	wantRows := len(m.classes)
	if wantRows == 2 {
		wantRows = 1
	}
	if len(m.coef) != wantRows {
		return fmt.Errorf("coefficient rows %d do not match class count %d", len(m.coef), len(m.classes))
	}
	for i, row := range m.coef {
		if len(row) != len(m.vocabulary) {
			return fmt.Errorf("coefficient row %d has %d features, vocabulary has %d", i, len(row), len(m.vocabulary))
		}
	}
	if len(m.intercept) != len(m.coef) {
		return fmt.Errorf("intercept length %d does not match coefficient rows %d", len(m.intercept), len(m.coef))
	}

	return nil
}

// predict returns the highest-scoring class label for the given
// pre-normalized text.
func (m *linearModel) predict(normalizedText string) string {
	features := m.vectorize(normalizedText)

	if len(m.coef) == 1 {
		// Binary model: single decision score, sign picks the class.
		score := m.intercept[0]
		for idx, value := range features {
			score += m.coef[0][idx] * value
		}
		if score > 0 {
			return m.classes[1]
		}
		return m.classes[0]
	}

	best := 0
	bestScore := math.Inf(-1)
	for row := range m.coef {
		score := m.intercept[row]
		for idx, value := range features {
			score += m.coef[row][idx] * value
		}
		if score > bestScore {
			bestScore = score
			best = row
		}
	}
	return m.classes[best]
}

// vectorize builds a sparse L2-normalized TF-IDF vector.
func (m *linearModel) vectorize(normalizedText string) map[int]float64 {
	counts := make(map[int]float64)
	for _, token := range strings.Fields(normalizedText) {
		if idx, ok := m.vocabulary[token]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return counts
	}

	var norm float64
	for idx := range counts {
		counts[idx] *= m.idf[idx]
		norm += counts[idx] * counts[idx]
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for idx := range counts {
			counts[idx] /= norm
		}
	}

	return counts
}
