package prediction

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
)

// Model is the trained driver-position regressor exported by the offline
// training pipeline: an ordered feature schema plus linear coefficients.
// Inference is a dot product; the artifact is otherwise opaque.
type Model struct {
	Version      string
	FeatureNames []string

	coefficients *mat.VecDense
	intercept    float64
}

type modelArtifact struct {
	Version      string    `json:"version"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// LoadModel reads the model artifact and its declared feature-name schema
// from disk. The schema is loaded as configuration, never derived.
func LoadModel(modelPath, featuresPath string) (*Model, error) {
	modelData, err := os.ReadFile(modelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var artifact modelArtifact
	if err := json.Unmarshal(modelData, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}

	featureData, err := os.ReadFile(featuresPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read feature schema: %w", err)
	}

	var featureNames []string
	if err := json.Unmarshal(featureData, &featureNames); err != nil {
		return nil, fmt.Errorf("failed to parse feature schema: %w", err)
	}

	if len(featureNames) == 0 {
		return nil, fmt.Errorf("feature schema is empty")
	}
	if len(artifact.Coefficients) != len(featureNames) {
		return nil, fmt.Errorf("model has %d coefficients but schema declares %d features",
			len(artifact.Coefficients), len(featureNames))
	}

	version := artifact.Version
	if version == "" {
		version = "1.0.0"
	}

	return &Model{
		Version:      version,
		FeatureNames: featureNames,
		coefficients: mat.NewVecDense(len(artifact.Coefficients), artifact.Coefficients),
		intercept:    artifact.Intercept,
	}, nil
}

// Predict scores one feature vector. The vector must align with
// FeatureNames; BuildVector guarantees that.
func (m *Model) Predict(features []float64) (float64, error) {
	if len(features) != m.coefficients.Len() {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d",
			len(features), m.coefficients.Len())
	}

	x := mat.NewVecDense(len(features), features)
	return mat.Dot(m.coefficients, x) + m.intercept, nil
}
