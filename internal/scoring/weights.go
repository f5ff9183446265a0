package scoring

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Layer is a dense affine map; Weight is laid out [in][out].
type Layer struct {
	Weight [][]float64 `yaml:"weight" json:"weight"`
	Bias   []float64   `yaml:"bias" json:"bias"`
}

func (l Layer) dims() (in, out int) {
	if len(l.Weight) == 0 {
		return 0, 0
	}
	return len(l.Weight), len(l.Weight[0])
}

func (l Layer) validate(name string, in, out int) error {
	gotIn, gotOut := l.dims()
	if gotIn != in || gotOut != out {
		return fmt.Errorf("%s: weight is %dx%d, want %dx%d", name, gotIn, gotOut, in, out)
	}
	for i, row := range l.Weight {
		if len(row) != out {
			return fmt.Errorf("%s: row %d has %d columns, want %d", name, i, len(row), out)
		}
	}
	if len(l.Bias) != out {
		return fmt.Errorf("%s: bias has %d entries, want %d", name, len(l.Bias), out)
	}
	return nil
}

// Weights is the trained parameter set of the smurfing detector: three graph
// convolutions followed by a linear classifier.
type Weights struct {
	InputDim   int   `yaml:"input_dim" json:"input_dim"`
	HiddenDim  int   `yaml:"hidden_dim" json:"hidden_dim"`
	NumClasses int   `yaml:"num_classes" json:"num_classes"`
	Conv1      Layer `yaml:"conv1" json:"conv1"`
	Conv2      Layer `yaml:"conv2" json:"conv2"`
	Conv3      Layer `yaml:"conv3" json:"conv3"`
	FC         Layer `yaml:"fc" json:"fc"`
}

func (w *Weights) Validate() error {
	if w.InputDim <= 0 || w.HiddenDim <= 0 {
		return errors.New("input_dim and hidden_dim must be positive")
	}
	if w.NumClasses != 2 {
		return fmt.Errorf("num_classes is %d, want 2", w.NumClasses)
	}
	if err := w.Conv1.validate("conv1", w.InputDim, w.HiddenDim); err != nil {
		return err
	}
	if err := w.Conv2.validate("conv2", w.HiddenDim, w.HiddenDim); err != nil {
		return err
	}
	if err := w.Conv3.validate("conv3", w.HiddenDim, w.HiddenDim); err != nil {
		return err
	}
	return w.FC.validate("fc", w.HiddenDim, w.NumClasses)
}

// ReadWeights decodes a weights manifest. YAML is a superset of JSON, so
// both encodings are accepted.
func ReadWeights(path string) (*Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weights: %w", err)
	}

	var w Weights
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode weights: %w", err)
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weights: %w", err)
	}
	return &w, nil
}
