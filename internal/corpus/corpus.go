// Package corpus holds the bundled sample content served when the content
// API cannot be trusted.
package corpus

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/brainfeed/internal/domain"
	"github.com/DjordjeVuckovic/brainfeed/internal/validate"
)

//go:embed fallback.yaml
var fallbackYAML []byte

type Corpus struct {
	Articles   domain.Articles
	Categories domain.Categories
}

type document struct {
	Articles   []any `yaml:"articles"`
	Categories []any `yaml:"categories"`
}

type Loader struct {
	reader    io.Reader
	validator *validate.Validator
}

func NewLoader(reader io.Reader, v *validate.Validator) *Loader {
	return &Loader{reader: reader, validator: v}
}

// Load decodes the YAML document and runs both collections through the same
// validator that guards live payloads.
func (l *Loader) Load() (*Corpus, error) {
	var doc document
	if err := yaml.NewDecoder(l.reader).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}
	if doc.Articles == nil || doc.Categories == nil {
		return nil, fmt.Errorf("corpus must define articles and categories")
	}

	raw, err := json.Marshal(doc.Articles)
	if err != nil {
		return nil, fmt.Errorf("encode corpus articles: %w", err)
	}
	articles, err := l.validator.Articles(raw)
	if err != nil {
		return nil, fmt.Errorf("corpus articles: %w", err)
	}

	raw, err = json.Marshal(doc.Categories)
	if err != nil {
		return nil, fmt.Errorf("encode corpus categories: %w", err)
	}
	categories, err := l.validator.Categories(raw)
	if err != nil {
		return nil, fmt.Errorf("corpus categories: %w", err)
	}

	return &Corpus{Articles: articles, Categories: categories}, nil
}

// Default loads the embedded fallback corpus.
func Default(v *validate.Validator) (*Corpus, error) {
	return NewLoader(bytes.NewReader(fallbackYAML), v).Load()
}
