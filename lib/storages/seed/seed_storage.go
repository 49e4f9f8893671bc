package seed

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/pescuma/strategist/lib/consoles"
	"github.com/pescuma/strategist/lib/model"
	"github.com/pescuma/strategist/lib/storages"
	"github.com/pescuma/strategist/lib/utils"
)

//go:embed products.yaml
var embeddedProducts []byte

type seedStorage struct {
	console consoles.Console
	source  string
	data    []byte
}

// NewEmbeddedStorage serves the reference products compiled into the binary.
func NewEmbeddedStorage(console consoles.Console) storages.Storage {
	return &seedStorage{
		console: console,
		source:  "embedded seed",
		data:    embeddedProducts,
	}
}

func NewFileStorage(file string, console consoles.Console) (storages.Storage, error) {
	file, err := utils.PathAbs(file)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading seed file %v", file)
	}

	return &seedStorage{
		console: console,
		source:  file,
		data:    data,
	}, nil
}

// NewFactory returns a storages.Factory where an empty path means the embedded seed.
func NewFactory(console consoles.Console) storages.Factory {
	return func(path string) (storages.Storage, error) {
		if path == "" {
			return NewEmbeddedStorage(console), nil
		}

		return NewFileStorage(path, console)
	}
}

// LoadProducts parses the seed every time, so each caller gets its own copy.
func (s *seedStorage) LoadProducts() (*model.Products, error) {
	s.console.PushPrefix("seed: ")
	defer s.console.PopPrefix()

	s.console.Printf("Loading products from %v...\n", s.source)

	result, err := Parse(bytes.NewReader(s.data))
	if err != nil {
		return nil, errors.Wrapf(err, "error loading %v", s.source)
	}

	s.console.Printf("Loaded %v products\n", result.Len())

	return result, nil
}

func (s *seedStorage) Close() error {
	return nil
}

// Parse reads a seed document. Unknown keys are rejected.
func Parse(r io.Reader) (*model.Products, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc yamlSeed
	err := decoder.Decode(&doc)
	if err != nil {
		return nil, err
	}

	if len(doc.Products) == 0 {
		return nil, errors.New("no products")
	}

	return doc.toModel()
}

// Write serialises products in the same format Parse reads.
func Write(w io.Writer, products *model.Products) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	err := encoder.Encode(newYamlSeed(products))
	if err != nil {
		return err
	}

	return encoder.Close()
}
