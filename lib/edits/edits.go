package edits

import (
	"github.com/pkg/errors"

	"github.com/pescuma/strategist/lib/model"
)

// Edit is a single change coming from a form control: the dotted path of the field and
// the raw text the user typed.
type Edit struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

func (e Edit) String() string {
	return e.Path + "=" + e.Value
}

// Lookup returns the metadata of the field at path.
func Lookup(path string) (Field, error) {
	t, err := resolve(path)
	if err != nil {
		return Field{}, err
	}

	return t.Field, nil
}

// Get returns the current value at path, formatted as a control would show it.
func Get(p *model.Product, path string) (string, error) {
	t, err := resolve(path)
	if err != nil {
		return "", err
	}

	v, err := t.get(p)
	if err != nil {
		return "", err
	}

	return Format(v), nil
}

// Apply returns a new product with the edit applied. p is left untouched.
func Apply(p *model.Product, edit Edit) (*model.Product, error) {
	t, err := resolve(edit.Path)
	if err != nil {
		return nil, err
	}

	v, err := t.Parse(edit.Value)
	if err != nil {
		return nil, errors.Wrapf(err, "'%v'", edit.Path)
	}

	return t.set(p, v)
}

// ApplyAll applies the edits in order. If any of them fails, nothing is applied.
func ApplyAll(p *model.Product, edits ...Edit) (*model.Product, error) {
	result := p
	for _, e := range edits {
		var err error

		result, err = Apply(result, e)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}
