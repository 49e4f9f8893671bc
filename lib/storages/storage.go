package storages

import (
	"github.com/pescuma/strategist/lib/model"
)

// Storage provides the initial set of products. It is read once at startup; edits only
// live in the session.
type Storage interface {
	LoadProducts() (*model.Products, error)

	Close() error
}

type Factory = func(path string) (Storage, error)
