package model

import (
	"strings"

	"github.com/teris-io/shortid"
	"golang.org/x/exp/rand"
)

type ProductID string

func (i ProductID) String() string {
	return string(i)
}

type UUID string

func (i UUID) String() string {
	return string(i)
}

// validID reports whether id can be used as one segment of an edit path and of a URL.
func validID(id string) bool {
	return id != "" && !strings.ContainsAny(id, "./?# \t\n")
}

func NewUUID(t string) UUID {
	return UUID(shortid.MustGenerate() + t)
}

func init() {
	sid := shortid.MustNew(0, "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_-", rand.Uint64())
	shortid.SetDefault(sid)
}
