// Package types defines the core value types used across farmgate.
package types

import (
	"strings"

	"github.com/fieldworks/farmgate/pkg/errors"
)

// Article is a supply article known to the store. Identity is the name:
// the store never holds two articles with the same name.
type Article struct {
	Name string `json:"name"`
}

// Farmer is a supplier known to the store. Identity is the name.
type Farmer struct {
	Name string `json:"name"`
}

// Schedule records a delivery slot for an article. Schedules are append-only
// and duplicate (article, date) pairs are allowed.
type Schedule struct {
	Article *Article `json:"article"`
	Date    string   `json:"date"`
}

// InventoryItem tracks the stocked quantity for a single article.
// Quantity may go negative; no floor is enforced.
type InventoryItem struct {
	Article  *Article `json:"article"`
	Quantity int      `json:"quantity"`
}

// Add adjusts the quantity by delta, which may be negative.
func (i *InventoryItem) Add(delta int) {
	i.Quantity += delta
}

// Request is the immutable intake input: one article from one farmer on one
// date, in some quantity.
type Request struct {
	Article  string `koanf:"article" json:"article" toml:"article" yaml:"article"`
	Farmer   string `koanf:"farmer" json:"farmer" toml:"farmer" yaml:"farmer"`
	Date     string `koanf:"date" json:"date" toml:"date" yaml:"date"`
	Quantity int    `koanf:"quantity" json:"quantity" toml:"quantity" yaml:"quantity"`
}

// Validate rejects requests with blank fields. Quantity is intentionally
// unconstrained.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Article) == "" {
		return errors.New(errors.ErrInvalidInput, "request article must not be blank")
	}
	if strings.TrimSpace(r.Farmer) == "" {
		return errors.New(errors.ErrInvalidInput, "request farmer must not be blank")
	}
	if strings.TrimSpace(r.Date) == "" {
		return errors.New(errors.ErrInvalidInput, "request date must not be blank")
	}
	return nil
}
