package catalog

// Item data model shared by the client, the console views, and the emulator

import (
	"fmt"
	"strings"
)

// Item is a catalog entry as returned by the item-catalog service.
// The id is assigned by the service and never generated client-side.
type Item struct {
	ID          int64   `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Quantity    int     `json:"quantity" yaml:"quantity"`
	Price       float64 `json:"price" yaml:"price"`
}

// ItemInput is the payload for create and update calls.
type ItemInput struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Quantity    int     `json:"quantity" yaml:"quantity"`
	Price       float64 `json:"price" yaml:"price"`
}

// Validate checks the basic shape constraints the service enforces.
// The service remains the final authority (uniqueness and the like).
func (in ItemInput) Validate() error {
	var errs []string
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, "name: must not be blank")
	}
	if in.Quantity < 0 {
		errs = append(errs, "quantity: must be greater than or equal to 0")
	}
	if in.Price < 0 {
		errs = append(errs, "price: must be greater than or equal to 0")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// ListFilter narrows and orders a List call. Nil bounds and empty
// strings are omitted from the outbound query entirely.
type ListFilter struct {
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
	Order    string
}

// Float64Ptr is a convenience for building ListFilter values.
func Float64Ptr(v float64) *float64 { return &v }
