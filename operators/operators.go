// Package operators assembles the built-in operator catalog.
package operators

import (
	"fmt"

	"github.com/autograph-dev/autograph/catalog"
	"github.com/autograph-dev/autograph/operators/arrayops"
	"github.com/autograph-dev/autograph/operators/control"
	"github.com/autograph-dev/autograph/operators/convert"
	"github.com/autograph-dev/autograph/operators/fileops"
	"github.com/autograph-dev/autograph/operators/httpops"
	"github.com/autograph-dev/autograph/operators/jsonops"
	"github.com/autograph-dev/autograph/operators/mathops"
	"github.com/autograph-dev/autograph/operators/objectops"
	"github.com/autograph-dev/autograph/operators/stringops"
	"github.com/autograph-dev/autograph/operators/system"
	"github.com/autograph-dev/autograph/operators/tensor"
)

// coreModules is the definitive list of operator modules compiled into the
// built-in catalog.
var coreModules = []catalog.Module{
	&control.Module{},
	&httpops.Module{},
	&jsonops.Module{},
	&stringops.Module{},
	&arrayops.Module{},
	&objectops.Module{},
	&fileops.Module{},
	&mathops.Module{},
	&convert.Module{},
	&tensor.Module{},
	&system.Module{},
}

// NewCatalog builds a catalog containing every built-in operator and
// verifies that each manifest entry has a matching generator.
func NewCatalog() (*catalog.Catalog, error) {
	c := catalog.New()
	for _, m := range coreModules {
		if err := m.Register(c); err != nil {
			return nil, fmt.Errorf("registering operator module: %w", err)
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewCatalog is NewCatalog for callers that treat a broken built-in
// catalog as a programming error.
func MustNewCatalog() *catalog.Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}
	return c
}
