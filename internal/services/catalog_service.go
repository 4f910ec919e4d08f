package services

import (
	"fmt"
	"strings"

	"calchub/internal/calculators"
	"calchub/internal/catalog"
	"calchub/pkg/calctypes"
)

// SearchOptions narrows a catalog search.
type SearchOptions struct {
	Category calctypes.Category
	Query    string
}

// SearchResult is the outcome of a catalog search.
type SearchResult struct {
	Calculators []*calctypes.Definition
	Count       int
	Category    calctypes.Category
	Query       string
}

// CatalogService exposes the calculator registry: lookups, search and navigation views.
type CatalogService struct {
	initialized bool
	registry    *calculators.Registry
}

// NewCatalogService creates a catalog over reg, or over the built-in calculators when reg is nil.
func NewCatalogService(reg *calculators.Registry) *CatalogService {
	return &CatalogService{registry: reg}
}

// Name returns the service name for registration and identification.
func (c *CatalogService) Name() string {
	return "catalog"
}

// Initialize loads the built-in calculators if no registry was supplied.
func (c *CatalogService) Initialize() error {
	if c.initialized {
		return nil
	}
	if c.registry == nil {
		c.registry = calculators.Default()
	}
	c.initialized = true
	return nil
}

// All returns every calculator in registry order.
func (c *CatalogService) All() []*calctypes.Definition {
	if !c.initialized {
		return nil
	}
	return c.registry.All()
}

// Get returns the calculator with the exact id.
func (c *CatalogService) Get(id string) (*calctypes.Definition, error) {
	if !c.initialized {
		return nil, fmt.Errorf("catalog service not initialized")
	}
	def, ok := c.registry.Get(id)
	if !ok {
		return nil, fmt.Errorf("calculator '%s' not found", id)
	}
	return def, nil
}

// Resolve finds a calculator by id, by name, or by a unique fragment of either.
func (c *CatalogService) Resolve(ref string) (*calctypes.Definition, error) {
	if !c.initialized {
		return nil, fmt.Errorf("catalog service not initialized")
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("calculator reference cannot be empty")
	}
	if def, ok := c.registry.Get(ref); ok {
		return def, nil
	}

	lower := strings.ToLower(ref)
	var partial []*calctypes.Definition
	for _, def := range c.registry.All() {
		if strings.EqualFold(def.ID, ref) || strings.EqualFold(def.Name, ref) {
			return def, nil
		}
		if strings.Contains(strings.ToLower(def.ID), lower) || strings.Contains(strings.ToLower(def.Name), lower) {
			partial = append(partial, def)
		}
	}

	switch len(partial) {
	case 0:
		return nil, fmt.Errorf("calculator '%s' not found", ref)
	case 1:
		return partial[0], nil
	default:
		ids := make([]string, len(partial))
		for i, def := range partial {
			ids[i] = def.ID
		}
		return nil, fmt.Errorf("calculator '%s' is ambiguous: %s", ref, strings.Join(ids, ", "))
	}
}

// Search filters the catalog by category and free-text query.
func (c *CatalogService) Search(options SearchOptions) (*SearchResult, error) {
	if !c.initialized {
		return nil, fmt.Errorf("catalog service not initialized")
	}
	category := options.Category
	if category == "" {
		category = calctypes.CategoryAll
	}
	matched := catalog.Filter(c.registry.All(), category, options.Query)
	return &SearchResult{
		Calculators: matched,
		Count:       len(matched),
		Category:    category,
		Query:       options.Query,
	}, nil
}

// Essentials returns the calculators pinned on the dashboard.
func (c *CatalogService) Essentials() []*calctypes.Definition {
	if !c.initialized {
		return nil
	}
	return catalog.Essentials(c.registry)
}

// Categories returns the sidebar entries with calculator counts.
func (c *CatalogService) Categories() []catalog.Entry {
	if !c.initialized {
		return nil
	}
	return catalog.Categories(c.registry.All())
}

// IDs returns every calculator id in registry order.
func (c *CatalogService) IDs() []string {
	defs := c.All()
	ids := make([]string, len(defs))
	for i, def := range defs {
		ids[i] = def.ID
	}
	return ids
}
