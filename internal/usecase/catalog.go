package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/polkiloo/storefront/internal/config"
	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// AllCategories selects every category in catalog filters.
const AllCategories = "Todos"

// CatalogUseCase owns the in-memory product list.
type CatalogUseCase struct {
	products repository.ProductRepository
	profile  *config.Profile
	newID    func() string

	mu    sync.RWMutex
	items []model.Product
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, profile *config.Profile) *CatalogUseCase {
	return &CatalogUseCase{products: products, profile: profile, newID: uuid.NewString}
}

// Load replaces the in-memory list with persisted products.
func (u *CatalogUseCase) Load(ctx context.Context) error {
	items, err := u.products.List(ctx)
	if err != nil {
		return err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	u.mu.Lock()
	u.items = items
	u.mu.Unlock()
	return nil
}

// List returns all products, newest first.
func (u *CatalogUseCase) List() []model.Product {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]model.Product, len(u.items))
	copy(out, u.items)
	return out
}

// Filter returns products of category whose name contains query, with placeholder images filled in.
func (u *CatalogUseCase) Filter(category, query string) []model.Product {
	category = strings.TrimSpace(category)
	query = strings.ToLower(strings.TrimSpace(query))

	var out []model.Product
	for _, p := range u.List() {
		if category != "" && category != AllCategories && p.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if p.ImageURL == "" {
			p.ImageURL = u.profile.PlaceholderFor(p.Category)
		}
		out = append(out, p)
	}
	return out
}

// Get returns the product with id.
func (u *CatalogUseCase) Get(id string) (model.Product, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, p := range u.items {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// Categories returns the configured categories.
func (u *CatalogUseCase) Categories() []model.Category {
	out := make([]model.Category, len(u.profile.Categories))
	copy(out, u.profile.Categories)
	return out
}

// Create validates and persists a new product, then prepends it.
func (u *CatalogUseCase) Create(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	in, err := u.validate(in)
	if err != nil {
		return nil, err
	}

	saved, err := u.products.Create(ctx, fromInput(u.newID(), in))
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	u.items = append([]model.Product{*saved}, u.items...)
	u.mu.Unlock()
	return saved, nil
}

// Update validates and persists new fields for product id, then replaces it in memory.
func (u *CatalogUseCase) Update(ctx context.Context, id string, in model.ProductInput) (*model.Product, error) {
	in, err := u.validate(in)
	if err != nil {
		return nil, err
	}

	saved, err := u.products.Update(ctx, fromInput(id, in))
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	for i := range u.items {
		if u.items[i].ID == id {
			u.items[i] = *saved
			return saved, nil
		}
	}
	u.items = append([]model.Product{*saved}, u.items...)
	return saved, nil
}

// Delete removes product id from storage and memory.
func (u *CatalogUseCase) Delete(ctx context.Context, id string) error {
	if err := u.products.Delete(ctx, id); err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	for i := range u.items {
		if u.items[i].ID == id {
			u.items = append(u.items[:i], u.items[i+1:]...)
			break
		}
	}
	return nil
}

func (u *CatalogUseCase) validate(in model.ProductInput) (model.ProductInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.SKU = strings.TrimSpace(in.SKU)
	in.ImageURL = strings.TrimSpace(in.ImageURL)

	switch {
	case in.Name == "":
		return in, fmt.Errorf("%w: name is required", domainErrors.ErrInvalidProduct)
	case in.SellPrice < 0:
		return in, fmt.Errorf("%w: sell price must not be negative", domainErrors.ErrInvalidProduct)
	case in.CostPrice < 0:
		return in, fmt.Errorf("%w: cost price must not be negative", domainErrors.ErrInvalidProduct)
	case in.Stock < 0:
		return in, fmt.Errorf("%w: stock must not be negative", domainErrors.ErrInvalidProduct)
	}

	if in.Category == "" {
		in.Category = u.profile.DefaultCategory()
	}
	if !u.profile.HasCategory(in.Category) {
		return in, fmt.Errorf("%w: unknown category %q", domainErrors.ErrInvalidProduct, in.Category)
	}
	return in, nil
}

func fromInput(id string, in model.ProductInput) model.Product {
	return model.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		CostPrice:   in.CostPrice,
		SellPrice:   in.SellPrice,
		Stock:       in.Stock,
		SKU:         in.SKU,
		ImageURL:    in.ImageURL,
	}
}
