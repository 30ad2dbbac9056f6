package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/polkiloo/storefront/internal/domain/model"
)

const (
	defaultStoreName      = "Delícias da Gio"
	defaultWhatsappNumber = "5591985760235"
	fallbackCategory      = "Lanches"
)

// Profile describes the store identity and the catalog categories offered.
type Profile struct {
	StoreName      string           `yaml:"store_name"`
	WhatsappNumber string           `yaml:"whatsapp_number"`
	DefaultPayment string           `yaml:"default_payment"`
	Categories     []model.Category `yaml:"categories"`
}

// DefaultProfile returns the built-in store profile.
func DefaultProfile() *Profile {
	return &Profile{
		StoreName:      defaultStoreName,
		WhatsappNumber: defaultWhatsappNumber,
		DefaultPayment: model.DefaultPaymentMethod,
		Categories: []model.Category{
			{Name: "Lanches", Image: "https://images.unsplash.com/photo-1571091718767-18b5b1457add?auto=format&fit=crop&q=80&w=800"},
			{Name: "Bebidas", Image: "https://images.unsplash.com/photo-1544145945-f904253d0c71?auto=format&fit=crop&q=80&w=800"},
			{Name: "Porções", Image: "https://images.unsplash.com/photo-1567620832903-9fc6debc209f?auto=format&fit=crop&q=80&w=800"},
			{Name: "Combos", Image: "https://images.unsplash.com/photo-1513104890138-7c749659a591?auto=format&fit=crop&q=80&w=800"},
			{Name: "Sobremesas", Image: "https://images.unsplash.com/photo-1563805042-7684c019e1cb?auto=format&fit=crop&q=80&w=800"},
		},
	}
}

// LoadProfile reads a YAML store profile, filling gaps from the built-in one.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read store file %s: %w", path, err)
	}

	return ParseProfile(data)
}

// ParseProfile parses YAML profile data.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	applyProfileDefaults(&p)
	return &p, nil
}

func applyProfileDefaults(p *Profile) {
	def := DefaultProfile()
	if p.StoreName == "" {
		p.StoreName = def.StoreName
	}
	if p.WhatsappNumber == "" {
		p.WhatsappNumber = def.WhatsappNumber
	}
	if p.DefaultPayment == "" {
		p.DefaultPayment = def.DefaultPayment
	}
	if len(p.Categories) == 0 {
		p.Categories = def.Categories
	}
}

// DefaultCategory is the category assigned when none is given.
func (p *Profile) DefaultCategory() string {
	if p.HasCategory(fallbackCategory) || len(p.Categories) == 0 {
		return fallbackCategory
	}
	return p.Categories[0].Name
}

// HasCategory reports whether name is one of the configured categories.
func (p *Profile) HasCategory(name string) bool {
	for _, c := range p.Categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// PlaceholderFor returns the curated image of category, or of the default category.
func (p *Profile) PlaceholderFor(category string) string {
	var fallback string
	for _, c := range p.Categories {
		if c.Name == category {
			return c.Image
		}
		if c.Name == p.DefaultCategory() {
			fallback = c.Image
		}
	}
	return fallback
}

// StoreDefaults is the store row created when none is persisted.
func (p *Profile) StoreDefaults() model.StoreConfig {
	return model.StoreConfig{StoreName: p.StoreName, WhatsappNumber: p.WhatsappNumber, IsOpen: true}
}
