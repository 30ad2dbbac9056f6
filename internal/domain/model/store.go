package model

// StoreConfig is the singleton storefront configuration.
type StoreConfig struct {
	StoreName      string
	WhatsappNumber string
	IsOpen         bool
}

// Category is a catalog section with its placeholder image.
type Category struct {
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
}
