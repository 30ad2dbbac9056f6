package dto

// StoreResponse describes the public store configuration.
type StoreResponse struct {
	StoreName      string `json:"storeName"`
	WhatsappNumber string `json:"whatsappNumber"`
	IsOpen         bool   `json:"isStoreOpen"`
}

// StoreStatusRequest opens or closes the store.
type StoreStatusRequest struct {
	IsOpen *bool `json:"isStoreOpen"`
}

// CategoryResponse is a catalog category with its placeholder image.
type CategoryResponse struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}
