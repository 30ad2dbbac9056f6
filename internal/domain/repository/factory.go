package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Admins() AdminRepository
	Products() ProductRepository
	Orders() OrderRepository
	StoreConfig() StoreConfigRepository
}
