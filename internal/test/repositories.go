package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

// AdminRepositoryStub stores admins in-memory for tests.
type AdminRepositoryStub struct {
	Admins map[string]*model.Admin
	ByID   map[int64]*model.Admin
	Next   int64
	Err    error
}

// NewAdminRepositoryStub constructs stub repository with initialized maps.
func NewAdminRepositoryStub() *AdminRepositoryStub {
	return &AdminRepositoryStub{
		Admins: make(map[string]*model.Admin),
		ByID:   make(map[int64]*model.Admin),
		Next:   1,
	}
}

// Create registers admin unless already exists or stub has explicit error.
func (s *AdminRepositoryStub) Create(ctx context.Context, email, passwordHash string, confirmed bool) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Admins == nil {
		s.Admins = make(map[string]*model.Admin)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.Admin)
	}
	if _, exists := s.Admins[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	admin := &model.Admin{ID: s.Next, Email: email, PasswordHash: passwordHash, Confirmed: confirmed}
	s.Next++
	s.Admins[email] = admin
	s.ByID[admin.ID] = admin
	return admin, nil
}

// GetByEmail fetches admin by email or returns not found.
func (s *AdminRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if admin, ok := s.Admins[email]; ok {
		return admin, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches admin by identifier or returns not found.
func (s *AdminRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if admin, ok := s.ByID[id]; ok {
		return admin, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub keeps catalog rows in a slice.
type ProductRepositoryStub struct {
	Products  []model.Product
	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error
	Writes    int
}

// List returns configured products.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return append([]model.Product(nil), s.Products...), nil
}

// Create stores product unless configured to fail.
func (s *ProductRepositoryStub) Create(ctx context.Context, p model.Product) (*model.Product, error) {
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	s.Writes++
	s.Products = append(s.Products, p)
	return &p, nil
}

// Update replaces stored product by id.
func (s *ProductRepositoryStub) Update(ctx context.Context, p model.Product) (*model.Product, error) {
	if s.UpdateErr != nil {
		return nil, s.UpdateErr
	}
	for i := range s.Products {
		if s.Products[i].ID == p.ID {
			p.CreatedAt = s.Products[i].CreatedAt
			s.Products[i] = p
			s.Writes++
			return &p, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes stored product by id.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	for i := range s.Products {
		if s.Products[i].ID == id {
			s.Products = append(s.Products[:i], s.Products[i+1:]...)
			s.Writes++
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// StatusUpdateCall records a status write.
type StatusUpdateCall struct {
	Key     string
	ByToken bool
	Status  model.OrderStatus
}

// OrderRepositoryStub keeps orders in a slice and records writes.
type OrderRepositoryStub struct {
	Orders      []model.Order
	ListErr     error
	CreateFn    func(context.Context, model.Order) error
	UpdateErr   error
	LookupErr   error
	Created     []model.Order
	UpdateCalls []StatusUpdateCall
}

// Create stores order unless override fails.
func (s *OrderRepositoryStub) Create(ctx context.Context, o model.Order) error {
	if s.CreateFn != nil {
		if err := s.CreateFn(ctx, o); err != nil {
			return err
		}
	}
	s.Created = append(s.Created, o)
	s.Orders = append(s.Orders, o)
	return nil
}

// List returns configured orders.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return append([]model.Order(nil), s.Orders...), nil
}

// GetByID finds stored order by id.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	return s.find(func(o model.Order) bool { return o.ID == id })
}

// GetByConfirmationToken finds stored order by token.
func (s *OrderRepositoryStub) GetByConfirmationToken(ctx context.Context, token string) (*model.Order, error) {
	return s.find(func(o model.Order) bool { return o.ConfirmationToken != "" && o.ConfirmationToken == token })
}

func (s *OrderRepositoryStub) find(match func(model.Order) bool) (*model.Order, error) {
	if s.LookupErr != nil {
		return nil, s.LookupErr
	}
	for _, o := range s.Orders {
		if match(o) {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateStatus records the write and patches the stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	return s.update(StatusUpdateCall{Key: id, Status: status}, func(o model.Order) bool { return o.ID == id })
}

// UpdateStatusByToken records the write and patches the stored order.
func (s *OrderRepositoryStub) UpdateStatusByToken(ctx context.Context, token string, status model.OrderStatus) error {
	return s.update(StatusUpdateCall{Key: token, ByToken: true, Status: status}, func(o model.Order) bool { return o.ConfirmationToken == token })
}

func (s *OrderRepositoryStub) update(call StatusUpdateCall, match func(model.Order) bool) error {
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	for i := range s.Orders {
		if match(s.Orders[i]) {
			s.UpdateCalls = append(s.UpdateCalls, call)
			s.Orders[i].Status = call.Status
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// StoreConfigRepositoryStub holds the singleton store row.
type StoreConfigRepositoryStub struct {
	Config     *model.StoreConfig
	GetErr     error
	SaveErr    error
	SetOpenErr error
	Saved      []model.StoreConfig
}

// Get returns the stored row or not found.
func (s *StoreConfigRepositoryStub) Get(ctx context.Context) (*model.StoreConfig, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	if s.Config == nil {
		return nil, domainErrors.ErrNotFound
	}
	cfg := *s.Config
	return &cfg, nil
}

// Save upserts the row.
func (s *StoreConfigRepositoryStub) Save(ctx context.Context, cfg model.StoreConfig) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Saved = append(s.Saved, cfg)
	s.Config = &cfg
	return nil
}

// SetOpen patches the open flag of an existing row.
func (s *StoreConfigRepositoryStub) SetOpen(ctx context.Context, open bool) error {
	if s.SetOpenErr != nil {
		return s.SetOpenErr
	}
	if s.Config == nil {
		return domainErrors.ErrNotFound
	}
	s.Config.IsOpen = open
	return nil
}

// ChangeSourceStub replays configured changes, then blocks until cancelled or returns ListenErr.
type ChangeSourceStub struct {
	Changes   []model.OrderChange
	ListenErr error
	ListenFn  func(context.Context, func(model.OrderChange)) error

	mu    sync.Mutex
	calls int
}

// Listen replays changes to handle.
func (s *ChangeSourceStub) Listen(ctx context.Context, handle func(model.OrderChange)) error {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.ListenFn != nil {
		return s.ListenFn(ctx, handle)
	}
	for _, c := range s.Changes {
		handle(c)
	}
	if s.ListenErr != nil {
		return s.ListenErr
	}
	<-ctx.Done()
	return ctx.Err()
}

// Calls returns the number of Listen invocations.
func (s *ChangeSourceStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
