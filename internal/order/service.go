package order

import (
	"context"
	"fmt"
	"log/slog"
)

// Store is the durable order store.
type Store interface {
	Save(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
	ListByStatus(ctx context.Context, status Status) ([]*Order, error)
}

// Source is the external order API the sync job polls.
type Source interface {
	FetchPending(ctx context.Context) ([]*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

// Cache is the key-existence store guaranteeing at-most-once persistence of
// an order id across sync passes.
type Cache interface {
	Put(key string, value any) error
	PutIfAbsent(key string, value any) (bool, error)
	Contains(key string) bool
	Remove(key string)
	Clear()
}

// Service carries the order operations exposed to transports: validated
// creation and store passthroughs.
type Service struct {
	store Store
	log   *slog.Logger
}

func NewService(store Store, log *slog.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
	}
}

// Create validates the order and persists it. Validation failures surface as
// *ValidationError before the store is touched.
func (s *Service) Create(ctx context.Context, o *Order) error {
	if err := Validate(o); err != nil {
		return err
	}

	if err := s.store.Save(ctx, o); err != nil {
		return fmt.Errorf("saving order %s: %w", o.ID, err)
	}

	s.log.Info("order created", slog.String("order_id", o.ID))

	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Service) ListByStatus(ctx context.Context, status Status) ([]*Order, error) {
	return s.store.ListByStatus(ctx, status)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) error {
	return s.store.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
