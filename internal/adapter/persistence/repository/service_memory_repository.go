package repository

import (
	"context"
	"errors"
	"sync"

	"clinica_servicos/internal/domain/entities"
	"clinica_servicos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrDuplicateServiceID = errors.New("service id already exists")

// ServiceMemoryRepository holds the service collection in memory for the
// process lifetime. There is no persistence behind it: the collection is
// seeded at startup from the fixed sample set and every mutation lives only
// until shutdown.
//
// Ordering contract: creations append at the end, updates keep the entry in
// place, deletes close the gap.

type ServiceMemoryRepository struct {
	mu       sync.RWMutex
	services []entities.Service
	logger   *zap.Logger
}

var _ interfaces.IServiceRepository = (*ServiceMemoryRepository)(nil)

func NewServiceMemoryRepository(logger *zap.Logger) *ServiceMemoryRepository {
	return &ServiceMemoryRepository{logger: logger}
}

// Seed replaces the collection contents. Meant for startup and tests.
func (r *ServiceMemoryRepository) Seed(services []entities.Service) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services = make([]entities.Service, 0, len(services))
	for _, s := range services {
		r.services = append(r.services, s.Clone())
	}
}

// List returns a deep copy of the collection so that callers can never reach
// the stored records through aliasing.
func (r *ServiceMemoryRepository) List(ctx context.Context) ([]entities.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s.Clone())
	}
	return out, nil
}

// GetByID returns the zero Service when the id is not present; callers test
// the ID field.
func (r *ServiceMemoryRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.services {
		if s.ID == id {
			return s.Clone(), nil
		}
	}
	return entities.Service{}, nil
}

func (r *ServiceMemoryRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.services {
		if existing.ID == s.ID {
			return entities.Service{}, ErrDuplicateServiceID
		}
	}
	r.services = append(r.services, s.Clone())
	return s, nil
}

// Update replaces the entry matching s.ID in place. A missing id indicates a
// stale caller; it is logged and reported as the zero Service, never turned
// into an insert.
func (r *ServiceMemoryRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.services {
		if r.services[i].ID == s.ID {
			r.services[i] = s.Clone()
			return s, nil
		}
	}
	r.logger.Warn("update on missing service id", zap.String("service_id", s.ID))
	return entities.Service{}, nil
}

// Delete removes the entry matching id. Idempotent: a missing id leaves the
// collection unchanged.
func (r *ServiceMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.services {
		if r.services[i].ID == id {
			r.services = append(r.services[:i], r.services[i+1:]...)
			return nil
		}
	}
	return nil
}
