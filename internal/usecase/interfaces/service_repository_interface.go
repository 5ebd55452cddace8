package interfaces

import (
	"clinica_servicos/internal/domain/entities"
	"context"
)

// IServiceRepository abstracts the in-memory service collection.
//
// The collection is the only long-lived shared state in the system and these
// five operations are its only writers. Contract:
//   - Create appends; the record id must be unique.
//   - Update replaces the entry matching the record id and returns the zero
//     Service when no entry matches (callers surface that as a stale-id bug,
//     it is never an insert).
//   - Delete is idempotent.
//   - Creations append at the end; updates preserve position.

type IServiceRepository interface {
	List(ctx context.Context) ([]entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}
