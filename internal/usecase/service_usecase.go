package usecase

import (
	"context"
	"errors"
	"strings"

	"clinica_servicos/internal/domain/entities"
	"clinica_servicos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrInvalidServiceID = errors.New("invalid service id")
)

// ClassFilterAll is the sentinel class filter matching every service.
const ClassFilterAll = "all"

// ServiceSummary aggregates the listing statistics: total count, arithmetic
// mean of the charged value (absent values count as zero) and the number of
// radiation-flagged services.
type ServiceSummary struct {
	Count          int
	AverageValue   float64
	RadiationCount int
}

// IServiceUseCase exposes the read/delete side of the service collection:
// filtered listing, summary statistics, the class filter options and lookup
// and removal by id. All creation and editing goes through IDraftUseCase.

type IServiceUseCase interface {
	List(ctx context.Context, searchTerm, classFilter string) ([]entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	Delete(ctx context.Context, id string) error
	Summarize(ctx context.Context) (ServiceSummary, error)
	DistinctClasses(ctx context.Context) ([]string, error)
}

type ServiceUseCase struct {
	repo   interfaces.IServiceRepository
	logger *zap.Logger
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository, logger *zap.Logger) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, logger: logger}
}

// List returns the services matching the search term and class filter, in
// collection order. The term matches case-insensitively against name,
// abbreviation and class; an empty term matches everything, as does the "all"
// class sentinel (or an empty class filter).
func (u *ServiceUseCase) List(ctx context.Context, searchTerm, classFilter string) ([]entities.Service, error) {
	services, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterServices(services, searchTerm, classFilter), nil
}

// FilterServices applies the search/class predicate preserving input order.
func FilterServices(services []entities.Service, searchTerm, classFilter string) []entities.Service {
	term := strings.ToLower(searchTerm)
	out := make([]entities.Service, 0, len(services))
	for _, s := range services {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(s.Name), term) ||
			strings.Contains(strings.ToLower(s.Abbreviation), term) ||
			strings.Contains(strings.ToLower(s.ServiceClass), term)

		matchesClass := classFilter == "" || classFilter == ClassFilterAll || s.ServiceClass == classFilter

		if matchesSearch && matchesClass {
			out = append(out, s)
		}
	}
	return out
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

// Delete removes a service by id. Deleting an id that is not present is a
// no-op, not an error.
func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}
	return u.repo.Delete(ctx, id)
}

// Summarize computes the listing statistics over the whole collection. With
// zero services the average is reported as zero, never NaN.
func (u *ServiceUseCase) Summarize(ctx context.Context) (ServiceSummary, error) {
	services, err := u.repo.List(ctx)
	if err != nil {
		return ServiceSummary{}, err
	}

	summary := ServiceSummary{Count: len(services)}
	if len(services) == 0 {
		return summary, nil
	}

	total := 0.0
	for _, s := range services {
		if s.Value != nil {
			total += *s.Value
		}
		if s.RadiationExposure {
			summary.RadiationCount++
		}
	}
	summary.AverageValue = total / float64(len(services))
	return summary, nil
}

// DistinctClasses returns the class filter options: the "all" sentinel first,
// then each distinct class in order of first occurrence.
func (u *ServiceUseCase) DistinctClasses(ctx context.Context) ([]string, error) {
	services, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	classes := []string{ClassFilterAll}
	seen := map[string]bool{}
	for _, s := range services {
		if !seen[s.ServiceClass] {
			seen[s.ServiceClass] = true
			classes = append(classes, s.ServiceClass)
		}
	}
	return classes, nil
}
