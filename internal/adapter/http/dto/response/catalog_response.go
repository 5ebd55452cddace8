package response

import (
	"clinica_servicos/internal/domain/entities"
	"clinica_servicos/internal/infrastructure/money"
)

type ServiceClassResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProcessResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	BaseCost          float64 `json:"baseCost"`
	BaseCostFormatted string  `json:"baseCostFormatted"`
}

type MaterialResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	BasePrice          float64 `json:"basePrice"`
	BasePriceFormatted string  `json:"basePriceFormatted"`
}

func FromServiceClasses(classes []entities.ServiceClass) []ServiceClassResponse {
	out := make([]ServiceClassResponse, 0, len(classes))
	for _, c := range classes {
		out = append(out, ServiceClassResponse{ID: c.ID, Name: c.Name})
	}
	return out
}

func FromProcesses(processes []entities.Process, f *money.Formatter) []ProcessResponse {
	out := make([]ProcessResponse, 0, len(processes))
	for _, p := range processes {
		out = append(out, ProcessResponse{
			ID:                p.ID,
			Name:              p.Name,
			BaseCost:          p.BaseCost,
			BaseCostFormatted: f.Format(p.BaseCost),
		})
	}
	return out
}

func FromMaterials(materials []entities.Material, f *money.Formatter) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, MaterialResponse{
			ID:                 m.ID,
			Name:               m.Name,
			BasePrice:          m.BasePrice,
			BasePriceFormatted: f.Format(m.BasePrice),
		})
	}
	return out
}
