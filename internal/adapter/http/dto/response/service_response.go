package response

import (
	"fmt"
	"time"

	"clinica_servicos/internal/domain/entities"
	"clinica_servicos/internal/infrastructure/money"
)

const radiationNotice = "Atenção: Serviço com exposição à radiação. Regras de segurança serão aplicadas durante agendamento e execução."

// ServiceProcessResponse and ServiceMaterialResponse keep the kind-specific
// wire field names of the original records (processId/cost, materialId/price)
// even though both are backed by the same line-item shape internally.

type ServiceProcessResponse struct {
	ID          string  `json:"id"`
	ProcessID   string  `json:"processId"`
	ProcessName string  `json:"processName"`
	Quantity    float64 `json:"quantity"`
	Cost        float64 `json:"cost"`
	TotalCost   float64 `json:"totalCost"`
}

type ServiceMaterialResponse struct {
	ID           string  `json:"id"`
	MaterialID   string  `json:"materialId"`
	MaterialName string  `json:"materialName"`
	Quantity     float64 `json:"quantity"`
	Price        float64 `json:"price"`
	TotalCost    float64 `json:"totalCost"`
}

type ServiceResponse struct {
	ID                 string                    `json:"id"`
	Name               string                    `json:"name"`
	Abbreviation       string                    `json:"abbreviation,omitempty"`
	ServiceClass       string                    `json:"serviceClass"`
	Control            string                    `json:"control,omitempty"`
	TimeUnit           string                    `json:"timeUnit"`
	Duration           *float64                  `json:"duration,omitempty"`
	DurationForecast   *float64                  `json:"durationForecast,omitempty"`
	DeliveryDays       *int                      `json:"deliveryDays"`
	StandardQuantity   *float64                  `json:"standardQuantity,omitempty"`
	RadiationExposure  bool                      `json:"radiationExposure"`
	Value              *float64                  `json:"value,omitempty"`
	ValueFormatted     string                    `json:"valueFormatted"`
	Processes          []ServiceProcessResponse  `json:"processes"`
	Materials          []ServiceMaterialResponse `json:"materials"`
	ProcessCost        float64                   `json:"processCost"`
	MaterialCost       float64                   `json:"materialCost"`
	TotalCost          float64                   `json:"totalCost"`
	TotalCostFormatted string                    `json:"totalCostFormatted"`
	CostWarning        string                    `json:"costWarning,omitempty"`
	RadiationNotice    string                    `json:"radiationNotice,omitempty"`
	CreatedAt          time.Time                 `json:"createdAt"`
	CreatedBy          string                    `json:"createdBy"`
}

func FromService(s entities.Service, f *money.Formatter) ServiceResponse {
	res := ServiceResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Abbreviation:       s.Abbreviation,
		ServiceClass:       s.ServiceClass,
		Control:            s.Control,
		TimeUnit:           string(s.TimeUnit),
		Duration:           s.Duration,
		DurationForecast:   s.DurationForecast,
		DeliveryDays:       s.DeliveryDays,
		StandardQuantity:   s.StandardQuantity,
		RadiationExposure:  s.RadiationExposure,
		Value:              s.Value,
		ValueFormatted:     f.FormatOrDash(s.Value),
		Processes:          make([]ServiceProcessResponse, 0, len(s.Processes)),
		Materials:          make([]ServiceMaterialResponse, 0, len(s.Materials)),
		ProcessCost:        s.ProcessCost,
		MaterialCost:       s.MaterialCost,
		TotalCost:          s.TotalCost,
		TotalCostFormatted: f.Format(s.TotalCost),
		CreatedAt:          s.CreatedAt,
		CreatedBy:          s.CreatedBy,
	}

	for _, p := range s.Processes {
		res.Processes = append(res.Processes, ServiceProcessResponse{
			ID:          p.ID,
			ProcessID:   p.ReferenceID,
			ProcessName: p.ReferenceName,
			Quantity:    p.Quantity,
			Cost:        p.UnitCost,
			TotalCost:   p.TotalCost,
		})
	}
	for _, m := range s.Materials {
		res.Materials = append(res.Materials, ServiceMaterialResponse{
			ID:           m.ID,
			MaterialID:   m.ReferenceID,
			MaterialName: m.ReferenceName,
			Quantity:     m.Quantity,
			Price:        m.UnitCost,
			TotalCost:    m.TotalCost,
		})
	}

	if s.CostExceedsValue() {
		res.CostWarning = fmt.Sprintf(
			"O custo total (%s) é maior que o valor do serviço (%s). Revise os valores.",
			f.Format(s.TotalCost), f.FormatOrZero(s.Value))
	}
	if s.RadiationExposure {
		res.RadiationNotice = radiationNotice
	}

	return res
}

type ServiceListResponse struct {
	Items []ServiceResponse `json:"items"`
	Count int               `json:"count"`
}

func FromServices(services []entities.Service, f *money.Formatter) ServiceListResponse {
	items := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		items = append(items, FromService(s, f))
	}
	return ServiceListResponse{Items: items, Count: len(items)}
}

type SummaryResponse struct {
	Count                 int     `json:"count"`
	AverageValue          float64 `json:"averageValue"`
	AverageValueFormatted string  `json:"averageValueFormatted"`
	RadiationCount        int     `json:"radiationCount"`
}

type ClassOptionsResponse struct {
	Classes []string `json:"classes"`
}
