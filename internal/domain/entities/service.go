package entities

import "time"

// TimeUnit is the unit the service duration fields are expressed in.
//
// The wire values are the Portuguese labels used across the catalog
// ("Minutos", "Horas", "Dias").

type TimeUnit string

const (
	TimeUnitMinutos TimeUnit = "Minutos"
	TimeUnitHoras   TimeUnit = "Horas"
	TimeUnitDias    TimeUnit = "Dias"
)

// Valid reports whether the unit is one of the three accepted values.
func (u TimeUnit) Valid() bool {
	switch u {
	case TimeUnitMinutos, TimeUnitHoras, TimeUnitDias:
		return true
	}
	return false
}

// LineItem is one process or material applied to a service: a catalog
// reference with the quantity and unit cost captured at save time.
//
// TotalCost is fixed when the item is saved (quantity * unit cost); it is not
// re-derived afterwards except on an explicit re-save of the item.
type LineItem struct {
	ID            string  `json:"id"`
	ReferenceID   string  `json:"referenceId"`
	ReferenceName string  `json:"referenceName"`
	Quantity      float64 `json:"quantity"`
	UnitCost      float64 `json:"unitCost"`
	TotalCost     float64 `json:"totalCost"`
}

// Service is the top-level catalog record.
//
// Domain notes:
//   - ProcessCost, MaterialCost and TotalCost are derived from the two
//     line-item collections and are never set directly; call
//     RecalculateCosts after any mutation to Processes or Materials.
//   - Optional numeric fields use pointers: nil means the operator left the
//     field blank, which is distinct from an explicit zero.
//   - CreatedAt/CreatedBy are set once at creation and never change on edit.
type Service struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Abbreviation      string     `json:"abbreviation,omitempty"`
	ServiceClass      string     `json:"serviceClass"`
	Control           string     `json:"control,omitempty"`
	TimeUnit          TimeUnit   `json:"timeUnit"`
	Duration          *float64   `json:"duration,omitempty"`
	DurationForecast  *float64   `json:"durationForecast,omitempty"`
	DeliveryDays      *int       `json:"deliveryDays"`
	StandardQuantity  *float64   `json:"standardQuantity,omitempty"`
	RadiationExposure bool       `json:"radiationExposure"`
	Value             *float64   `json:"value,omitempty"`
	Processes         []LineItem `json:"processes"`
	Materials         []LineItem `json:"materials"`
	ProcessCost       float64    `json:"processCost"`
	MaterialCost      float64    `json:"materialCost"`
	TotalCost         float64    `json:"totalCost"`
	CreatedAt         time.Time  `json:"createdAt"`
	CreatedBy         string     `json:"createdBy"`
}

// NewDraft returns a blank service draft with the form defaults: time unit in
// minutes, delivery in zero days, standard quantity one, empty collections.
func NewDraft() Service {
	deliveryDays := 0
	standardQuantity := 1.0
	return Service{
		TimeUnit:         TimeUnitMinutos,
		DeliveryDays:     &deliveryDays,
		StandardQuantity: &standardQuantity,
		Processes:        []LineItem{},
		Materials:        []LineItem{},
	}
}

// RecalculateCosts rederives the three cost fields from the line-item
// collections. Must be invoked right after every committed add/edit/delete on
// either collection; nothing reads the cost fields between mutation and
// recalculation.
func (s *Service) RecalculateCosts() {
	s.ProcessCost = sumTotals(s.Processes)
	s.MaterialCost = sumTotals(s.Materials)
	s.TotalCost = s.ProcessCost + s.MaterialCost
}

func sumTotals(items []LineItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.TotalCost
	}
	return total
}

// Clone returns a deep copy. Drafts operate on clones so that edits never
// leak into the persisted record before submit.
func (s Service) Clone() Service {
	out := s
	out.Duration = clonePtr(s.Duration)
	out.DurationForecast = clonePtr(s.DurationForecast)
	out.DeliveryDays = clonePtr(s.DeliveryDays)
	out.StandardQuantity = clonePtr(s.StandardQuantity)
	out.Value = clonePtr(s.Value)
	out.Processes = append([]LineItem{}, s.Processes...)
	out.Materials = append([]LineItem{}, s.Materials...)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// CostExceedsValue reports the advisory condition of internal cost above the
// charged value. Advisory only: it never blocks a submit.
func (s Service) CostExceedsValue() bool {
	return s.Value != nil && s.TotalCost > *s.Value
}
