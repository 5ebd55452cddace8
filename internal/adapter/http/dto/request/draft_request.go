package request

import "strings"

// DraftBeginRequest opens a draft session: blank when ServiceID is empty, a
// working copy of the identified service otherwise.
type DraftBeginRequest struct {
	ServiceID string `json:"serviceId"`
}

func (r DraftBeginRequest) ResolveServiceID() string {
	return strings.TrimSpace(r.ServiceID)
}

// DraftFieldsRequest is a partial update of the draft's form fields. Absent
// fields stay untouched; numeric fields use FlexNumber so cleared inputs and
// unparsable text follow the permissive form-coercion rules. The FlexNumber
// fields are values, not pointers: a pointer field never sees a JSON null, so
// clearing would be indistinguishable from absence.
type DraftFieldsRequest struct {
	Name              *string    `json:"name"`
	Abbreviation      *string    `json:"abbreviation"`
	ServiceClass      *string    `json:"serviceClass"`
	Control           *string    `json:"control"`
	TimeUnit          *string    `json:"timeUnit"`
	Duration          FlexNumber `json:"duration"`
	DurationForecast  FlexNumber `json:"durationForecast"`
	DeliveryDays      FlexNumber `json:"deliveryDays"`
	StandardQuantity  FlexNumber `json:"standardQuantity"`
	RadiationExposure *bool      `json:"radiationExposure"`
	Value             FlexNumber `json:"value"`
}

// LineItemEditorRequest updates the working line item of an active editor.
// The reference field is kind-specific on the wire (processId/cost for
// processes, materialId/price for materials), mirroring the two tabs.
type LineItemEditorRequest struct {
	ProcessID  *string    `json:"processId"`
	MaterialID *string    `json:"materialId"`
	Quantity   FlexNumber `json:"quantity"`
	Cost       FlexNumber `json:"cost"`
	Price      FlexNumber `json:"price"`
}

// ResolveReference picks the reference id for the given kind.
func (r LineItemEditorRequest) ResolveReference(isProcess bool) *string {
	if isProcess {
		return r.ProcessID
	}
	return r.MaterialID
}

// ResolveUnitCost picks the unit cost field for the given kind.
func (r LineItemEditorRequest) ResolveUnitCost(isProcess bool) FlexNumber {
	if isProcess {
		return r.Cost
	}
	return r.Price
}
