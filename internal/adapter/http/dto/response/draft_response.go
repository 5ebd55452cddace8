package response

import (
	"clinica_servicos/internal/domain/entities"
	"clinica_servicos/internal/infrastructure/money"
	"clinica_servicos/internal/usecase"
)

// LineItemEditorResponse is the state of one add/edit editor, including the
// running total of the working draft and whether save is currently allowed.
type LineItemEditorResponse struct {
	Active             bool    `json:"active"`
	Mode               string  `json:"mode"`
	EditingID          string  `json:"editingId,omitempty"`
	ReferenceID        string  `json:"referenceId"`
	Quantity           float64 `json:"quantity"`
	UnitCost           float64 `json:"unitCost"`
	TotalCost          float64 `json:"totalCost"`
	TotalCostFormatted string  `json:"totalCostFormatted"`
	CanSave            bool    `json:"canSave"`
}

type DraftResponse struct {
	DraftID        string                 `json:"draftId"`
	Editing        bool                   `json:"editing"`
	Service        ServiceResponse        `json:"service"`
	ProcessEditor  LineItemEditorResponse `json:"processEditor"`
	MaterialEditor LineItemEditorResponse `json:"materialEditor"`
}

func FromDraftState(st usecase.DraftState, f *money.Formatter) DraftResponse {
	return DraftResponse{
		DraftID:        st.DraftID,
		Editing:        st.Editing,
		Service:        FromService(st.Service, f),
		ProcessEditor:  fromEditorState(st.ProcessEditor, f),
		MaterialEditor: fromEditorState(st.MaterialEditor, f),
	}
}

func fromEditorState(e usecase.EditorState, f *money.Formatter) LineItemEditorResponse {
	return LineItemEditorResponse{
		Active:             e.Active,
		Mode:               e.Mode,
		EditingID:          e.EditingID,
		ReferenceID:        e.ReferenceID,
		Quantity:           e.Quantity,
		UnitCost:           e.UnitCost,
		TotalCost:          e.TotalCost,
		TotalCostFormatted: f.Format(e.TotalCost),
		CanSave:            e.CanSave,
	}
}

// SubmitResponse reports a successful submission.
type SubmitResponse struct {
	Message     string          `json:"message"`
	Service     ServiceResponse `json:"service"`
	CostWarning string          `json:"costWarning,omitempty"`
}

func FromSubmitSuccess(s entities.Service, editing bool, costWarning bool, f *money.Formatter) SubmitResponse {
	msg := "Serviço criado com sucesso"
	if editing {
		msg = "Serviço editado com sucesso"
	}
	res := SubmitResponse{Message: msg, Service: FromService(s, f)}
	if costWarning {
		res.CostWarning = res.Service.CostWarning
	}
	return res
}

// ValidationFailedResponse carries the full field→message map of a rejected
// submission. It is data, not an error envelope: the draft is intact and the
// caller corrects and resubmits.
type ValidationFailedResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func FromValidationErrors(errs entities.FieldErrors) ValidationFailedResponse {
	return ValidationFailedResponse{
		Code:    "VALIDATION_FAILED",
		Message: "Por favor, corrija os erros no formulário",
		Errors:  errs,
	}
}
