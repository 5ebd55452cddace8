package handlers

import (
	"errors"
	"net/http"

	request "clinica_servicos/internal/adapter/http/dto/request"
	response "clinica_servicos/internal/adapter/http/dto/response"
	"clinica_servicos/internal/infrastructure/money"
	"clinica_servicos/internal/usecase"
	"clinica_servicos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)
)

// DraftHandler handles HTTP requests for draft sessions: the form state of a
// service being created or edited, including its two line-item editors.

type DraftHandler struct {
	usecase   usecase.IDraftUseCase
	formatter *money.Formatter
}

func NewDraftHandler(uc usecase.IDraftUseCase, f *money.Formatter) *DraftHandler {
	return &DraftHandler{usecase: uc, formatter: f}
}

// BeginDraft godoc
// @Summary Open a draft session
// @Description Opens a blank draft, or a working copy of an existing service when serviceId is given
// @Tags drafts
// @Accept json
// @Produce json
// @Param payload body request.DraftBeginRequest false "Draft options"
// @Success 201 {object} response.DraftResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /drafts [post]
func (h *DraftHandler) BeginDraft(c *gin.Context) {
	var payload request.DraftBeginRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
			return
		}
	}

	state, err := h.usecase.Begin(c.Request.Context(), payload.ResolveServiceID())
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDraftState(state, h.formatter))
}

// GetDraft godoc
// @Summary Get a draft session
// @Tags drafts
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Success 200 {object} response.DraftResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /drafts/{draft_id} [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	state, err := h.usecase.Get(c.Request.Context(), c.Param("draft_id"))
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraftState(state, h.formatter))
}

// PatchDraft godoc
// @Summary Update draft form fields
// @Description Partial update; absent fields stay untouched. Numeric fields accept numbers, numeric strings, or empty/null to clear.
// @Tags drafts
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param payload body request.DraftFieldsRequest true "Field updates"
// @Success 200 {object} response.DraftResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /drafts/{draft_id} [patch]
func (h *DraftHandler) PatchDraft(c *gin.Context) {
	var payload request.DraftFieldsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	patch := usecase.DraftFieldPatch{
		Name:              payload.Name,
		Abbreviation:      payload.Abbreviation,
		ServiceClass:      payload.ServiceClass,
		Control:           payload.Control,
		TimeUnit:          payload.TimeUnit,
		Duration:          numberPatch(payload.Duration),
		DurationForecast:  numberPatch(payload.DurationForecast),
		DeliveryDays:      numberPatch(payload.DeliveryDays),
		StandardQuantity:  numberPatch(payload.StandardQuantity),
		Value:             numberPatch(payload.Value),
		RadiationExposure: payload.RadiationExposure,
	}

	state, err := h.usecase.UpdateFields(c.Request.Context(), c.Param("draft_id"), patch)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraftState(state, h.formatter))
}

// SubmitDraft godoc
// @Summary Submit a draft
// @Description Validates and persists the draft. Validation failures return 422 with the field→message map and keep the draft open.
// @Tags drafts
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Success 200 {object} response.SubmitResponse
// @Success 201 {object} response.SubmitResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 422 {object} response.ValidationFailedResponse
// @Router /drafts/{draft_id}/submit [post]
func (h *DraftHandler) SubmitDraft(c *gin.Context) {
	draftID := c.Param("draft_id")

	state, err := h.usecase.Get(c.Request.Context(), draftID)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.Submit(c.Request.Context(), draftID)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(result.Errors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, response.FromValidationErrors(result.Errors))
		return
	}

	status := http.StatusCreated
	if state.Editing {
		status = http.StatusOK
	}
	c.JSON(status, response.FromSubmitSuccess(*result.Service, state.Editing, result.CostWarning, h.formatter))
}

// DiscardDraft godoc
// @Summary Discard a draft
// @Description Drops the session without touching the collection
// @Tags drafts
// @Param draft_id path string true "Draft ID"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /drafts/{draft_id} [delete]
func (h *DraftHandler) DiscardDraft(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), c.Param("draft_id")); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// BeginAddLineItem godoc
// @Summary Open the line-item editor in add mode
// @Tags drafts
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param kind path string true "Collection" Enums(processes, materials)
// @Success 200 {object} response.DraftResponse
// @Router /drafts/{draft_id}/editors/{kind} [post]
func (h *DraftHandler) BeginAddLineItem(c *gin.Context) {
	kind, appErr := lineItemKind(c.Param("kind"))
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	state, err := h.usecase.BeginAddItem(c.Request.Context(), c.Param("draft_id"), kind)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraftState(state, h.formatter))
}

// BeginEditLineItem godoc
// @Summary Open the line-item editor on an existing item
// @Tags drafts
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param kind path string true "Collection" Enums(processes, materials)
// @Param item_id path string true "Line item ID"
// @Success 200 {object} response.DraftResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /drafts/{draft_id}/editors/{kind}/items/{item_id}/edit [post]
func (h *DraftHandler) BeginEditLineItem(c *gin.Context) {
	kind, appErr := lineItemKind(c.Param("kind"))
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	state, err := h.usecase.BeginEditItem(c.Request.Context(), c.Param("draft_id"), kind, c.Param("item_id"))
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraftState(state, h.formatter))
}

// PatchLineItemEditor godoc
// @Summary Update the working line item
// @Description Selecting a reference resets quantity to one and the unit cost to the catalog base; quantity/cost in the same payload then override.
// @Tags drafts
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param kind path string true "Collection" Enums(processes, materials)
// @Param payload body request.LineItemEditorRequest true "Editor updates"
// @Success 200 {object} response.DraftResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /drafts/{draft_id}/editors/{kind} [patch]
func (h *DraftHandler) PatchLineItemEditor(c *gin.Context) {
	kind, appErr := lineItemKind(c.Param("kind"))
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.LineItemEditorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	isProcess := kind == usecase.KindProcess
	patch := usecase.EditorPatch{ReferenceID: payload.ResolveReference(isProcess)}
	if payload.Quantity.Present {
		patch.Quantity = payload.Quantity.FloatOrZero()
	}
	if uc := payload.ResolveUnitCost(isProcess); uc.Present {
		patch.UnitCost = uc.FloatOrZero()
	}

	state, err := h.usecase.UpdateEditor(c.Request.Context(), c.Param("draft_id"), kind, patch)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraftState(state, h.formatter))
}

// SaveLineItem godoc
// @Summary Save the working line item into the draft
// @Tags drafts
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param kind path string true "Collection" Enums(processes, materials)
// @Success 200 {object} response.DraftResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /drafts/{draft_id}/editors/{kind}/save [post]
func (h *DraftHandler) SaveLineItem(c *gin.Context) {
	kind, appErr := lineItemKind(c.Param("kind"))
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	state, err := h.usecase.SaveItem(c.Request.Context(), c.Param("draft_id"), kind)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraftState(state, h.formatter))
}

// CancelLineItem godoc
// @Summary Cancel the line-item editor
// @Tags drafts
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param kind path string true "Collection" Enums(processes, materials)
// @Success 200 {object} response.DraftResponse
// @Router /drafts/{draft_id}/editors/{kind} [delete]
func (h *DraftHandler) CancelLineItem(c *gin.Context) {
	kind, appErr := lineItemKind(c.Param("kind"))
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	state, err := h.usecase.CancelItem(c.Request.Context(), c.Param("draft_id"), kind)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraftState(state, h.formatter))
}

// DeleteLineItem godoc
// @Summary Remove a line item from the draft
// @Description Removing an absent item is a no-op. Derived costs are recomputed immediately.
// @Tags drafts
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param kind path string true "Collection" Enums(processes, materials)
// @Param item_id path string true "Line item ID"
// @Success 200 {object} response.DraftResponse
// @Router /drafts/{draft_id}/editors/{kind}/items/{item_id} [delete]
func (h *DraftHandler) DeleteLineItem(c *gin.Context) {
	kind, appErr := lineItemKind(c.Param("kind"))
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	state, err := h.usecase.DeleteItem(c.Request.Context(), c.Param("draft_id"), kind, c.Param("item_id"))
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraftState(state, h.formatter))
}

func lineItemKind(param string) (usecase.LineItemKind, *pkg.AppError) {
	switch param {
	case "processes":
		return usecase.KindProcess, nil
	case "materials":
		return usecase.KindMaterial, nil
	default:
		return "", pkg.NewDomainErrorSimple("UNKNOWN_LINE_ITEM_KIND", "Unknown line item collection", http.StatusBadRequest)
	}
}

func numberPatch(n request.FlexNumber) usecase.NumberPatch {
	return usecase.NumberPatch{Set: n.Present, Value: n.Value}
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownLineItemKind):
		return pkg.NewDomainErrorSimple("UNKNOWN_LINE_ITEM_KIND", "Unknown line item collection", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEditorIdle):
		return pkg.NewDomainErrorSimple("EDITOR_IDLE", "No line item is being edited", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoReferenceSelected):
		return pkg.NewDomainErrorSimple("NO_REFERENCE_SELECTED", "Select a catalog reference before saving", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
