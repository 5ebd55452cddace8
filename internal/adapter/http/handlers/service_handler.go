package handlers

import (
	"errors"
	"net/http"

	response "clinica_servicos/internal/adapter/http/dto/response"
	"clinica_servicos/internal/infrastructure/money"
	"clinica_servicos/internal/usecase"
	"clinica_servicos/pkg"

	"github.com/gin-gonic/gin"
)

// ServiceHandler handles HTTP requests for the service collection: filtered
// listing, summary statistics, class options, lookup and removal.

type ServiceHandler struct {
	usecase   usecase.IServiceUseCase
	formatter *money.Formatter
}

func NewServiceHandler(uc usecase.IServiceUseCase, f *money.Formatter) *ServiceHandler {
	return &ServiceHandler{usecase: uc, formatter: f}
}

// ListServices godoc
// @Summary List services
// @Description Lists services filtered by a free search term (name, abbreviation or class, case-insensitive) and a class filter ("all" matches every class)
// @Tags services
// @Produce json
// @Param search query string false "Search term"
// @Param class query string false "Class filter" default(all)
// @Success 200 {object} response.ServiceListResponse
// @Router /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.List(c.Request.Context(), c.Query("search"), c.Query("class"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServices(services, h.formatter))
}

// GetService godoc
// @Summary Get a service by id
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.ServiceResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /services/{id} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	service, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(service, h.formatter))
}

// DeleteService godoc
// @Summary Delete a service
// @Description Removes a service from the collection. Deleting an absent id is a no-op.
// @Tags services
// @Param id path string true "Service ID"
// @Success 204
// @Router /services/{id} [delete]
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GetSummary godoc
// @Summary Collection summary statistics
// @Description Total count, average charged value and radiation-flagged count. The average over an empty collection is zero.
// @Tags services
// @Produce json
// @Success 200 {object} response.SummaryResponse
// @Router /services-summary [get]
func (h *ServiceHandler) GetSummary(c *gin.Context) {
	summary, err := h.usecase.Summarize(c.Request.Context())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SummaryResponse{
		Count:                 summary.Count,
		AverageValue:          summary.AverageValue,
		AverageValueFormatted: h.formatter.Format(summary.AverageValue),
		RadiationCount:        summary.RadiationCount,
	})
}

// GetClasses godoc
// @Summary Class filter options
// @Description The "all" sentinel followed by each distinct class in order of first occurrence
// @Tags services
// @Produce json
// @Success 200 {object} response.ClassOptionsResponse
// @Router /services-classes [get]
func (h *ServiceHandler) GetClasses(c *gin.Context) {
	classes, err := h.usecase.DistinctClasses(c.Request.Context())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ClassOptionsResponse{Classes: classes})
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
