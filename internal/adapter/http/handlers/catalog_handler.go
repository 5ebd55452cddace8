package handlers

import (
	"net/http"

	response "clinica_servicos/internal/adapter/http/dto/response"
	"clinica_servicos/internal/infrastructure/money"
	"clinica_servicos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only reference catalogs backing the form
// selects: service classes, processes and materials.

type CatalogHandler struct {
	catalogs  interfaces.ICatalogProvider
	formatter *money.Formatter
}

func NewCatalogHandler(catalogs interfaces.ICatalogProvider, f *money.Formatter) *CatalogHandler {
	return &CatalogHandler{catalogs: catalogs, formatter: f}
}

// ListServiceClasses godoc
// @Summary List service classes
// @Tags catalogs
// @Produce json
// @Success 200 {array} response.ServiceClassResponse
// @Router /catalogs/service-classes [get]
func (h *CatalogHandler) ListServiceClasses(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromServiceClasses(h.catalogs.ServiceClasses()))
}

// ListProcesses godoc
// @Summary List processes
// @Tags catalogs
// @Produce json
// @Success 200 {array} response.ProcessResponse
// @Router /catalogs/processes [get]
func (h *CatalogHandler) ListProcesses(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromProcesses(h.catalogs.Processes(), h.formatter))
}

// ListMaterials godoc
// @Summary List materials
// @Tags catalogs
// @Produce json
// @Success 200 {array} response.MaterialResponse
// @Router /catalogs/materials [get]
func (h *CatalogHandler) ListMaterials(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromMaterials(h.catalogs.Materials(), h.formatter))
}
