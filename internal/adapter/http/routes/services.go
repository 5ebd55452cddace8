package routes

import (
	"clinica_servicos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices = "/services"
	PathDrafts   = "/drafts"
	PathCatalogs = "/catalogs"
)

func addServiceRoutes(rg *gin.RouterGroup, serviceHandler *handlers.ServiceHandler, draftHandler *handlers.DraftHandler, catalogHandler *handlers.CatalogHandler) {
	services := rg.Group(PathServices)
	{
		services.GET("", serviceHandler.ListServices)
		services.GET("/:id", serviceHandler.GetService)
		services.DELETE("/:id", serviceHandler.DeleteService)
	}

	// Listing aggregates live beside the collection: a literal segment under
	// /services would collide with the :id wildcard.
	rg.GET(PathServices+"-summary", serviceHandler.GetSummary)
	rg.GET(PathServices+"-classes", serviceHandler.GetClasses)

	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", draftHandler.BeginDraft)
		drafts.GET("/:draft_id", draftHandler.GetDraft)
		drafts.PATCH("/:draft_id", draftHandler.PatchDraft)
		drafts.DELETE("/:draft_id", draftHandler.DiscardDraft)
		drafts.POST("/:draft_id/submit", draftHandler.SubmitDraft)

		// The two line-item editors, addressed by collection kind.
		drafts.POST("/:draft_id/editors/:kind", draftHandler.BeginAddLineItem)
		drafts.PATCH("/:draft_id/editors/:kind", draftHandler.PatchLineItemEditor)
		drafts.DELETE("/:draft_id/editors/:kind", draftHandler.CancelLineItem)
		drafts.POST("/:draft_id/editors/:kind/save", draftHandler.SaveLineItem)
		drafts.POST("/:draft_id/editors/:kind/items/:item_id/edit", draftHandler.BeginEditLineItem)
		drafts.DELETE("/:draft_id/editors/:kind/items/:item_id", draftHandler.DeleteLineItem)
	}

	catalogs := rg.Group(PathCatalogs)
	{
		catalogs.GET("/service-classes", catalogHandler.ListServiceClasses)
		catalogs.GET("/processes", catalogHandler.ListProcesses)
		catalogs.GET("/materials", catalogHandler.ListMaterials)
	}
}
