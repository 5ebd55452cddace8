package interfaces

import "clinica_servicos/internal/domain/entities"

// ICatalogProvider exposes the read-only reference catalogs: service classes
// for the form select, processes and materials for line-item pricing. Lookups
// return false for unknown ids; the caller decides how permissive to be.

type ICatalogProvider interface {
	ServiceClasses() []entities.ServiceClass
	Processes() []entities.Process
	Materials() []entities.Material
	LookupProcess(id string) (entities.Process, bool)
	LookupMaterial(id string) (entities.Material, bool)
}
