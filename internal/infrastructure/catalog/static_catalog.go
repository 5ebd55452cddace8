// Package catalog provides the static reference catalogs the service form
// consumes: service classes, processes and materials. The core only reads
// them; there is no management surface.
package catalog

import (
	"clinica_servicos/internal/domain/entities"
	"clinica_servicos/internal/usecase/interfaces"
)

type StaticCatalog struct {
	classes   []entities.ServiceClass
	processes []entities.Process
	materials []entities.Material

	processByID  map[string]entities.Process
	materialByID map[string]entities.Material
}

var _ interfaces.ICatalogProvider = (*StaticCatalog)(nil)

func NewStaticCatalog() *StaticCatalog {
	c := &StaticCatalog{
		classes: []entities.ServiceClass{
			{ID: "class-1", Name: "Higiene"},
			{ID: "class-2", Name: "Diagnóstico"},
			{ID: "class-3", Name: "Estética"},
			{ID: "class-4", Name: "Endodontia"},
			{ID: "class-5", Name: "Cirurgia"},
		},
		processes: []entities.Process{
			{ID: "proc-1", Name: "Esterilização de Instrumentos", BaseCost: 15},
			{ID: "proc-2", Name: "Profilaxia", BaseCost: 80},
			{ID: "proc-3", Name: "Aplicação de Flúor", BaseCost: 30},
			{ID: "proc-4", Name: "Anestesia Local", BaseCost: 45},
			{ID: "proc-5", Name: "Captura de Imagem Radiográfica", BaseCost: 60},
			{ID: "proc-6", Name: "Acabamento e Polimento", BaseCost: 40},
		},
		materials: []entities.Material{
			{ID: "mat-1", Name: "Luvas Descartáveis", BasePrice: 5},
			{ID: "mat-2", Name: "Pasta Profilática", BasePrice: 12},
			{ID: "mat-3", Name: "Flúor Gel", BasePrice: 18},
			{ID: "mat-4", Name: "Anestésico Lidocaína", BasePrice: 35},
			{ID: "mat-5", Name: "Filme Radiográfico", BasePrice: 22},
			{ID: "mat-6", Name: "Sugador Descartável", BasePrice: 3},
			{ID: "mat-7", Name: "Gel Clareador", BasePrice: 120},
		},
	}

	c.processByID = make(map[string]entities.Process, len(c.processes))
	for _, p := range c.processes {
		c.processByID[p.ID] = p
	}
	c.materialByID = make(map[string]entities.Material, len(c.materials))
	for _, m := range c.materials {
		c.materialByID[m.ID] = m
	}
	return c
}

func (c *StaticCatalog) ServiceClasses() []entities.ServiceClass {
	return append([]entities.ServiceClass{}, c.classes...)
}

func (c *StaticCatalog) Processes() []entities.Process {
	return append([]entities.Process{}, c.processes...)
}

func (c *StaticCatalog) Materials() []entities.Material {
	return append([]entities.Material{}, c.materials...)
}

func (c *StaticCatalog) LookupProcess(id string) (entities.Process, bool) {
	p, ok := c.processByID[id]
	return p, ok
}

func (c *StaticCatalog) LookupMaterial(id string) (entities.Material, bool) {
	m, ok := c.materialByID[id]
	return m, ok
}
