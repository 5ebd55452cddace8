package repository

import (
	"time"

	"clinica_servicos/internal/domain/entities"
)

const seedAuthor = "current.user@empresa.com"

// SampleServices is the fixed sample set the collection is seeded with at
// startup. Catalog references match internal/infrastructure/catalog.
func SampleServices() []entities.Service {
	services := []entities.Service{
		{
			ID:               "srv-1",
			Name:             "Limpeza Dentária",
			Abbreviation:     "LIM",
			ServiceClass:     "Higiene",
			Control:          "SRV-001",
			TimeUnit:         entities.TimeUnitMinutos,
			Duration:         floatPtr(40),
			DurationForecast: floatPtr(45),
			DeliveryDays:     intPtr(0),
			StandardQuantity: floatPtr(1),
			Value:            floatPtr(250),
			Processes: []entities.LineItem{
				item("srv-1-p1", "proc-2", "Profilaxia", 1, 80),
				item("srv-1-p2", "proc-3", "Aplicação de Flúor", 1, 30),
				item("srv-1-p3", "proc-1", "Esterilização de Instrumentos", 1, 15),
			},
			Materials: []entities.LineItem{
				item("srv-1-m1", "mat-1", "Luvas Descartáveis", 2, 5),
				item("srv-1-m2", "mat-2", "Pasta Profilática", 1, 12),
				item("srv-1-m3", "mat-6", "Sugador Descartável", 1, 3),
			},
			CreatedAt: time.Date(2025, 11, 3, 9, 15, 0, 0, time.UTC),
			CreatedBy: seedAuthor,
		},
		{
			ID:                "srv-2",
			Name:              "Radiografia Panorâmica",
			Abbreviation:      "RXP",
			ServiceClass:      "Diagnóstico",
			Control:           "SRV-002",
			TimeUnit:          entities.TimeUnitMinutos,
			Duration:          floatPtr(15),
			DeliveryDays:      intPtr(1),
			StandardQuantity:  floatPtr(1),
			RadiationExposure: true,
			Value:             floatPtr(180),
			Processes: []entities.LineItem{
				item("srv-2-p1", "proc-5", "Captura de Imagem Radiográfica", 1, 60),
				item("srv-2-p2", "proc-1", "Esterilização de Instrumentos", 1, 15),
			},
			Materials: []entities.LineItem{
				item("srv-2-m1", "mat-5", "Filme Radiográfico", 1, 22),
				item("srv-2-m2", "mat-1", "Luvas Descartáveis", 1, 5),
			},
			CreatedAt: time.Date(2025, 11, 10, 14, 40, 0, 0, time.UTC),
			CreatedBy: seedAuthor,
		},
		{
			ID:               "srv-3",
			Name:             "Clareamento Dental",
			Abbreviation:     "CLA",
			ServiceClass:     "Estética",
			TimeUnit:         entities.TimeUnitHoras,
			Duration:         floatPtr(1),
			DurationForecast: floatPtr(1.5),
			DeliveryDays:     intPtr(7),
			StandardQuantity: floatPtr(1),
			Value:            floatPtr(900),
			Processes: []entities.LineItem{
				item("srv-3-p1", "proc-2", "Profilaxia", 1, 80),
				item("srv-3-p2", "proc-6", "Acabamento e Polimento", 1, 40),
			},
			Materials: []entities.LineItem{
				item("srv-3-m1", "mat-7", "Gel Clareador", 2, 120),
				item("srv-3-m2", "mat-1", "Luvas Descartáveis", 2, 5),
			},
			CreatedAt: time.Date(2025, 12, 2, 10, 5, 0, 0, time.UTC),
			CreatedBy: seedAuthor,
		},
		{
			ID:               "srv-4",
			Name:             "Tratamento de Canal",
			Abbreviation:     "ENDO",
			ServiceClass:     "Endodontia",
			TimeUnit:         entities.TimeUnitHoras,
			Duration:         floatPtr(2),
			DurationForecast: floatPtr(2.5),
			DeliveryDays:     intPtr(14),
			StandardQuantity: floatPtr(1),
			Value:            floatPtr(1200),
			Processes: []entities.LineItem{
				item("srv-4-p1", "proc-4", "Anestesia Local", 2, 45),
				item("srv-4-p2", "proc-1", "Esterilização de Instrumentos", 2, 15),
				item("srv-4-p3", "proc-5", "Captura de Imagem Radiográfica", 1, 60),
			},
			Materials: []entities.LineItem{
				item("srv-4-m1", "mat-4", "Anestésico Lidocaína", 2, 35),
				item("srv-4-m2", "mat-1", "Luvas Descartáveis", 3, 5),
				item("srv-4-m3", "mat-6", "Sugador Descartável", 2, 3),
			},
			CreatedAt: time.Date(2026, 1, 8, 16, 20, 0, 0, time.UTC),
			CreatedBy: seedAuthor,
		},
	}

	for i := range services {
		services[i].RecalculateCosts()
	}
	return services
}

func item(id, referenceID, referenceName string, quantity, unitCost float64) entities.LineItem {
	return entities.LineItem{
		ID:            id,
		ReferenceID:   referenceID,
		ReferenceName: referenceName,
		Quantity:      quantity,
		UnitCost:      unitCost,
		TotalCost:     quantity * unitCost,
	}
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
