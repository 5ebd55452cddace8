package entities

import "testing"

func floatPtr(v float64) *float64 { return &v }

func TestRecalculateCosts(t *testing.T) {
	t.Run("sums both collections", func(t *testing.T) {
		s := NewDraft()
		s.Processes = []LineItem{
			{ID: "1", ReferenceID: "proc-1", Quantity: 2, UnitCost: 50, TotalCost: 100},
			{ID: "2", ReferenceID: "proc-2", Quantity: 1, UnitCost: 25, TotalCost: 25},
		}
		s.Materials = []LineItem{
			{ID: "3", ReferenceID: "mat-1", Quantity: 3, UnitCost: 10, TotalCost: 30},
		}

		s.RecalculateCosts()

		if s.ProcessCost != 125 {
			t.Fatalf("expected process cost 125, got %v", s.ProcessCost)
		}
		if s.MaterialCost != 30 {
			t.Fatalf("expected material cost 30, got %v", s.MaterialCost)
		}
		if s.TotalCost != 155 {
			t.Fatalf("expected total cost 155, got %v", s.TotalCost)
		}
	})

	t.Run("empty collections yield zero", func(t *testing.T) {
		s := NewDraft()
		s.ProcessCost, s.MaterialCost, s.TotalCost = 99, 99, 99

		s.RecalculateCosts()

		if s.ProcessCost != 0 || s.MaterialCost != 0 || s.TotalCost != 0 {
			t.Fatalf("expected zero costs, got %+v", s)
		}
	})

	t.Run("recomputes after removal", func(t *testing.T) {
		s := NewDraft()
		s.Processes = []LineItem{{ID: "1", TotalCost: 100}, {ID: "2", TotalCost: 40}}
		s.RecalculateCosts()
		if s.TotalCost != 140 {
			t.Fatalf("expected 140, got %v", s.TotalCost)
		}

		s.Processes = s.Processes[:1]
		s.RecalculateCosts()
		if s.TotalCost != 100 {
			t.Fatalf("expected 100 after removal, got %v", s.TotalCost)
		}
	})
}

func TestNewDraftDefaults(t *testing.T) {
	s := NewDraft()

	if s.TimeUnit != TimeUnitMinutos {
		t.Fatalf("expected default time unit Minutos, got %q", s.TimeUnit)
	}
	if s.DeliveryDays == nil || *s.DeliveryDays != 0 {
		t.Fatalf("expected delivery days 0, got %v", s.DeliveryDays)
	}
	if s.StandardQuantity == nil || *s.StandardQuantity != 1 {
		t.Fatalf("expected standard quantity 1, got %v", s.StandardQuantity)
	}
	if s.RadiationExposure {
		t.Fatal("expected radiation exposure to default to false")
	}
	if len(s.Processes) != 0 || len(s.Materials) != 0 {
		t.Fatalf("expected empty collections, got %+v", s)
	}
}

func TestClone(t *testing.T) {
	orig := NewDraft()
	orig.Name = "Limpeza Dentária"
	orig.Value = floatPtr(250)
	orig.Processes = []LineItem{{ID: "1", ReferenceName: "Profilaxia", TotalCost: 80}}

	cp := orig.Clone()
	cp.Name = "Outro"
	*cp.Value = 999
	cp.Processes[0].TotalCost = 0
	cp.Processes = append(cp.Processes, LineItem{ID: "2"})

	if orig.Name != "Limpeza Dentária" {
		t.Fatalf("clone mutated original name: %q", orig.Name)
	}
	if *orig.Value != 250 {
		t.Fatalf("clone shares value pointer: %v", *orig.Value)
	}
	if orig.Processes[0].TotalCost != 80 || len(orig.Processes) != 1 {
		t.Fatalf("clone shares process slice: %+v", orig.Processes)
	}
}

func TestCostExceedsValue(t *testing.T) {
	s := NewDraft()
	s.TotalCost = 130

	if s.CostExceedsValue() {
		t.Fatal("no value set: advisory must not fire")
	}

	s.Value = floatPtr(100)
	if !s.CostExceedsValue() {
		t.Fatal("expected advisory when total cost exceeds value")
	}

	s.Value = floatPtr(130)
	if s.CostExceedsValue() {
		t.Fatal("equal cost and value must not fire the advisory")
	}
}
