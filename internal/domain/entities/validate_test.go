package entities

import "testing"

func intPtr(v int) *int { return &v }

func validDraft() Service {
	s := NewDraft()
	s.Name = "Limpeza Dentária"
	s.ServiceClass = "Higiene"
	return s
}

func TestValidateService(t *testing.T) {
	t.Run("valid draft returns empty map", func(t *testing.T) {
		if errs := ValidateService(validDraft()); len(errs) != 0 {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})

	t.Run("name shorter than 3", func(t *testing.T) {
		s := validDraft()
		s.Name = "AB"
		errs := ValidateService(s)
		if len(errs) != 1 {
			t.Fatalf("expected exactly one error, got %v", errs)
		}
		if _, ok := errs["name"]; !ok {
			t.Fatalf("expected name error, got %v", errs)
		}
	})

	t.Run("name of exactly 3 accepted", func(t *testing.T) {
		s := validDraft()
		s.Name = "Pré"
		if errs := ValidateService(s); len(errs) != 0 {
			t.Fatalf("expected no errors for 3-rune name, got %v", errs)
		}
	})

	t.Run("all violations reported together", func(t *testing.T) {
		s := validDraft()
		s.Name = ""
		s.ServiceClass = ""
		s.DeliveryDays = intPtr(-1)

		errs := ValidateService(s)
		for _, field := range []string{"name", "serviceClass", "deliveryDays"} {
			if _, ok := errs[field]; !ok {
				t.Fatalf("expected %s error, got %v", field, errs)
			}
		}
		if len(errs) != 3 {
			t.Fatalf("expected 3 errors, got %v", errs)
		}
	})

	t.Run("missing delivery days", func(t *testing.T) {
		s := validDraft()
		s.DeliveryDays = nil
		errs := ValidateService(s)
		if _, ok := errs["deliveryDays"]; !ok {
			t.Fatalf("expected deliveryDays error, got %v", errs)
		}
	})

	t.Run("invalid time unit", func(t *testing.T) {
		s := validDraft()
		s.TimeUnit = "Semanas"
		errs := ValidateService(s)
		if _, ok := errs["timeUnit"]; !ok {
			t.Fatalf("expected timeUnit error, got %v", errs)
		}
	})

	t.Run("negative optional fields", func(t *testing.T) {
		s := validDraft()
		s.Duration = floatPtr(-1)
		s.DurationForecast = floatPtr(-0.5)
		s.StandardQuantity = floatPtr(-2)
		s.Value = floatPtr(-10)

		errs := ValidateService(s)
		for _, field := range []string{"duration", "durationForecast", "standardQuantity", "value"} {
			if _, ok := errs[field]; !ok {
				t.Fatalf("expected %s error, got %v", field, errs)
			}
		}
	})

	t.Run("absent optional fields pass", func(t *testing.T) {
		s := validDraft()
		s.Duration = nil
		s.DurationForecast = nil
		s.StandardQuantity = nil
		s.Value = nil
		if errs := ValidateService(s); len(errs) != 0 {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})

	t.Run("cost above value is not a validation error", func(t *testing.T) {
		s := validDraft()
		s.Value = floatPtr(50)
		s.TotalCost = 500
		if errs := ValidateService(s); len(errs) != 0 {
			t.Fatalf("advisory must not block: %v", errs)
		}
	})
}
