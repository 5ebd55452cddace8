package entities

import "unicode/utf8"

// FieldErrors maps a field name to a human-readable validation message.
// An empty map means the draft is valid.
type FieldErrors map[string]string

// ValidateService checks a service draft against the submit rules. Every rule
// is evaluated independently and all violations are reported together; the
// caller must surface the full map and must not apply the submission when it
// is non-empty.
//
// A total cost above the service value is deliberately not checked here: that
// condition is a non-blocking advisory, not a validation failure.
func ValidateService(s Service) FieldErrors {
	errs := FieldErrors{}

	if utf8.RuneCountInString(s.Name) < 3 {
		errs["name"] = "Nome do serviço é obrigatório e deve ter pelo menos 3 caracteres"
	}

	if s.ServiceClass == "" {
		errs["serviceClass"] = "Selecione uma classe de serviço"
	}

	if !s.TimeUnit.Valid() {
		errs["timeUnit"] = "Unidade de tempo é obrigatória"
	}

	if s.Duration != nil && *s.Duration < 0 {
		errs["duration"] = "Duração deve ser maior ou igual a zero"
	}

	if s.DurationForecast != nil && *s.DurationForecast < 0 {
		errs["durationForecast"] = "Previsão deve ser maior ou igual a zero"
	}

	if s.DeliveryDays == nil || *s.DeliveryDays < 0 {
		errs["deliveryDays"] = "Prazo de entrega é obrigatório e deve ser maior ou igual a zero"
	}

	if s.StandardQuantity != nil && *s.StandardQuantity < 0 {
		errs["standardQuantity"] = "Quantidade padrão deve ser maior ou igual a zero"
	}

	if s.Value != nil && *s.Value < 0 {
		errs["value"] = "Valor deve ser maior ou igual a zero"
	}

	return errs
}
