package app

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate - разделяемый экземпляр валидатора деклараций полей.
// Потокобезопасен после регистрации имен полей.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Имена полей в ошибках совпадают с именами JSON.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldViolation описывает нарушение одного правила для одного поля.
type FieldViolation struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

// ValidationError содержит список нарушений правил для записи.
type ValidationError struct {
	Violations []FieldViolation
}

// Error возвращает нарушения в виде списка "поле: правило".
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Constraint)
	}
	return strings.Join(parts, "; ")
}

// validatePayload проверяет запись на соответствие декларативным правилам.
// Запись не изменяется; поля без правил проходят без проверки.
func validatePayload(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate payload: %w", err)
	}

	violations := make([]FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		constraint := fe.Tag()
		if fe.Param() != "" {
			constraint += "=" + fe.Param()
		}
		violations = append(violations, FieldViolation{Field: fe.Field(), Constraint: constraint})
	}

	return &ValidationError{Violations: violations}
}
