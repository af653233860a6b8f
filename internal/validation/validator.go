// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is a single failed rule on one field.
type FieldError struct {
	field   string
	tag     string
	param   string
	message string
}

// Field returns the json name of the field that failed.
func (e *FieldError) Field() string { return e.field }

// Tag returns the validation tag that failed.
func (e *FieldError) Tag() string { return e.tag }

// Param returns the tag parameter, e.g. "100" for "max=100".
func (e *FieldError) Param() string { return e.param }

func (e *FieldError) Error() string { return e.message }

// StructError collects every field that failed validation.
type StructError struct {
	errors []FieldError
}

// Errors returns the individual field failures in declaration order.
func (se *StructError) Errors() []FieldError {
	return se.errors
}

// Fields returns the json names of the failing fields.
func (se *StructError) Fields() []string {
	fields := make([]string, len(se.errors))
	for i := range se.errors {
		fields[i] = se.errors[i].field
	}
	return fields
}

// HasField reports whether field is among the failures.
func (se *StructError) HasField(field string) bool {
	for i := range se.errors {
		if se.errors[i].field == field {
			return true
		}
	}
	return false
}

func (se *StructError) Error() string {
	if len(se.errors) == 0 {
		return "validación fallida"
	}
	messages := make([]string, len(se.errors))
	for i := range se.errors {
		messages[i] = se.errors[i].message
	}
	return strings.Join(messages, "; ")
}

// GetValidator returns the shared validator instance.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
	})
	return validate
}

// jsonFieldName reports the json name of a struct field so errors speak the
// wire vocabulary.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

// ValidateStruct validates s with the shared validator.
// It returns nil when s is valid.
func ValidateStruct(s any) *StructError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &StructError{errors: []FieldError{{
			field:   "unknown",
			tag:     "unknown",
			message: err.Error(),
		}}}
	}

	out := make([]FieldError, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = FieldError{
			field:   fe.Field(),
			tag:     fe.Tag(),
			param:   fe.Param(),
			message: translateError(fe),
		}
	}
	return &StructError{errors: out}
}

// errorMessageTemplates maps tags to templates taking the field name.
var errorMessageTemplates = map[string]string{
	"required":  "%s requerido",
	"latitude":  "%s debe ser una latitud válida (-90 a 90)",
	"longitude": "%s debe ser una longitud válida (-180 a 180)",
	"uuid4":     "%s debe ser un UUID v4",
}

// errorMessageWithParam maps tags to templates taking the field name and param.
var errorMessageWithParam = map[string]string{
	"oneof": "%s debe ser uno de: %s",
	"max":   "%s excede el máximo de %s",
	"min":   "%s no alcanza el mínimo de %s",
	"gte":   "%s debe ser mayor o igual a %s",
	"lte":   "%s debe ser menor o igual a %s",
}

func translateError(fe validator.FieldError) string {
	if template, ok := errorMessageTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(template, fe.Field())
	}
	if template, ok := errorMessageWithParam[fe.Tag()]; ok {
		return fmt.Sprintf(template, fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s inválido (%s)", fe.Field(), fe.Tag())
}
