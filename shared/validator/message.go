package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"gt":       "{field} must be greater than {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"len":      "{field} must be exactly {param} long",
		"email":    "{field} must be a valid email address",
		"url":      "{field} must be a valid URL",
		"enum":     "{field} has an unsupported value",
		"datetime": "{field} must be a date in the format YYYY-MM-DD",
		"gtfield":  "{field} must be after {param}",
		"dive":     "{field} is invalid",
	}

	stringMessages = map[string]string{
		"min": "{field} must be at least {param} characters",
		"max": "{field} must be at most {param} characters",
		"len": "{field} must be exactly {param} character(s)",
	}
)

const defaultFieldName = "value"

func fieldName(valErr val.FieldError) string {
	ns := valErr.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}

	if valErr.Field() != "" {
		return valErr.Field()
	}

	return defaultFieldName
}

func translate(valErr val.FieldError) string {
	field := fieldName(valErr)
	param := valErr.Param()

	errStr := messages[valErr.Tag()]
	if valErr.Kind() == reflect.String {
		if strMsg, ok := stringMessages[valErr.Tag()]; ok {
			errStr = strMsg
		}
	}

	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", field)
	errStr = strings.ReplaceAll(errStr, "{param}", param)

	return errStr
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			return translate(valErr)
		}

		return valErrors.Error()
	}

	return err.Error()
}

// fields groups every validation message by the JSON path of the offending field.
func fields(err error) map[string][]string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return nil
	}

	result := make(map[string][]string, len(valErrors))

	for _, valErr := range valErrors {
		name := fieldName(valErr)
		result[name] = append(result[name], translate(valErr))
	}

	return result
}
