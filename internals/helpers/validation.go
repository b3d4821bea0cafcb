package helper

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	model "coachingku_backend/internals/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// pakai nama field dari tag json supaya pesan error sama dengan payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("lead_status", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, st := range model.LeadStatuses {
			if s == st {
				return true
			}
		}
		return false
	})
	return v
}

// ValidateStruct runs the struct tags of req and returns field messages, or nil when valid.
func ValidateStruct(req any) map[string][]string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	return ValidationErrors(err)
}

func ValidationErrors(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		out[fe.Field()] = append(out[fe.Field()], fieldMessage(fe))
	}
	return out
}

// ValidationSummary flattens field messages into one line, fields in name order.
func ValidationSummary(fields map[string][]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, strings.Join(fields[k], ", "))
	}
	return strings.Join(parts, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "numeric", "number":
		return fe.Field() + " must be a number"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "email":
		return fe.Field() + " must be a valid email"
	case "datetime":
		return fmt.Sprintf("%s must be a date (%s)", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "lead_status":
		return fe.Field() + " must be one of: " + strings.Join(model.LeadStatuses, ", ")
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
