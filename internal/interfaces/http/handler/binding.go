package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/dyqani/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindingError translates a request binding failure. Field validations are
// collected into one ValidationError so the caller sees every failing field
// at once; anything else (malformed JSON, wrong types) stays a plain 400.
func (h *BaseHandler) BindingError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		h.BadRequest(c, "Invalid request body")
		return
	}

	validationErr := &shared.ValidationError{}
	for _, fe := range fieldErrs {
		validationErr.Add(bindingFieldName(fe), bindingFieldMessage(fe))
	}
	h.HandleError(c, validationErr)
}

// bindingFieldName strips the root struct from the namespace so nested
// fields read like "Customer.Email" instead of "PlaceOrderRequest.Customer.Email".
func bindingFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func bindingFieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if fe.Type().Kind() == reflect.String || fe.Type().Kind() == reflect.Slice {
			return "Must have at least " + fe.Param() + " entries or characters"
		}
		return "Must be at least " + fe.Param()
	case "max":
		if fe.Type().Kind() == reflect.String || fe.Type().Kind() == reflect.Slice {
			return "Must have at most " + fe.Param() + " entries or characters"
		}
		return "Must be at most " + fe.Param()
	case "uuid":
		return "Invalid UUID format"
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "gte":
		return "Must be greater than or equal to " + fe.Param()
	case "lte":
		return "Must be less than or equal to " + fe.Param()
	case "gt":
		return "Must be greater than " + fe.Param()
	case "url":
		return "Invalid URL format"
	default:
		return "Invalid value"
	}
}
