package handler

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/policedept/records-system/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Tag failures are translated into the domain failure taxonomy so the central
// error handler can assign statuses without inspecting messages.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()

	// Report fields by their JSON name so error envelopes match the wire.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return domain.ValidName(fl.Field().String())
	})
	_ = v.RegisterValidation("calendar_date", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseIncorporationDate(fl.Field().String(), time.Now())
		return ok
	})

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. The first failing field
// is reported; the taxonomy has no aggregate variant.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return fieldError(ve[0])
	}
	return err
}

// fieldError converts a single ValidationError into a tagged domain error.
func fieldError(fe validator.FieldError) *domain.Error {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return domain.FieldError(domain.KindMissingRequiredField, field, field+" is required")
	case "person_name":
		return domain.FieldError(domain.KindInvalidFormat, field, field+" must contain only letters and spaces")
	case "calendar_date":
		return domain.FieldError(domain.KindInvalidDate, field, field+" must be a real YYYY-MM-DD date not in the future")
	case "oneof":
		return domain.FieldError(domain.KindInvalidEnum, field, field+" must be one of: "+fe.Param())
	case "email":
		return domain.FieldError(domain.KindInvalidFormat, field, field+" must be a valid email")
	case "gt":
		if field == "agentId" {
			return domain.FieldError(domain.KindInvalidIdentifier, field, field+" must be a positive integer")
		}
		return domain.FieldError(domain.KindInvalidFormat, field, field+" must be greater than "+fe.Param())
	default:
		return domain.FieldError(domain.KindInvalidFormat, field, field+" failed validation ("+fe.Tag()+")")
	}
}
