package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/everafter/gallery-backend/internal/models"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Custom validations
	v.RegisterValidation("gallery_slug", validateGallerySlug)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// StructErrors validates s and flattens any violations into per-field errors
// the client can attach to form inputs.
func (v *Validator) StructErrors(s interface{}) []models.FieldError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []models.FieldError{{Field: "", Rule: "invalid", Message: err.Error()}}
	}

	fieldErrs := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrs = append(fieldErrs, models.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Rule:    fe.Tag(),
			Message: fieldMessage(fe),
		})
	}
	return fieldErrs
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "gallery_slug":
		return fmt.Sprintf("%s must contain only lowercase letters, digits and hyphens", field)
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color like #8B5CF6", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

func validateGallerySlug(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}
