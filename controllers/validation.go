package controllers

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
)

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json names so error payloads match the wire.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("namechars", func(fl validator.FieldLevel) bool {
		return nameRe.MatchString(fl.Field().String())
	})
	v.RegisterValidation("phoneno", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})

	return v
}

// checkStruct validates v and converts every violation into a FieldError,
// using labels to turn json field names into human-readable ones.
func checkStruct(v interface{}, labels map[string]string) []FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "body", Message: "Invalid request body"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		label := labels[fe.Field()]
		if label == "" {
			label = fe.Field()
		}
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe, label)})
	}
	return out
}

func messageFor(fe validator.FieldError, label string) string {
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Invalid email format"
	case "namechars":
		return label + " can only contain letters and spaces"
	case "phoneno":
		return "Invalid phone number format"
	case "min":
		return label + " must be at least " + fe.Param() + " characters long"
	case "max":
		return label + " must be " + fe.Param() + " characters or less"
	case "gt":
		return label + " must be a positive integer"
	}
	return label + " is invalid"
}
