package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	slugPattern  = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	clockLayouts = []string{"15:04:05", "15:04", "15:04:05.999999"}
)

// registerValidators teaches gin's validator our JSON field names and the
// custom "slug" and "clock" tags.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "" || slugPattern.MatchString(value)
		})
		_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
			_, ok := parseClock(fl.Field().String())
			return ok
		})
	})
}

func parseClock(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// fieldErrors converts a binding error into per-field messages.
func fieldErrors(err error) map[string][]string {
	out := map[string][]string{}

	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			out[fe.Field()] = append(out[fe.Field()], validationMessage(fe))
		}
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "non_field_errors"
		}
		out[field] = append(out[field], typeMessage(typeErr.Type))
	case errors.As(err, &syntaxErr):
		out["non_field_errors"] = []string{fmt.Sprintf("JSON parse error - %s", syntaxErr.Error())}
	default:
		out["non_field_errors"] = []string{err.Error()}
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "oneof":
		return fmt.Sprintf("\"%v\" is not a valid choice.", fe.Value())
	case "slug":
		return "Enter a valid \"slug\" consisting of letters, numbers, underscores or hyphens."
	case "datetime":
		return "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	case "clock":
		return "Time has wrong format. Use one of these formats instead: hh:mm[:ss[.uuuuuu]]."
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}

func typeMessage(t reflect.Type) string {
	if t == nil {
		return "Invalid value."
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	case reflect.Bool:
		return "Must be a valid boolean."
	case reflect.String:
		return "Not a valid string."
	case reflect.Ptr:
		return typeMessage(t.Elem())
	default:
		return "Invalid value."
	}
}
