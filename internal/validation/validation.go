package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// price must be a plain decimal string: no currency symbol, no thousands
// separators, at most two fractional digits.
var priceRegex = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report violations under the field's JSON name, which is what API
	// clients actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		return priceRegex.MatchString(fl.Field().String())
	})

	v.RegisterValidation("year_built", func(fl validator.FieldLevel) bool {
		year := int(fl.Field().Int())
		return year >= 1800 && year <= time.Now().Year()+1
	})

	return v
}

// FieldError is a single per-field violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in an input payload.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a single-field error, for checks that fall
// outside struct tags.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// Validate runs struct validation on an input payload and converts the
// library's errors to a ValidationError.
func Validate(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: describe(fe)})
	}
	return &ValidationError{Fields: fields}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "price":
		return "must be a number with at most two decimal places"
	case "year_built":
		return fmt.Sprintf("must be between 1800 and %d", time.Now().Year()+1)
	default:
		return fmt.Sprintf("failed the '%s' rule", fe.Tag())
	}
}
