package topicfile

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var topicIDRe = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		return name
	})
	_ = v.RegisterValidation("topicid", func(fl validator.FieldLevel) bool {
		return topicIDRe.MatchString(fl.Field().String())
	})
	return v
}

func validateHeader(h *Header) error {
	err := validate.Struct(h)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return fmt.Errorf("front matter: %s", strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "topicid":
		return fmt.Sprintf("%s %q must match [a-z0-9][a-z0-9-]*", field, e.Value())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
