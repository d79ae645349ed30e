// Package bind decodes JSON request bodies and validates them with
// go-playground/validator, reporting failures as project errors
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "langshift/internal/platform/errors"
	"langshift/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// MaxBody caps a request body; the sanitizer enforces the tighter per field limit
const MaxBody = 1 << 20

// FieldLevel aliases validator.FieldLevel for custom tags
type FieldLevel = validator.FieldLevel

var (
	once  sync.Once
	vd    *validator.Validate
	trans ut.Translator
)

// short english messages replacing the validator defaults
var messages = map[string]string{
	"min":      "{0} must be at least {1}",
	"max":      "{0} must be at most {1}",
	"required": "{0} is required",
}

func setup() {
	once.Do(func() {
		loc := en.New()
		trans, _ = ut.New(loc, loc).GetTranslator("en")

		vd = validator.New(validator.WithRequiredStructEnabled())
		vd.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = en_translations.RegisterDefaultTranslations(vd, trans)
		for tag, msg := range messages {
			_ = translate(tag, msg)
		}
	})
}

func translate(tag, msg string) error {
	return vd.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, msg, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field(), fe.Param())
			return s
		},
	)
}

// Validator returns the shared validator
func Validator() *validator.Validate {
	setup()
	return vd
}

// RegisterTagged registers a custom tag and its english message; {0} is the field name.
// Registering the same tag again replaces it.
func RegisterTagged(tag, message string, fn validator.Func) error {
	setup()
	if err := vd.RegisterValidation(tag, fn); err != nil {
		return err
	}
	return translate(tag, message)
}

// Validate runs struct validation and returns the first failure as a
// Validation error carrying the json field name
func Validate(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return perr.WithField(perr.Validationf("%s", fe.Translate(trans)), fe.Field())
	}
	logger.Get().Error().Err(err).Msg("validator misuse")
	return perr.JSONErrf("validation error")
}

// ParseJSON decodes the request body into T and validates it. Unknown
// fields and trailing data are rejected. GET and DELETE may omit the body.
func ParseJSON[T any](r *http.Request) (T, error) {
	var zero, dst T
	defer r.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(r.Body, MaxBody+1))
	switch {
	case err != nil:
		return zero, perr.JSONErrf("read body: %v", err)
	case len(raw) > MaxBody:
		return zero, perr.JSONErrf("body exceeds %d bytes", MaxBody)
	case len(bytes.TrimSpace(raw)) == 0:
		if r.Method == http.MethodGet || r.Method == http.MethodDelete {
			return zero, nil
		}
		return zero, perr.JSONErrf("empty body")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dst); err != nil {
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if reflect.Indirect(reflect.ValueOf(dst)).Kind() == reflect.Struct {
		if err := Validate(dst); err != nil {
			return zero, err
		}
	}
	return dst, nil
}
