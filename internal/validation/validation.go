// Package validation checks form input with go-playground/validator and
// reports failures as per-field apperr.ValidationError values.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"logistics-backoffice/internal/apperr"
	"logistics-backoffice/internal/docnum"
	"logistics-backoffice/internal/domain"
)

var states = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {}, "ES": {}, "GO": {},
	"MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {}, "PB": {}, "PR": {}, "PE": {}, "PI": {},
	"RJ": {}, "RN": {}, "RS": {}, "RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

var messages = map[string]string{
	"required":        "is required",
	"notblank":        "must not be blank",
	"email":           "must be a valid email",
	"cpf":             "invalid CPF",
	"cnpj":            "invalid CNPJ",
	"cep":             "invalid postal code",
	"uf":              "invalid state",
	"delivery_status": "unknown delivery status",
	"latitude":        "must be a valid latitude",
	"longitude":       "must be a valid longitude",
	"email_or_blank":  "must be a valid email",
	"uf_or_blank":     "invalid state",
	"cep_or_blank":    "invalid postal code",
}

var validate = mustNew()

func mustNew() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	rules := map[string]validator.Func{
		"notblank": func(fl validator.FieldLevel) bool { return strings.TrimSpace(fl.Field().String()) != "" },
		"cpf":      func(fl validator.FieldLevel) bool { return docnum.ValidCPF(fl.Field().String()) },
		"cnpj":     func(fl validator.FieldLevel) bool { return docnum.ValidCNPJ(fl.Field().String()) },
		"cep":      func(fl validator.FieldLevel) bool { return docnum.ValidPostalCode(fl.Field().String()) },
		"uf": func(fl validator.FieldLevel) bool {
			_, ok := states[strings.ToUpper(fl.Field().String())]
			return ok
		},
		"delivery_status": func(fl validator.FieldLevel) bool {
			return domain.DeliveryStatus(fl.Field().String()).Valid()
		},
	}
	// Partial updates send "" to clear an optional field; omitempty does not
	// skip a non-nil pointer to "".
	for _, tag := range []string{"email", "uf", "cep"} {
		rules[tag+"_or_blank"] = orBlank(v, tag)
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s: %v", tag, err))
		}
	}
	return v
}

func orBlank(v *validator.Validate, tag string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || v.Var(s, tag) == nil
	}
}

// Struct validates s. It returns nil or an *apperr.ValidationError keyed by
// snake_case field name.
func Struct(s any) error {
	return translate(validate.Struct(s))
}

// Var validates a single value under the given field name.
func Var(field string, value any, tag string) error {
	err := translate(validate.Var(value, tag))
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		return apperr.NewValidation(field, firstMessage(ve))
	}
	return err
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", apperr.ErrInvalid, err)
	}
	out := &apperr.ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		name := fe.Field()
		if _, seen := out.Fields[name]; seen {
			continue
		}
		out.Fields[name] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	if m, ok := messages[fe.Tag()]; ok {
		return m
	}
	if fe.Param() != "" {
		return fmt.Sprintf("must satisfy %s=%s", fe.Tag(), fe.Param())
	}
	return "must satisfy " + fe.Tag()
}

func firstMessage(ve *apperr.ValidationError) string {
	for _, m := range ve.Fields {
		return m
	}
	return apperr.ErrInvalid.Error()
}

// fieldName prefers the db tag, then the json tag, then the snake_case Go name.
func fieldName(f reflect.StructField) string {
	for _, key := range []string{"db", "json"} {
		if tag := strings.Split(f.Tag.Get(key), ",")[0]; tag != "" && tag != "-" {
			return tag
		}
	}
	return snake(f.Name)
}

func snake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
