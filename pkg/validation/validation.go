// Package validation turns the tag-annotated DTO shapes into runtime
// schemas: parsing an input either yields the normalized value (defaults
// applied) or a single validation error enumerating every violated field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/meucofre/meucofre/pkg/domain"
)

var yyyymmRegex = regexp.MustCompile(`^\d{6}$`)

// FieldErrors maps a field path (json names, dot separated) to the reasons
// it was rejected.
type FieldErrors map[string][]string

// Error is the single failure kind of this layer. It wraps
// domain.ErrValidation so callers can match it with errors.Is.
type Error struct {
	Fields FieldErrors
}

func (e *Error) Error() string {
	paths := make([]string, 0, len(e.Fields))
	for p := range e.Fields {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	parts := make([]string, 0, len(paths))
	for _, p := range paths {
		parts = append(parts, p+": "+strings.Join(e.Fields[p], "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Is lets errors.Is(err, domain.ErrValidation) match.
func (e *Error) Is(target error) bool {
	return target == domain.ErrValidation
}

// Validator wraps a configured go-playground validator. It is safe for
// concurrent use and should be constructed once.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator with the ledger's custom rules registered and
// field names taken from json tags.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Statement/competence months are 6-digit yyyymm strings.
	if err := v.RegisterValidation("yyyymm", func(fl validator.FieldLevel) bool {
		return yyyymmRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return &Validator{v: v}
}

type defaulter interface {
	ApplyDefaults()
}

// Parse validates in and returns it with documented defaults applied.
// On failure it returns a *Error listing every violated field; validation
// is exhaustive, not first-failure. Parsing an already-normalized value is
// idempotent.
func Parse[T any](va *Validator, in T) (T, error) {
	if d, ok := any(&in).(defaulter); ok {
		d.ApplyDefaults()
	}
	if err := va.v.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return in, collect(verrs)
		}
		return in, err
	}
	return in, nil
}

func collect(verrs validator.ValidationErrors) *Error {
	fields := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		path := fieldPath(fe)
		fields[path] = append(fields[path], reason(fe))
	}
	return &Error{Fields: fields}
}

// fieldPath strips the root struct name from the namespace, leaving the
// json path: "AccountCreate.billing.closingDay" -> "billing.closingDay".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		if fe.Param() == "0" {
			return "must be a non-negative integer"
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return "must be one of " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "yyyymm":
		return "Use yyyymm"
	case "number":
		return "must contain only digits"
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
