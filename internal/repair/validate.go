package repair

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Message keys carried by FieldError. The dashboard localizes them.
const (
	KeyRequired              = "validation.required"
	KeyLengthBetween         = "validation.length_between"
	KeyMaxLength             = "validation.max_length"
	KeyPositive              = "validation.positive"
	KeyInvalidChoice         = "validation.invalid_choice"
	KeyInvalidDate           = "validation.invalid_date"
	KeyCompletionBeforeStart = "validation.completion_before_start"
	KeyInvalidTransition     = "validation.invalid_transition"
)

// FieldError is one localizable problem with a submitted field.
type FieldError struct {
	Key  string
	Args []any
}

// FieldErrors maps form field names to their first problem.
type FieldErrors map[string]FieldError

// Error lists the failing fields in a stable order.
func (e FieldErrors) Error() string {
	fields := e.Fields()
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field].Key)
	}
	return "invalid fields: " + strings.Join(parts, ", ")
}

// Fields returns the failing field names sorted.
func (e FieldErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Err returns e as an error, or nil when no field failed.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// add keeps the first error reported for a field.
func (e FieldErrors) add(field, key string, args ...any) {
	if _, exists := e[field]; exists {
		return
	}
	e[field] = FieldError{Key: key, Args: args}
}

func (e FieldErrors) requireLength(field, value string, min, max int) {
	value = strings.TrimSpace(value)
	if value == "" {
		e.add(field, KeyRequired)
		return
	}
	if n := utf8.RuneCountInString(value); n < min || n > max {
		e.add(field, KeyLengthBetween, min, max)
	}
}

func (e FieldErrors) requireMaxLength(field, value string, max int) {
	value = strings.TrimSpace(value)
	if value == "" {
		e.add(field, KeyRequired)
		return
	}
	if utf8.RuneCountInString(value) > max {
		e.add(field, KeyMaxLength, max)
	}
}

func (e FieldErrors) requireText(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.add(field, KeyRequired)
	}
}

func (e FieldErrors) requirePositive(field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		e.add(field, KeyRequired)
		return
	}
	quantity, err := strconv.ParseFloat(value, 64)
	if err != nil || quantity <= 0 {
		e.add(field, KeyPositive)
	}
}

func validChoice[T ~string](value T, values []T) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
