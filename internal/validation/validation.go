// Package validation is the single authoritative validation routine for
// credentials and meal fields. Handlers and services call into it; nothing
// else re-checks the same rules.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sbilibin2017/gw-meal-tracker/internal/models"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 20
	passwordMinLen = 6
	passwordMaxLen = 50
	mealNameMaxLen = 100
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// FieldError describes a single violated field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error collects every violated field of one request, not just the first.
type Error struct {
	Fields []FieldError `json:"fields"`
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *Error) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// orNil returns the error only if at least one field was violated.
func (e *Error) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Credentials validates a username/password pair for registration.
// Username: 3-20 characters, alphanumeric and underscore only.
// Password: 6-50 printable ASCII characters.
func Credentials(username, password string) error {
	var e Error

	switch {
	case len(username) < usernameMinLen || len(username) > usernameMaxLen:
		e.add("username", fmt.Sprintf("must be %d-%d characters", usernameMinLen, usernameMaxLen))
	case !usernameRe.MatchString(username):
		e.add("username", "must contain only letters, digits and underscore")
	}

	switch {
	case len(password) < passwordMinLen || len(password) > passwordMaxLen:
		e.add("password", fmt.Sprintf("must be %d-%d characters", passwordMinLen, passwordMaxLen))
	case !isPrintableASCII(password):
		e.add("password", "contains unsupported characters")
	}

	return e.orNil()
}

// Meal validates caller-supplied meal fields against all meal invariants.
func Meal(fields models.MealFields) error {
	var e Error

	name := strings.TrimSpace(fields.Name)
	switch {
	case name == "":
		e.add("name", "is required")
	case len(name) > mealNameMaxLen:
		e.add("name", fmt.Sprintf("must be at most %d characters", mealNameMaxLen))
	}

	if fields.Calories < 0 {
		e.add("calories", "must be 0 or greater")
	}
	if fields.Protein < 0 {
		e.add("protein", "must be 0 or greater")
	}
	if fields.Carbs < 0 {
		e.add("carbs", "must be 0 or greater")
	}
	if fields.Fat < 0 {
		e.add("fat", "must be 0 or greater")
	}

	if !models.IsValidMealType(fields.MealType) {
		e.add("meal_type", "must be one of breakfast, lunch, dinner, snack")
	}

	return e.orNil()
}

func isPrintableASCII(s string) bool {
	for _, r := range s {
		if r < 0x20 || r > 0x7e {
			return false
		}
	}
	return true
}
