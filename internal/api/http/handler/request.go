package handler

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Issue is a single field-level validation problem.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// CreateEmployeeRequest is the JSON payload for employee creation.
type CreateEmployeeRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"contains=@"`
}

var issueMessages = map[string]string{
	"firstName": "Förnamn krävs",
	"lastName":  "Efternamn krävs",
	"email":     "E-post måste innehålla '@'",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report issues under the JSON field names, not the Go ones
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Normalize trims the names and trims and lower-cases the email,
// matching the stored form. Must run before Validate.
func (r *CreateEmployeeRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// Validate checks the normalized request and returns one issue per
// failing field. All fields are checked; nothing short-circuits.
func (r *CreateEmployeeRequest) Validate() []Issue {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Issue{{Path: "", Message: "Ogiltig begäran"}}
	}

	return lo.Map(verrs, func(fe validator.FieldError, _ int) Issue {
		return Issue{Path: fe.Field(), Message: issueMessages[fe.Field()]}
	})
}
