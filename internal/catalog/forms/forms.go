// Package forms owns field-level validation for the admin screens and the
// mapping from a validated submission to the API request bodies. A form that
// fails validation never reaches the network.
package forms

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Errors maps a field name to its human-readable violation message. An empty
// map means the form passed.
type Errors map[string]string

// Valid reports whether no field was rejected.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// collect runs struct validation and folds violations into Errors using the
// per-form message table. Unknown fields fall back to a generic message.
func collect(form any, messages map[string]string) Errors {
	errs := Errors{}
	err := validate.Struct(form)
	if err == nil {
		return errs
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "Invalid submission"
		return errs
	}
	for _, v := range violations {
		if msg, ok := messages[v.Field()]; ok {
			errs[fieldKey(v.Field())] = msg
			continue
		}
		errs[fieldKey(v.Field())] = "Invalid value"
	}
	return errs
}

func fieldKey(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Description":
		return "description"
	case "Price":
		return "price"
	case "CategoryID":
		return "category"
	case "Email":
		return "email"
	case "Image":
		return "image"
	default:
		return "form"
	}
}
