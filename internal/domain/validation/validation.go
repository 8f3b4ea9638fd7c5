// Package validation holds the declarative field constraints of a contact.
//
// Constraints are expressed as go-playground/validator tags and evaluated
// per field, so every check is a function of the field value alone.
package validation

import (
	"strconv"
	"strings"

	"contactlog/internal/domain/entity"
	"contactlog/internal/errors"

	"github.com/go-playground/validator/v10"
)

const (
	minHouseNumber = 1
	maxHouseNumber = 9999
)

// Rule binds a field path to its constraint.
type Rule struct {
	Field   string
	Tag     string
	Message string
}

// FormRules are the constraints a draft must satisfy before it is submitted.
//
//nolint:gochecknoglobals
var FormRules = []Rule{
	{Field: entity.FieldFirstName, Tag: "required,min=3,max=30", Message: "first name must be 3-30 characters"},
	{Field: entity.FieldLastName, Tag: "required,min=3,max=30", Message: "last name must be 3-30 characters"},
	{Field: entity.FieldEmail, Tag: "required,email,max=50", Message: "email must be a valid address of at most 50 characters"},
	{Field: entity.FieldPhoneNumber, Tag: "required,digits,min=10,max=15", Message: "phone number must be 10-15 digits"},
	{Field: entity.FieldStreet, Tag: "required,min=3,max=50", Message: "street must be 3-50 characters"},
	{Field: entity.FieldHouseNumber, Tag: "required,housenumber", Message: "house number must be between 1 and 9999"},
	{Field: entity.FieldCity, Tag: "required,min=3,max=50", Message: "city must be 3-50 characters"},
	{Field: entity.FieldZipCode, Tag: "required,len=5,digits", Message: "zip code must be exactly 5 digits"},
}

// SchemaRules are enforced by the store on every write: all attributes present,
// email bounded to 50 characters.
//
//nolint:gochecknoglobals
var SchemaRules = []Rule{
	{Field: entity.FieldFirstName, Tag: "required", Message: "name.firstName is required"},
	{Field: entity.FieldLastName, Tag: "required", Message: "name.lastName is required"},
	{Field: entity.FieldEmail, Tag: "required,max=50", Message: "email is required and limited to 50 characters"},
	{Field: entity.FieldPhoneNumber, Tag: "required", Message: "phoneNumber is required"},
	{Field: entity.FieldStreet, Tag: "required", Message: "address.street is required"},
	{Field: entity.FieldHouseNumber, Tag: "required", Message: "address.houseNumber is required"},
	{Field: entity.FieldCity, Tag: "required", Message: "address.city is required"},
	{Field: entity.FieldZipCode, Tag: "required", Message: "address.zipCode is required"},
}

//nolint:gochecknoglobals
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("digits", isDigits)
	_ = v.RegisterValidation("housenumber", isHouseNumber)

	return v
}

func isDigits(fl validator.FieldLevel) bool {
	return onlyDigits(fl.Field().String())
}

func isHouseNumber(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !onlyDigits(value) {
		return false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return false
	}

	return n >= minHouseNumber && n <= maxHouseNumber
}

func onlyDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// FieldError flags one invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// FieldErrors is the set of invalid fields of one contact, in rule order.
type FieldErrors []FieldError

// Error implements the error interface
func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, e := range fe {
		msgs = append(msgs, e.Field+": "+e.Message)
	}

	return "invalid contact: " + strings.Join(msgs, "; ")
}

// Has reports whether field is flagged.
func (fe FieldErrors) Has(field string) bool {
	for _, e := range fe {
		if e.Field == field {
			return true
		}
	}

	return false
}

// Fields lists the flagged field paths.
func (fe FieldErrors) Fields() []string {
	out := make([]string, 0, len(fe))
	for _, e := range fe {
		out = append(out, e.Field)
	}

	return out
}

// Check evaluates FormRules against c. An empty result means the draft is valid.
func Check(c *entity.Contact) FieldErrors {
	return evaluate(FormRules, c)
}

// CheckSchema evaluates SchemaRules against c.
func CheckSchema(c *entity.Contact) FieldErrors {
	return evaluate(SchemaRules, c)
}

// CheckField evaluates the form constraint of a single field.
// ok is false when the path has no rule.
func CheckField(field, value string) (fieldErr *FieldError, ok bool) {
	for _, rule := range FormRules {
		if rule.Field == field {
			return checkRule(rule, value), true
		}
	}

	return nil, false
}

func evaluate(rules []Rule, c *entity.Contact) FieldErrors {
	var errs FieldErrors
	for _, rule := range rules {
		f, ok := entity.LookupField(rule.Field)
		if !ok {
			continue
		}
		if fieldErr := checkRule(rule, f.Get(c)); fieldErr != nil {
			errs = append(errs, *fieldErr)
		}
	}

	return errs
}

func checkRule(rule Rule, value string) *FieldError {
	err := validate.Var(value, rule.Tag)
	if err == nil {
		return nil
	}

	tag := rule.Tag
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		tag = validationErrs[0].Tag()
	}

	return &FieldError{
		Field:   rule.Field,
		Tag:     tag,
		Message: rule.Message,
	}
}
