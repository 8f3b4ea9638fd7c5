package entity

import "github.com/pkg/errors"

// Field paths of a contact, in form order.
const (
	FieldFirstName   = "name.firstName"
	FieldLastName    = "name.lastName"
	FieldEmail       = "email"
	FieldPhoneNumber = "phoneNumber"
	FieldStreet      = "address.street"
	FieldHouseNumber = "address.houseNumber"
	FieldCity        = "address.city"
	FieldZipCode     = "address.zipCode"
)

// ErrUnknownField is returned for a field path that is not part of a contact.
var ErrUnknownField = errors.New("unknown contact field")

// ContactField gives uniform access to one nested attribute of a contact.
type ContactField struct {
	Path  string
	Label string
	get   func(c *Contact) string
	set   func(c *Contact, value string)
}

// Get reads the attribute from c.
func (f ContactField) Get(c *Contact) string {
	return f.get(c)
}

//nolint:gochecknoglobals
var contactFields = []ContactField{
	{
		Path:  FieldFirstName,
		Label: "First name",
		get:   func(c *Contact) string { return c.Name.FirstName },
		set:   func(c *Contact, v string) { c.Name.FirstName = v },
	},
	{
		Path:  FieldLastName,
		Label: "Last name",
		get:   func(c *Contact) string { return c.Name.LastName },
		set:   func(c *Contact, v string) { c.Name.LastName = v },
	},
	{
		Path:  FieldEmail,
		Label: "Email",
		get:   func(c *Contact) string { return c.Email },
		set:   func(c *Contact, v string) { c.Email = v },
	},
	{
		Path:  FieldPhoneNumber,
		Label: "Phone number",
		get:   func(c *Contact) string { return c.PhoneNumber },
		set:   func(c *Contact, v string) { c.PhoneNumber = v },
	},
	{
		Path:  FieldStreet,
		Label: "Street",
		get:   func(c *Contact) string { return c.Address.Street },
		set:   func(c *Contact, v string) { c.Address.Street = v },
	},
	{
		Path:  FieldHouseNumber,
		Label: "House number",
		get:   func(c *Contact) string { return c.Address.HouseNumber },
		set:   func(c *Contact, v string) { c.Address.HouseNumber = v },
	},
	{
		Path:  FieldCity,
		Label: "City",
		get:   func(c *Contact) string { return c.Address.City },
		set:   func(c *Contact, v string) { c.Address.City = v },
	},
	{
		Path:  FieldZipCode,
		Label: "Zip code",
		get:   func(c *Contact) string { return c.Address.ZipCode },
		set:   func(c *Contact, v string) { c.Address.ZipCode = v },
	},
}

// ContactFields returns every attribute accessor in form order.
func ContactFields() []ContactField {
	out := make([]ContactField, len(contactFields))
	copy(out, contactFields)

	return out
}

// LookupField finds the accessor for a field path.
func LookupField(path string) (ContactField, bool) {
	for _, f := range contactFields {
		if f.Path == path {
			return f, true
		}
	}

	return ContactField{}, false
}

// WithField returns a copy of c with the attribute at path replaced.
// c itself is left untouched.
func (c Contact) WithField(path, value string) (Contact, error) {
	f, ok := LookupField(path)
	if !ok {
		return c, errors.Wrapf(ErrUnknownField, "%q", path)
	}
	f.set(&c, value)

	return c, nil
}
