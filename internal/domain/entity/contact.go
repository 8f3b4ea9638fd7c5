// Package entity contains the core business objects of the project.
package entity

// Contact is a person's name, email, phone and postal address.
// ID is assigned by the store on creation and never changes afterwards.
type Contact struct {
	ID          string  `json:"_id,omitempty"`
	Name        Name    `json:"name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Address     Address `json:"address"`
}

// Name holds the given and family name of a contact.
type Name struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Address is the postal address of a contact.
// HouseNumber keeps its textual form; it is constrained to the range 1-9999.
type Address struct {
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	City        string `json:"city"`
	ZipCode     string `json:"zipCode"`
}

// Clone returns an independent copy of the contact.
func (c *Contact) Clone() *Contact {
	if c == nil {
		return nil
	}
	cloned := *c

	return &cloned
}

// FullName joins first and last name.
func (c *Contact) FullName() string {
	if c.Name.LastName == "" {
		return c.Name.FirstName
	}
	if c.Name.FirstName == "" {
		return c.Name.LastName
	}

	return c.Name.FirstName + " " + c.Name.LastName
}

// BlankContact returns the empty template used for a new draft.
func BlankContact() Contact {
	return Contact{}
}
