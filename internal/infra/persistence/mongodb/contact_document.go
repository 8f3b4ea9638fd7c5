package mongodb

import (
	"contactlog/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// contactDocument is the stored shape of a contact.
type contactDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        nameDocument       `bson:"name"`
	Email       string             `bson:"email"`
	PhoneNumber string             `bson:"phoneNumber"`
	Address     addressDocument    `bson:"address"`
}

type nameDocument struct {
	FirstName string `bson:"firstName"`
	LastName  string `bson:"lastName"`
}

type addressDocument struct {
	Street      string `bson:"street"`
	HouseNumber string `bson:"houseNumber"`
	City        string `bson:"city"`
	ZipCode     string `bson:"zipCode"`
}

// --- Mapper Functions ---

// toContactDomain converts a stored document to a domain Contact.
func toContactDomain(doc *contactDocument) *entity.Contact {
	if doc == nil {
		return nil
	}

	return &entity.Contact{
		ID: doc.ID.Hex(),
		Name: entity.Name{
			FirstName: doc.Name.FirstName,
			LastName:  doc.Name.LastName,
		},
		Email:       doc.Email,
		PhoneNumber: doc.PhoneNumber,
		Address: entity.Address{
			Street:      doc.Address.Street,
			HouseNumber: doc.Address.HouseNumber,
			City:        doc.Address.City,
			ZipCode:     doc.Address.ZipCode,
		},
	}
}

// fromContactDomain converts a domain Contact to a document. The id is left for the caller.
func fromContactDomain(c *entity.Contact) *contactDocument {
	if c == nil {
		return nil
	}

	return &contactDocument{
		Name: nameDocument{
			FirstName: c.Name.FirstName,
			LastName:  c.Name.LastName,
		},
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Address: addressDocument{
			Street:      c.Address.Street,
			HouseNumber: c.Address.HouseNumber,
			City:        c.Address.City,
			ZipCode:     c.Address.ZipCode,
		},
	}
}
