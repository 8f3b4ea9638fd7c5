package mongodb

import (
	"context"

	"contactlog/internal/domain/entity"
	domainerrors "contactlog/internal/domain/errors"
	"contactlog/internal/domain/repository"
	"contactlog/internal/domain/validation"
	"contactlog/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	conn *Connection
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(conn *Connection) repository.ContactRepository {
	return &contactRepository{
		conn: conn,
	}
}

// Find returns every contact document in natural order.
func (repo *contactRepository) Find(ctx context.Context) ([]*entity.Contact, error) {
	coll, err := repo.conn.Collection(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to find contacts")
	}

	var docs []*contactDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to decode contacts")
	}

	contacts := make([]*entity.Contact, 0, len(docs))
	for _, doc := range docs {
		contacts = append(contacts, toContactDomain(doc))
	}

	return contacts, nil
}

// FindByID returns one contact or nil if absent.
func (repo *contactRepository) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	coll, err := repo.conn.Collection(ctx)
	if err != nil {
		return nil, err
	}

	var doc contactDocument
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find contact by id")
	}

	return toContactDomain(&doc), nil
}

// Create inserts a new document; the id is assigned by the store.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	if err := checkSchema(contact); err != nil {
		return nil, err
	}

	coll, err := repo.conn.Collection(ctx)
	if err != nil {
		return nil, err
	}

	doc := fromContactDomain(contact)
	result, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to create contact")
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, domainerrors.NewPersistenceError(nil, "store returned a non-ObjectID identifier")
	}
	doc.ID = oid

	return toContactDomain(doc), nil
}

// UpdateByID replaces the whole document and returns the stored result.
func (repo *contactRepository) UpdateByID(ctx context.Context, id string, contact *entity.Contact) (*entity.Contact, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := checkSchema(contact); err != nil {
		return nil, err
	}

	coll, err := repo.conn.Collection(ctx)
	if err != nil {
		return nil, err
	}

	replacement := fromContactDomain(contact)
	replacement.ID = oid

	var doc contactDocument
	err = coll.FindOneAndReplace(ctx, bson.M{"_id": oid}, replacement,
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to update contact")
	}

	return toContactDomain(&doc), nil
}

// DeleteByID removes the document and returns what was removed.
func (repo *contactRepository) DeleteByID(ctx context.Context, id string) (*entity.Contact, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	coll, err := repo.conn.Collection(ctx)
	if err != nil {
		return nil, err
	}

	var doc contactDocument
	if err := coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to delete contact")
	}

	return toContactDomain(&doc), nil
}

// ReplaceAll empties the collection and inserts contacts. Not atomic.
func (repo *contactRepository) ReplaceAll(ctx context.Context, contacts []*entity.Contact) error {
	docs := make([]any, 0, len(contacts))
	for _, contact := range contacts {
		if err := checkSchema(contact); err != nil {
			return err
		}
		docs = append(docs, fromContactDomain(contact))
	}

	coll, err := repo.conn.Collection(ctx)
	if err != nil {
		return err
	}

	if _, err := coll.DeleteMany(ctx, bson.D{}); err != nil {
		return domainerrors.NewPersistenceError(err, "failed to clear contacts")
	}

	if len(docs) == 0 {
		return nil
	}

	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return domainerrors.NewPersistenceError(err, "failed to insert contacts")
	}

	return nil
}

// parseID converts the opaque id into an ObjectID. An empty id matches nothing.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domainerrors.NewPersistenceError(
			errors.Wrap(repository.ErrInvalidContactID, err.Error()),
			"contact id must be a 24 character hex ObjectID",
		)
	}

	return oid, nil
}

func checkSchema(contact *entity.Contact) error {
	if contact == nil {
		return domainerrors.NewPersistenceError(nil, "contact is required")
	}
	if fieldErrs := validation.CheckSchema(contact); len(fieldErrs) > 0 {
		return domainerrors.NewPersistenceError(fieldErrs, "contact validation failed")
	}

	return nil
}
