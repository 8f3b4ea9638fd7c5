package mongodb

import (
	"context"
	"testing"

	"contactlog/internal/domain/entity"
	domainerrors "contactlog/internal/domain/errors"
	"contactlog/internal/domain/repository"
	"contactlog/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const testNamespace = "contact-log-test.contacts"

func newMockRepository(mt *mtest.T) repository.ContactRepository {
	conn := NewConnection(testConfig(), testLogger())
	conn.client = mt.Client

	return NewContactRepository(conn)
}

func contactBSON(oid primitive.ObjectID, first string) bson.D {
	return bson.D{
		{Key: "_id", Value: oid},
		{Key: "name", Value: bson.D{{Key: "firstName", Value: first}, {Key: "lastName", Value: "Parker"}}},
		{Key: "email", Value: "peter@example.com"},
		{Key: "phoneNumber", Value: "01701234567"},
		{Key: "address", Value: bson.D{
			{Key: "street", Value: "Ingram Street"},
			{Key: "houseNumber", Value: "20"},
			{Key: "city", Value: "Queens"},
			{Key: "zipCode", Value: "11375"},
		}},
	}
}

func draft(first string) *entity.Contact {
	return &entity.Contact{
		Name:        entity.Name{FirstName: first, LastName: "Parker"},
		Email:       "peter@example.com",
		PhoneNumber: "01701234567",
		Address: entity.Address{
			Street: "Ingram Street", HouseNumber: "20", City: "Queens", ZipCode: "11375",
		},
	}
}

func cursor(docs ...bson.D) bson.D {
	return mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch, docs...)
}

func commandNames(mt *mtest.T) []string {
	var names []string
	for _, evt := range mt.GetAllStartedEvents() {
		names = append(names, evt.CommandName)
	}

	return names
}

func TestContactRepository_Find(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("returns every document in store order", func(mt *mtest.T) {
		a, b := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(cursor(contactBSON(a, "Peter"), contactBSON(b, "Mary")))

		contacts, err := newMockRepository(mt).Find(ctx)

		require.NoError(mt, err)
		require.Len(mt, contacts, 2)
		assert.Equal(mt, a.Hex(), contacts[0].ID)
		assert.Equal(mt, "Mary", contacts[1].Name.FirstName)
		assert.Equal(mt, "11375", contacts[1].Address.ZipCode)
	})

	mt.Run("empty collection is an empty slice", func(mt *mtest.T) {
		mt.AddMockResponses(cursor())

		contacts, err := newMockRepository(mt).Find(ctx)

		require.NoError(mt, err)
		assert.NotNil(mt, contacts)
		assert.Empty(mt, contacts)
	})

	mt.Run("store failure is a persistence error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 13, Name: "Unauthorized", Message: "not authorized on contact-log-test",
		}))

		_, err := newMockRepository(mt).Find(ctx)

		require.Error(mt, err)
		assert.True(mt, domainerrors.IsPersistenceError(err))
	})
}

func TestContactRepository_CreateThenFind(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("the new record is the only addition", func(mt *mtest.T) {
		repo := newMockRepository(mt)
		existing := primitive.NewObjectID()

		mt.AddMockResponses(cursor(contactBSON(existing, "Mary")))
		before, err := repo.Find(ctx)
		require.NoError(mt, err)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		input := draft("Peter")
		input.ID = "client-chosen"
		created, err := repo.Create(ctx, input)
		require.NoError(mt, err)

		oid, err := primitive.ObjectIDFromHex(created.ID)
		require.NoError(mt, err, "store assigns an ObjectID")
		assert.Equal(mt, "Peter", created.Name.FirstName)

		mt.ClearEvents()
		mt.AddMockResponses(cursor(contactBSON(existing, "Mary"), contactBSON(oid, "Peter")))
		after, err := repo.Find(ctx)
		require.NoError(mt, err)

		assert.Len(mt, after, len(before)+1)
		assert.Equal(mt, before[0].ID, after[0].ID)
		assert.Equal(mt, created.ID, after[1].ID)
	})

	mt.Run("sends one document carrying the store id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		created, err := newMockRepository(mt).Create(ctx, draft("Peter"))
		require.NoError(mt, err)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "insert", evt.CommandName)
		docs, err := evt.Command.Lookup("documents").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, docs, 1)
		assert.Equal(mt, created.ID, docs[0].Document().Lookup("_id").ObjectID().Hex())
		assert.Equal(mt, "Queens", docs[0].Document().Lookup("address", "city").StringValue())
	})

	mt.Run("schema violation never reaches the store", func(mt *mtest.T) {
		input := draft("Peter")
		input.Email = ""

		_, err := newMockRepository(mt).Create(ctx, input)

		require.Error(mt, err)
		assert.True(mt, domainerrors.IsPersistenceError(err))
		assert.Empty(mt, commandNames(mt))
	})

	mt.Run("write error is a persistence error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 121, Message: "Document failed validation",
		}))

		_, err := newMockRepository(mt).Create(ctx, draft("Peter"))

		require.Error(mt, err)
		assert.True(mt, domainerrors.IsPersistenceError(err))
	})
}

func TestContactRepository_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("found", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(cursor(contactBSON(oid, "Peter")))

		contact, err := newMockRepository(mt).FindByID(ctx, oid.Hex())

		require.NoError(mt, err)
		require.NotNil(mt, contact)
		assert.Equal(mt, oid.Hex(), contact.ID)
	})

	mt.Run("absent is nil", func(mt *mtest.T) {
		mt.AddMockResponses(cursor())

		contact, err := newMockRepository(mt).FindByID(ctx, primitive.NewObjectID().Hex())

		require.NoError(mt, err)
		assert.Nil(mt, contact)
	})
}

func TestContactRepository_UpdateByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("replaces only the target document", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: contactBSON(oid, "Pete")}))

		updated, err := newMockRepository(mt).UpdateByID(ctx, oid.Hex(), draft("Pete"))

		require.NoError(mt, err)
		require.NotNil(mt, updated)
		assert.Equal(mt, oid.Hex(), updated.ID)
		assert.Equal(mt, "Pete", updated.Name.FirstName)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "findAndModify", evt.CommandName)
		assert.Equal(mt, oid, evt.Command.Lookup("query", "_id").ObjectID())
		assert.Equal(mt, oid, evt.Command.Lookup("update", "_id").ObjectID())
		assert.Equal(mt, "Pete", evt.Command.Lookup("update", "name", "firstName").StringValue())
		assert.True(mt, evt.Command.Lookup("new").Boolean(), "answers with the stored version")
	})

	mt.Run("absent id is nil", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		updated, err := newMockRepository(mt).UpdateByID(ctx, primitive.NewObjectID().Hex(), draft("Pete"))

		require.NoError(mt, err)
		assert.Nil(mt, updated)
	})

	mt.Run("schema violation never reaches the store", func(mt *mtest.T) {
		input := draft("Pete")
		input.Address.City = ""

		_, err := newMockRepository(mt).UpdateByID(ctx, primitive.NewObjectID().Hex(), input)

		require.Error(mt, err)
		assert.True(mt, domainerrors.IsPersistenceError(err))
		assert.Empty(mt, commandNames(mt))
	})
}

func TestContactRepository_DeleteByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("removes exactly the matching document", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: contactBSON(oid, "Peter")}))

		removed, err := newMockRepository(mt).DeleteByID(ctx, oid.Hex())

		require.NoError(mt, err)
		require.NotNil(mt, removed)
		assert.Equal(mt, oid.Hex(), removed.ID)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "findAndModify", evt.CommandName)
		assert.Equal(mt, oid, evt.Command.Lookup("query", "_id").ObjectID())
		assert.True(mt, evt.Command.Lookup("remove").Boolean())
	})

	mt.Run("absent id is nil", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		removed, err := newMockRepository(mt).DeleteByID(ctx, primitive.NewObjectID().Hex())

		require.NoError(mt, err)
		assert.Nil(mt, removed)
	})
}

func TestContactRepository_MalformedID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	cases := []struct {
		name string
		call func(repository.ContactRepository) error
	}{
		{"find by id", func(r repository.ContactRepository) error {
			_, err := r.FindByID(ctx, "42")

			return err
		}},
		{"update", func(r repository.ContactRepository) error {
			_, err := r.UpdateByID(ctx, "42", draft("Peter"))

			return err
		}},
		{"delete", func(r repository.ContactRepository) error {
			_, err := r.DeleteByID(ctx, "42")

			return err
		}},
	}

	for _, tc := range cases {
		mt.Run(tc.name, func(mt *mtest.T) {
			err := tc.call(newMockRepository(mt))

			require.Error(mt, err)
			assert.True(mt, domainerrors.IsPersistenceError(err))
			assert.True(mt, errors.Is(err, repository.ErrInvalidContactID))
			assert.Empty(mt, commandNames(mt))
		})
	}
}

func TestContactRepository_ReplaceAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("clears then inserts the fixtures", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}),
		)

		err := newMockRepository(mt).ReplaceAll(ctx, []*entity.Contact{draft("Peter"), draft("Mary")})
		require.NoError(mt, err)

		deleted := mt.GetStartedEvent()
		require.NotNil(mt, deleted)
		assert.Equal(mt, "delete", deleted.CommandName)

		inserted := mt.GetStartedEvent()
		require.NotNil(mt, inserted)
		assert.Equal(mt, "insert", inserted.CommandName)
		docs, err := inserted.Command.Lookup("documents").Array().Values()
		require.NoError(mt, err)
		assert.Len(mt, docs, 2)
	})

	mt.Run("no fixtures only clears", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}))

		require.NoError(mt, newMockRepository(mt).ReplaceAll(ctx, nil))
		assert.Equal(mt, []string{"delete"}, commandNames(mt))
	})

	mt.Run("invalid fixture leaves the collection alone", func(mt *mtest.T) {
		bad := draft("Mary")
		bad.PhoneNumber = ""

		err := newMockRepository(mt).ReplaceAll(ctx, []*entity.Contact{draft("Peter"), bad})

		require.Error(mt, err)
		assert.True(mt, domainerrors.IsPersistenceError(err))
		assert.Empty(mt, commandNames(mt))
	})
}
