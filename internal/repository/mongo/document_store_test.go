package mongo

import (
	"context"
	"testing"
	"time"

	"portfolio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestDocumentStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert returns object id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		store := NewDocumentStore(mt.DB)

		doc := domain.MessageDocument{
			Message:   domain.Message{Name: "Ada", Email: "ada@example.com", Message: "Hello world"},
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}
		id, err := store.InsertDocument(context.Background(), domain.MessageCollection, doc)
		require.NoError(mt, err)
		assert.True(mt, primitive.IsValidObjectID(id))
	})

	mt.Run("insert failure is wrapped", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		store := NewDocumentStore(mt.DB)

		_, err := store.InsertDocument(context.Background(), domain.MessageCollection, bson.D{{Key: "name", Value: "Ada"}})
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "insert into message")
		assert.Contains(mt, err.Error(), "duplicate key error")
	})

	mt.Run("collection names are capped", func(mt *mtest.T) {
		ns := mt.DB.Name() + ".$cmd.listCollections"
		batch := make([]bson.D, 0, 12)
		for i := 0; i < 12; i++ {
			batch = append(batch, bson.D{{Key: "name", Value: "c" + string(rune('a'+i))}, {Key: "type", Value: "collection"}})
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, batch...))
		store := NewDocumentStore(mt.DB)

		names, err := store.CollectionNames(context.Background(), 10)
		require.NoError(mt, err)
		assert.Len(mt, names, 10)
		assert.Equal(mt, "ca", names[0])
	})

	mt.Run("collection listing error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized on portfolio",
		}))
		store := NewDocumentStore(mt.DB)

		_, err := store.CollectionNames(context.Background(), 10)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "not authorized")
	})
}
