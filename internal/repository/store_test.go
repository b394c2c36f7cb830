package repository

import (
	"context"
	"testing"

	"portfolio-backend/config"

	"github.com/stretchr/testify/assert"
)

func TestOpenDocumentStoreRequiresBothSettings(t *testing.T) {
	for _, cfg := range []*config.Config{
		{},
		{DatabaseURL: "mongodb://localhost:27017"},
		{DatabaseName: "portfolio"},
	} {
		store, err := OpenDocumentStore(context.Background(), cfg)
		assert.ErrorIs(t, err, ErrNotConfigured)
		assert.Nil(t, store)
	}
}

func TestOpenDocumentStoreRejectsUnknownScheme(t *testing.T) {
	cfg := &config.Config{DatabaseURL: "mysql://localhost/db", DatabaseName: "portfolio", DBConnectTimeoutSeconds: 1}

	_, err := OpenDocumentStore(context.Background(), cfg)
	assert.ErrorContains(t, err, "unsupported scheme")
}
