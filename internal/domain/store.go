package domain

import "context"

// DocumentStore is the document database collaborator.
type DocumentStore interface {
	// InsertDocument writes doc into collection and returns the assigned identifier.
	InsertDocument(ctx context.Context, collection string, doc any) (string, error)
	// CollectionNames lists at most limit collection names.
	CollectionNames(ctx context.Context, limit int) ([]string, error)
	Close(ctx context.Context) error
}
