package usecase

import (
	"context"
	"errors"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"go.uber.org/zap"
)

var errStoreUnavailable = errors.New("database not initialized")

type contactUsecase struct {
	store domain.DocumentStore
	now   func() time.Time
}

// NewContactUsecase creates a new contact usecase. store may be nil when no
// database is configured; submissions then fail with a persistence error.
func NewContactUsecase(store domain.DocumentStore) domain.ContactUsecase {
	return &contactUsecase{
		store: store,
		now:   time.Now,
	}
}

// Submit stores msg once. There is no retry.
func (uc *contactUsecase) Submit(ctx context.Context, msg domain.Message) (string, error) {
	if uc.store == nil {
		return "", apperror.Persistence(errStoreUnavailable)
	}

	now := uc.now().UTC()
	doc := domain.MessageDocument{
		Message:   msg,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := uc.store.InsertDocument(ctx, domain.MessageCollection, doc)
	if err != nil {
		logger.Log.Error("failed to save contact message", zap.Error(err))
		return "", apperror.Persistence(err)
	}

	logger.Log.Info("contact message saved", zap.String("id", id))
	return id, nil
}
