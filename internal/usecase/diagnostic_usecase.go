package usecase

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"go.uber.org/zap"
)

const maxListedCollections = 10

// DiagnosticSettings tells the probe which settings were provided. Only
// presence is reported.
type DiagnosticSettings struct {
	DatabaseURLSet  bool
	DatabaseNameSet bool
	Timeout         time.Duration
}

type diagnosticUsecase struct {
	store    domain.DocumentStore
	settings DiagnosticSettings
}

func NewDiagnosticUsecase(store domain.DocumentStore, settings DiagnosticSettings) domain.DiagnosticUsecase {
	return &diagnosticUsecase{
		store:    store,
		settings: settings,
	}
}

func (u *diagnosticUsecase) Run(ctx context.Context) (report domain.DiagnosticReport) {
	report = domain.NewDiagnosticReport()

	defer func() {
		if r := recover(); r != nil {
			logger.Log.Error("diagnostic probe panicked", zap.Any("panic", r))
			report.Database = domain.DatabaseError + apperror.Truncate(fmt.Sprint(r), apperror.MaxDetailLength)
		}
	}()

	report.DatabaseURL = presence(u.settings.DatabaseURLSet)
	report.DatabaseName = presence(u.settings.DatabaseNameSet)

	if u.store == nil {
		report.Database = domain.DatabaseNotInitialized
		return report
	}

	report.Database = domain.DatabaseAvailable
	report.ConnectionStatus = domain.ConnectionConnected

	if u.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.settings.Timeout)
		defer cancel()
	}

	names, err := u.store.CollectionNames(ctx, maxListedCollections)
	if err != nil {
		logger.Log.Warn("diagnostic probe failed", zap.Error(err))
		report.Database = domain.DatabaseConnectedError + apperror.Truncate(err.Error(), apperror.MaxDetailLength)
		return report
	}

	if len(names) > maxListedCollections {
		names = names[:maxListedCollections]
	}
	if names != nil {
		report.Collections = names
	}
	report.Database = domain.DatabaseWorking
	return report
}

func presence(set bool) string {
	if set {
		return domain.EnvSet
	}
	return domain.EnvNotSet
}
