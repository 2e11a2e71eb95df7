//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=riders_pending_get_test
package riders_pending_get

import (
	"context"

	"fastshift/internal/entities"
	"fastshift/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetApplicationsByStatus(ctx context.Context, status entities.ApplicationStatusType) ([]entities.RiderApplication, error)
}
