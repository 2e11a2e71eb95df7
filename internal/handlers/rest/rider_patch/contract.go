//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_patch_test
package rider_patch

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
	ApproveApplication(ctx context.Context, applicationID int64) (*entities.RiderApplication, error)
	RejectApplication(ctx context.Context, applicationID int64) (*entities.RiderApplication, error)
}
