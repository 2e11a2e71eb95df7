//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcels_ready_get_test
package parcels_ready_get

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
	GetParcelsReadyForAssignment(ctx context.Context) ([]entities.Parcel, error)
}
