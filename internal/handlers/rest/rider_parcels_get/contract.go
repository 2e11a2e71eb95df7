//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_parcels_get_test
package rider_parcels_get

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
	GetActiveParcelsByRider(ctx context.Context, riderEmail string) ([]entities.Parcel, error)
}
