//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_assign_patch_test
package parcel_assign_patch

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
	AssignParcel(ctx context.Context, parcelID int64, riderEmail string) (*entities.Parcel, error)
}
