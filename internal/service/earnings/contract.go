//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=earnings_test
package earnings

import (
	"context"

	"fastshift/internal/entities"
)

type ParcelRepository interface {
	GetDeliveredByRider(ctx context.Context, riderEmail string) ([]entities.Parcel, error)
}
