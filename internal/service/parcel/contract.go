//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"

	"fastshift/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error)
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	GetByCreator(ctx context.Context, email string) ([]entities.Parcel, error)
	GetPaidNotCollected(ctx context.Context) ([]entities.Parcel, error)
	GetActiveByRider(ctx context.Context, riderEmail string) ([]entities.Parcel, error)
	Update(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error)
	Delete(ctx context.Context, id int64) error
}

type CostFactory interface {
	Calculate(parcelType entities.ParcelType, weight *float64) float64
}

// Notifier канал уведомлений о переходах жизненного цикла.
// Реализация обязана быть best-effort: ошибки публикации не должны
// откатывать уже совершенный переход.
type Notifier interface {
	ParcelStatusChanged(ctx context.Context, event entities.ParcelEvent)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
