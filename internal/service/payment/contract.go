//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"fastshift/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, paymentModifyEntity entities.PaymentModify) (*entities.Payment, error)
	GetByParcelID(ctx context.Context, parcelID int64) ([]entities.Payment, error)
	GetByPayer(ctx context.Context, payerEmail string) ([]entities.Payment, error)
}

type ParcelService interface {
	MarkPaid(ctx context.Context, parcelID int64) (*entities.Parcel, error)
}

// Notifier канал уведомлений об оплате. Публикация происходит после
// фиксации транзакции: откатившийся платеж событие не порождает.
type Notifier interface {
	ParcelStatusChanged(ctx context.Context, event entities.ParcelEvent)
}

type IntentGateway interface {
	CreateIntent(ctx context.Context, amount float64, currency string) (*entities.PaymentIntent, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
