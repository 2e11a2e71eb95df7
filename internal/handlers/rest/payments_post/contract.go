//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payments_post_test
package payments_post

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
	RecordPayment(ctx context.Context, paymentModifyEntity entities.PaymentModify) (*entities.Payment, error)
}
