package payment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fastshift/internal/entities"
)

const paymentColumns = `id, parcel_id, payer_email, transaction_id, amount, method, paid_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanPayment(row pgx.Row, paymentModel *PaymentDB) error {
	return row.Scan(
		&paymentModel.ID,
		&paymentModel.ParcelID,
		&paymentModel.PayerEmail,
		&paymentModel.TransactionID,
		&paymentModel.Amount,
		&paymentModel.Method,
		&paymentModel.PaidAt,
	)
}

func (r *Repository) Create(ctx context.Context, paymentModifyEntity entities.PaymentModify) (*entities.Payment, error) {
	paymentModifyModel := FromDomainModify(&paymentModifyEntity)

	query := `
		INSERT INTO payments (parcel_id, payer_email, transaction_id, amount, method, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + paymentColumns

	var paymentModel PaymentDB
	err := scanPayment(r.querier.QueryRow(
		ctx,
		query,
		paymentModifyModel.ParcelID,
		paymentModifyModel.PayerEmail,
		paymentModifyModel.TransactionID,
		paymentModifyModel.Amount,
		paymentModifyModel.Method,
		paymentModifyModel.PaidAt,
	), &paymentModel)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return ToDomain(&paymentModel), nil
}

func (r *Repository) GetByParcelID(ctx context.Context, parcelID int64) ([]entities.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE parcel_id = $1
		ORDER BY paid_at DESC`

	return r.queryList(ctx, query, parcelID)
}

func (r *Repository) GetByPayer(ctx context.Context, payerEmail string) ([]entities.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE payer_email = $1
		ORDER BY paid_at DESC`

	return r.queryList(ctx, query, payerEmail)
}

func (r *Repository) queryList(ctx context.Context, query string, args ...interface{}) ([]entities.Payment, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository list error: %w", err)
	}
	defer rows.Close()

	paymentModels := make([]PaymentDB, 0, 8)
	for rows.Next() {
		var paymentModel PaymentDB
		if err := scanPayment(rows, &paymentModel); err != nil {
			return nil, fmt.Errorf("unexpected payment repository list error: %w", err)
		}
		paymentModels = append(paymentModels, paymentModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository list error: %w", err)
	}

	return ToDomainList(paymentModels), nil
}
