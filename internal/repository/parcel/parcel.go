package parcel

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fastshift/internal/entities"
	"fastshift/internal/repository"
	"fastshift/internal/service/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const parcelColumns = `id, title, type, weight, cost, tracking_id, created_by,
		sender_name, sender_contact, sender_region, sender_address,
		receiver_name, receiver_contact, receiver_region, receiver_address,
		payment_status, delivery_status, assigned_rider, picked_at, delivered_at, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanParcel(row pgx.Row, parcelModel *ParcelDB) error {
	return row.Scan(
		&parcelModel.ID,
		&parcelModel.Title,
		&parcelModel.Type,
		&parcelModel.Weight,
		&parcelModel.Cost,
		&parcelModel.TrackingID,
		&parcelModel.CreatedBy,
		&parcelModel.SenderName,
		&parcelModel.SenderContact,
		&parcelModel.SenderRegion,
		&parcelModel.SenderAddress,
		&parcelModel.ReceiverName,
		&parcelModel.ReceiverContact,
		&parcelModel.ReceiverRegion,
		&parcelModel.ReceiverAddress,
		&parcelModel.PaymentStatus,
		&parcelModel.DeliveryStatus,
		&parcelModel.AssignedRider,
		&parcelModel.PickedAt,
		&parcelModel.DeliveredAt,
		&parcelModel.CreatedAt,
	)
}

func (r *Repository) Create(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)

	query := `
		INSERT INTO parcels (title, type, weight, cost, tracking_id, created_by,
			sender_name, sender_contact, sender_region, sender_address,
			receiver_name, receiver_contact, receiver_region, receiver_address,
			payment_status, delivery_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + parcelColumns

	var parcelModel ParcelDB
	err := scanParcel(r.querier.QueryRow(
		ctx,
		query,
		parcelModifyModel.Title,
		parcelModifyModel.Type,
		parcelModifyModel.Weight,
		parcelModifyModel.Cost,
		parcelModifyModel.TrackingID,
		parcelModifyModel.CreatedBy,
		parcelModifyModel.SenderName,
		parcelModifyModel.SenderContact,
		parcelModifyModel.SenderRegion,
		parcelModifyModel.SenderAddress,
		parcelModifyModel.ReceiverName,
		parcelModifyModel.ReceiverContact,
		parcelModifyModel.ReceiverRegion,
		parcelModifyModel.ReceiverAddress,
		parcelModifyModel.PaymentStatus,
		parcelModifyModel.DeliveryStatus,
		parcelModifyModel.CreatedAt,
	), &parcelModel)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, parcel.ErrTrackingIDConflict
		}
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE id = $1`

	var parcelModel ParcelDB
	err := scanParcel(r.querier.QueryRow(ctx, query, id), &parcelModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository getbyid error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) GetByCreator(ctx context.Context, email string) ([]entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE created_by = $1
		ORDER BY created_at DESC`

	return r.queryList(ctx, query, email)
}

func (r *Repository) GetPaidNotCollected(ctx context.Context) ([]entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE payment_status = 'paid' AND delivery_status = 'not_collected'
		ORDER BY created_at ASC`

	return r.queryList(ctx, query)
}

func (r *Repository) GetActiveByRider(ctx context.Context, riderEmail string) ([]entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE assigned_rider = $1 AND delivery_status IN ('assigned', 'intransit')
		ORDER BY created_at ASC`

	return r.queryList(ctx, query, riderEmail)
}

func (r *Repository) GetDeliveredByRider(ctx context.Context, riderEmail string) ([]entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE assigned_rider = $1 AND delivery_status = 'delivered'
		ORDER BY delivered_at DESC`

	return r.queryList(ctx, query, riderEmail)
}

func (r *Repository) Update(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)

	builder := qb.
		Update("parcels")

	// опциональные поля
	if parcelModifyModel.Title != nil {
		builder = builder.Set("title", parcelModifyModel.Title)
	}
	if parcelModifyModel.Weight != nil {
		builder = builder.Set("weight", parcelModifyModel.Weight)
	}
	if parcelModifyModel.Cost != nil {
		builder = builder.Set("cost", parcelModifyModel.Cost)
	}
	if parcelModifyModel.PaymentStatus != nil {
		builder = builder.Set("payment_status", parcelModifyModel.PaymentStatus)
	}
	if parcelModifyModel.DeliveryStatus != nil {
		builder = builder.Set("delivery_status", parcelModifyModel.DeliveryStatus)
	}
	if parcelModifyModel.AssignedRider != nil {
		builder = builder.Set("assigned_rider", parcelModifyModel.AssignedRider)
	}
	if parcelModifyModel.PickedAt != nil {
		builder = builder.Set("picked_at", parcelModifyModel.PickedAt)
	}
	if parcelModifyModel.DeliveredAt != nil {
		builder = builder.Set("delivered_at", parcelModifyModel.DeliveredAt)
	}

	builder = builder.
		Where(sq.Eq{"id": parcelModifyModel.ID}).
		Suffix("RETURNING " + parcelColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	var parcelModel ParcelDB
	err = scanParcel(r.querier.QueryRow(ctx, query, args...), &parcelModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM parcels WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected parcel repository delete error: %w", err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		return parcel.ErrParcelNotFound
	}

	return nil
}

func (r *Repository) queryList(ctx context.Context, query string, args ...interface{}) ([]entities.Parcel, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, 8)
	for rows.Next() {
		var parcelModel ParcelDB
		if err := scanParcel(rows, &parcelModel); err != nil {
			return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
		}
		parcelModels = append(parcelModels, parcelModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	return ToDomainList(parcelModels), nil
}
