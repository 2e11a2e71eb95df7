package rider

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fastshift/internal/entities"
	"fastshift/internal/repository"
	"fastshift/internal/service/rider"
)

const applicationColumns = `id, name, email, age, phone, national_id,
		region, district, address, bike_brand, bike_number, status, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanApplication(row pgx.Row, applicationModel *ApplicationDB) error {
	return row.Scan(
		&applicationModel.ID,
		&applicationModel.Name,
		&applicationModel.Email,
		&applicationModel.Age,
		&applicationModel.Phone,
		&applicationModel.NationalID,
		&applicationModel.Region,
		&applicationModel.District,
		&applicationModel.Address,
		&applicationModel.BikeBrand,
		&applicationModel.BikeNumber,
		&applicationModel.Status,
		&applicationModel.CreatedAt,
	)
}

func (r *Repository) Create(ctx context.Context, applicationModifyEntity entities.RiderApplicationModify) (int64, error) {
	applicationModifyModel := FromDomainModify(&applicationModifyEntity)
	query := `INSERT INTO rider_applications (name, email, age, phone, national_id,
			region, district, address, bike_brand, bike_number, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		applicationModifyModel.Name,
		applicationModifyModel.Email,
		applicationModifyModel.Age,
		applicationModifyModel.Phone,
		applicationModifyModel.NationalID,
		applicationModifyModel.Region,
		applicationModifyModel.District,
		applicationModifyModel.Address,
		applicationModifyModel.BikeBrand,
		applicationModifyModel.BikeNumber,
		applicationModifyModel.Status,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, rider.ErrConflict
		}
		return 0, fmt.Errorf("unexpected rider repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.RiderApplication, error) {
	query := `SELECT ` + applicationColumns + `
		FROM rider_applications
		WHERE id = $1`

	var applicationModel ApplicationDB
	err := scanApplication(r.querier.QueryRow(ctx, query, id), &applicationModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository getbyid error: %w", err)
	}

	return ToDomain(&applicationModel), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.RiderApplication, error) {
	// отмененные заявки не считаются: пользователь мог подать заново
	query := `SELECT ` + applicationColumns + `
		FROM rider_applications
		WHERE email = $1
		  AND status <> 'cancelled'`

	var applicationModel ApplicationDB
	err := scanApplication(r.querier.QueryRow(ctx, query, email), &applicationModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository getbyemail error: %w", err)
	}

	return ToDomain(&applicationModel), nil
}

func (r *Repository) GetAllByStatus(ctx context.Context, status entities.ApplicationStatusType) ([]entities.RiderApplication, error) {
	query := `SELECT ` + applicationColumns + `
		FROM rider_applications
		WHERE status = $1
		ORDER BY created_at ASC`

	rows, err := r.querier.Query(ctx, query, status.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository getallbystatus error: %w", err)
	}
	defer rows.Close()

	applicationModels := make([]ApplicationDB, 0, 8)
	for rows.Next() {
		var applicationModel ApplicationDB
		if err := scanApplication(rows, &applicationModel); err != nil {
			return nil, fmt.Errorf("unexpected rider repository getallbystatus error: %w", err)
		}
		applicationModels = append(applicationModels, applicationModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository getallbystatus error: %w", err)
	}

	return ToDomainList(applicationModels), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.ApplicationStatusType) (*entities.RiderApplication, error) {
	query := `UPDATE rider_applications
		SET status = $2
		WHERE id = $1
		RETURNING ` + applicationColumns

	var applicationModel ApplicationDB
	err := scanApplication(r.querier.QueryRow(ctx, query, id, status.String()), &applicationModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository updatestatus error: %w", err)
	}

	return ToDomain(&applicationModel), nil
}

// PromoteUsersWithActiveApplications дотягивает роль rider пользователям,
// у которых заявка уже active, а роль еще нет.
func (r *Repository) PromoteUsersWithActiveApplications(ctx context.Context) (int64, error) {
	query := `
		UPDATE users
		SET role = 'rider'
		WHERE role = 'user'
		AND EXISTS (
			SELECT 1
			FROM rider_applications
			WHERE rider_applications.email = users.email
			  AND rider_applications.status = 'active'
		)
	`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected rider repository promote error: %w", err)
	}

	return result.RowsAffected(), nil
}
