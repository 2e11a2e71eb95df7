package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fastshift/internal/entities"
	"fastshift/internal/repository"
	"fastshift/internal/service/user"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// экранирует спецсимволы LIKE во фрагменте поиска
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userModifyEntity entities.UserModify) (int64, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)
	query := `INSERT INTO users (email, name, photo_url, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		userModifyModel.Email,
		userModifyModel.Name,
		userModifyModel.PhotoURL,
		userModifyModel.Role,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, user.ErrConflict
		}
		return 0, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT id, email, name, photo_url, role, created_at
		FROM users
		WHERE email = $1`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, email).
		Scan(
			&userModel.ID,
			&userModel.Email,
			&userModel.Name,
			&userModel.PhotoURL,
			&userModel.Role,
			&userModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyemail error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) UpdateRole(ctx context.Context, email string, role entities.RoleType) (*entities.User, error) {
	query := `UPDATE users
		SET role = $2
		WHERE email = $1
		RETURNING id, email, name, photo_url, role, created_at`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, email, role.String()).
		Scan(
			&userModel.ID,
			&userModel.Email,
			&userModel.Name,
			&userModel.PhotoURL,
			&userModel.Role,
			&userModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository updaterole error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) SearchByEmail(ctx context.Context, fragment string, limit uint64) ([]entities.User, error) {
	builder := qb.
		Select("id", "email", "name", "photo_url", "role", "created_at").
		From("users").
		Where(sq.ILike{"email": "%" + likeEscaper.Replace(fragment) + "%"}).
		OrderBy("email ASC").
		Limit(limit)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository search error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository search error: %w", err)
	}
	defer rows.Close()

	userModels := make([]UserDB, 0, 8)
	for rows.Next() {
		var userModel UserDB
		err := rows.Scan(
			&userModel.ID,
			&userModel.Email,
			&userModel.Name,
			&userModel.PhotoURL,
			&userModel.Role,
			&userModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository search error: %w", err)
		}
		userModels = append(userModels, userModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository search error: %w", err)
	}

	return ToDomainList(userModels), nil
}
