//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"fastshift/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, userModifyEntity entities.UserModify) (int64, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdateRole(ctx context.Context, email string, role entities.RoleType) (*entities.User, error)
	SearchByEmail(ctx context.Context, fragment string, limit uint64) ([]entities.User, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
