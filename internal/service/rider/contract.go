//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_test
package rider

import (
	"context"

	"fastshift/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, applicationModifyEntity entities.RiderApplicationModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.RiderApplication, error)
	GetByEmail(ctx context.Context, email string) (*entities.RiderApplication, error)
	GetAllByStatus(ctx context.Context, status entities.ApplicationStatusType) ([]entities.RiderApplication, error)
	UpdateStatus(ctx context.Context, id int64, status entities.ApplicationStatusType) (*entities.RiderApplication, error)

	PromoteUsersWithActiveApplications(ctx context.Context) (int64, error)
}

type UserService interface {
	ResolveRole(ctx context.Context, email string) (entities.RoleType, error)
	SetRole(ctx context.Context, email string, role entities.RoleType) (*entities.User, error)
}

type ParcelService interface {
	AssignRider(ctx context.Context, parcelID int64, riderEmail string) (*entities.Parcel, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
