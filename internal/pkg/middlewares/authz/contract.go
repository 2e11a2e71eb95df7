//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=authz_test
package authz

import (
	"context"

	"fastshift/internal/entities"
	"fastshift/pkg/logger"
)

type RoleResolver interface {
	ResolveRole(ctx context.Context, email string) (entities.RoleType, error)
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
