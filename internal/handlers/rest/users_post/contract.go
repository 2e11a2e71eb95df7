//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=users_post_test
package users_post

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
	EnsureUser(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, bool, error)
}
