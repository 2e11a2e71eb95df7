//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=authn_test
package authn

import (
	"fastshift/internal/entities"
	"fastshift/pkg/logger"
)

type TokenVerifier interface {
	Verify(tokenString string) (*entities.Identity, error)
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
