package role_reconcile

import (
	"context"
	"time"

	"fastshift/pkg/logger"
)

type Service interface {
	ReconcileRiderRoles(ctx context.Context) (int64, error)
}

// RoleReconcile периодически дотягивает роль rider пользователям с
// одобренной заявкой, если повышение роли когда-то не записалось.
type RoleReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewRoleReconcile(log logger.Logger, service Service, interval time.Duration) *RoleReconcile {
	return &RoleReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (r *RoleReconcile) TTL() time.Duration {
	return r.interval
}

func (r *RoleReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	promoted, err := r.service.ReconcileRiderRoles(ctxWithTimeout)

	if promoted > 0 {
		r.log.With(
			logger.NewField("promoted_users", promoted),
		).Info("role reconcile")
	}

	return err
}

func (r *RoleReconcile) Info() string {
	return "role reconcile"
}
