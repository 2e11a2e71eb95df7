//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"fastshift/internal/gateway/events"
	stripeGateway "fastshift/internal/gateway/stripe"
	"fastshift/internal/handlers/rest/parcel_assign_patch"
	"fastshift/internal/handlers/rest/parcel_delete"
	"fastshift/internal/handlers/rest/parcel_get"
	"fastshift/internal/handlers/rest/parcel_post"
	"fastshift/internal/handlers/rest/parcel_status_patch"
	"fastshift/internal/handlers/rest/parcels_get"
	"fastshift/internal/handlers/rest/parcels_ready_get"
	"fastshift/internal/handlers/rest/payment_intent_post"
	"fastshift/internal/handlers/rest/payments_get"
	"fastshift/internal/handlers/rest/payments_post"
	"fastshift/internal/handlers/rest/rider_completed_get"
	"fastshift/internal/handlers/rest/rider_parcels_get"
	"fastshift/internal/handlers/rest/rider_patch"
	"fastshift/internal/handlers/rest/rider_post"
	"fastshift/internal/handlers/rest/riders_active_get"
	"fastshift/internal/handlers/rest/riders_pending_get"
	"fastshift/internal/handlers/rest/user_role_get"
	"fastshift/internal/handlers/rest/user_role_patch"
	"fastshift/internal/handlers/rest/users_post"
	"fastshift/internal/handlers/rest/users_search_get"
	"fastshift/internal/handlers/tasks/role_reconcile"
	"fastshift/internal/pkg/config"
	"fastshift/internal/pkg/factory/parcel_cost"
	"fastshift/internal/pkg/kafka"
	"fastshift/internal/pkg/middlewares/authz"
	"fastshift/internal/pkg/token"

	parcelRepo "fastshift/internal/repository/parcel"
	paymentRepo "fastshift/internal/repository/payment"
	riderRepo "fastshift/internal/repository/rider"
	userRepo "fastshift/internal/repository/user"
	earningsService "fastshift/internal/service/earnings"
	parcelService "fastshift/internal/service/parcel"
	paymentService "fastshift/internal/service/payment"
	riderService "fastshift/internal/service/rider"
	userService "fastshift/internal/service/user"

	"fastshift/pkg/background"
	"fastshift/pkg/logger"
	"fastshift/pkg/querier"
	"fastshift/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ReconcileInterval time.Duration
)

type Application struct {
	ServiceParcel     ServiceParcel
	ServiceUser       ServiceUser
	ServiceRider      ServiceRider
	ServicePayment    ServicePayment
	ServiceEarnings   ServiceEarnings
	TokenVerifier     *token.Verifier
	BackgroundWorkers *background.Worker
}

type ServiceParcel interface {
	parcel_post.Service
	parcels_get.Service
	parcels_ready_get.Service
	parcel_get.Service
	parcel_delete.Service
	parcel_status_patch.Service
	rider_parcels_get.Service
}

type ServiceUser interface {
	users_post.Service
	user_role_get.Service
	users_search_get.Service
	user_role_patch.Service
	authz.RoleResolver
}

type ServiceRider interface {
	rider_post.Service
	rider_patch.Service
	riders_pending_get.Service
	riders_active_get.Service
	parcel_assign_patch.Service
}

type ServicePayment interface {
	payment_intent_post.Service
	payments_post.Service
	payments_get.Service
}

type ServiceEarnings interface {
	rider_completed_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReconcileInterval,
		provideTokenVerifier,

		provideParcelRepository,
		providePaymentRepository,
		provideUserRepository,
		provideRiderRepository,

		parcel_cost.New,
		provideNotifier,
		provideStripeGateway,

		provideServiceParcel,
		provideServiceUser,
		provideServiceRider,
		provideServicePayment,
		provideServiceEarnings,

		provideRoleReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceRider), new(*riderService.Rider)),
		wire.Bind(new(ServicePayment), new(*paymentService.Payment)),
		wire.Bind(new(ServiceEarnings), new(*earningsService.Earnings)),

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.CostFactory), new(*parcel_cost.CostFactory)),
		wire.Bind(new(parcelService.Notifier), new(*events.Notifier)),
		wire.Bind(new(paymentService.Repository), new(*paymentRepo.Repository)),
		wire.Bind(new(paymentService.ParcelService), new(*parcelService.Parcel)),
		wire.Bind(new(paymentService.IntentGateway), new(*stripeGateway.Gateway)),
		wire.Bind(new(paymentService.Notifier), new(*events.Notifier)),
		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(riderService.Repository), new(*riderRepo.Repository)),
		wire.Bind(new(riderService.UserService), new(*userService.User)),
		wire.Bind(new(riderService.ParcelService), new(*parcelService.Parcel)),
		wire.Bind(new(earningsService.ParcelRepository), new(*parcelRepo.Repository)),

		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),
		wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(userService.TxManager), new(*tx.Manager)),
		wire.Bind(new(riderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(role_reconcile.Service), new(*riderService.Rider)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideTokenVerifier(cfg *config.Config) *token.Verifier {
	return token.NewVerifier(cfg.Auth.JWTSecret)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideRiderRepository(querier *querier.Querier) *riderRepo.Repository {
	return riderRepo.New(querier)
}

func provideNotifier(log logger.Logger, producer *kafka.Producer, cfg *config.Config) *events.Notifier {
	return events.New(log, producer, cfg.Kafka.Topic)
}

func provideStripeGateway(cfg *config.Config) *stripeGateway.Gateway {
	client := &http.Client{Timeout: cfg.Payments.HTTPTimeout}
	return stripeGateway.New(client, cfg.Payments.ProviderURL, cfg.Payments.APIKey)
}

func provideServiceParcel(
	repository parcelService.Repository,
	costFactory parcelService.CostFactory,
	notifier parcelService.Notifier,
	txManager parcelService.TxManager,
) *parcelService.Parcel {
	return parcelService.New(repository, costFactory, notifier, txManager)
}

func provideServiceUser(
	repository userService.Repository,
	txManager userService.TxManager,
) *userService.User {
	return userService.New(repository, txManager)
}

func provideServiceRider(
	repository riderService.Repository,
	users riderService.UserService,
	parcels riderService.ParcelService,
	txManager riderService.TxManager,
) *riderService.Rider {
	return riderService.New(repository, users, parcels, txManager)
}

func provideServicePayment(
	repository paymentService.Repository,
	parcels paymentService.ParcelService,
	intentGateway paymentService.IntentGateway,
	notifier paymentService.Notifier,
	txManager paymentService.TxManager,
) *paymentService.Payment {
	return paymentService.New(repository, parcels, intentGateway, notifier, txManager)
}

func provideServiceEarnings(parcelRepository earningsService.ParcelRepository) *earningsService.Earnings {
	return earningsService.New(parcelRepository)
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.RiderRoleReconcileInterval)
}

func provideRoleReconcileTask(
	log logger.Logger,
	riders role_reconcile.Service,
	interval ReconcileInterval,
) *role_reconcile.RoleReconcile {
	return role_reconcile.NewRoleReconcile(log, riders, time.Duration(interval))
}

func provideTaskList(
	roleReconcileTask *role_reconcile.RoleReconcile,
) []background.Task {
	return []background.Task{
		roleReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
