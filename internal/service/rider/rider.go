package rider

import (
	"context"
	"fmt"

	"fastshift/internal/entities"
)

type Rider struct {
	repository    Repository
	userService   UserService
	parcelService ParcelService
	txManager     TxManager
}

func New(repository Repository, userService UserService, parcelService ParcelService, txManager TxManager) *Rider {
	return &Rider{
		repository:    repository,
		userService:   userService,
		parcelService: parcelService,
		txManager:     txManager,
	}
}

func (s *Rider) SubmitApplication(ctx context.Context, applicationModify entities.RiderApplicationModify) (int64, error) {
	if applicationModify.Name == nil ||
		applicationModify.Email == nil ||
		applicationModify.Age == nil ||
		applicationModify.Phone == nil ||
		applicationModify.NationalID == nil ||
		applicationModify.Region == nil ||
		applicationModify.District == nil ||
		applicationModify.Address == nil ||
		applicationModify.BikeBrand == nil ||
		applicationModify.BikeNumber == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidEmail(*applicationModify.Email) {
		return 0, ErrInvalidEmail
	}
	if !isValidAge(*applicationModify.Age) {
		return 0, ErrInvalidAge
	}
	for _, field := range []string{
		*applicationModify.Name, *applicationModify.Phone,
		*applicationModify.NationalID, *applicationModify.Region,
		*applicationModify.District, *applicationModify.Address,
		*applicationModify.BikeBrand, *applicationModify.BikeNumber,
	} {
		if !isValidField(field) {
			return 0, ErrMissingRequiredFields
		}
	}

	// статус задает сервер, что бы ни прислал клиент
	pending := entities.ApplicationPending
	applicationModify.Status = &pending

	id, err := s.repository.Create(ctx, applicationModify)
	if err != nil {
		return 0, fmt.Errorf("create rider application: %w", err)
	}

	return id, nil
}

// ApproveApplication переводит заявку pending -> active и повышает роль
// пользователя до rider одной транзакцией: одобренная заявка без повышения
// роли (или наоборот) наружу не наблюдаема.
func (s *Rider) ApproveApplication(ctx context.Context, applicationID int64) (*entities.RiderApplication, error) {
	if applicationID <= 0 {
		return nil, ErrInvalidApplicationID
	}

	var approved *entities.RiderApplication
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		application, err := s.repository.GetByID(ctx, applicationID)
		if err != nil {
			return fmt.Errorf("get application: %w", err)
		}

		if application.Status != entities.ApplicationPending {
			return fmt.Errorf("%w: status is %s", ErrAlreadyProcessed, application.Status)
		}

		approved, err = s.repository.UpdateStatus(ctx, applicationID, entities.ApplicationActive)
		if err != nil {
			return fmt.Errorf("update application status: %w", err)
		}

		_, err = s.userService.SetRole(ctx, application.Email, entities.RoleRider)
		if err != nil {
			return fmt.Errorf("promote user to rider: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return approved, nil
}

func (s *Rider) RejectApplication(ctx context.Context, applicationID int64) (*entities.RiderApplication, error) {
	if applicationID <= 0 {
		return nil, ErrInvalidApplicationID
	}

	var rejected *entities.RiderApplication
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		application, err := s.repository.GetByID(ctx, applicationID)
		if err != nil {
			return fmt.Errorf("get application: %w", err)
		}

		if application.Status != entities.ApplicationPending {
			return fmt.Errorf("%w: status is %s", ErrAlreadyProcessed, application.Status)
		}

		rejected, err = s.repository.UpdateStatus(ctx, applicationID, entities.ApplicationCancelled)
		if err != nil {
			return fmt.Errorf("update application status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rejected, nil
}

func (s *Rider) GetApplicationsByStatus(ctx context.Context, status entities.ApplicationStatusType) ([]entities.RiderApplication, error) {
	if !isValidApplicationStatus(status.String()) {
		return nil, ErrInvalidStatus
	}

	applications, err := s.repository.GetAllByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get applications: %w", err)
	}

	return applications, nil
}

// AssignParcel перед назначением заново проверяет и роль пользователя,
// и статус заявки: оба признака пишутся вместе при одобрении, но между
// ними возможен дрейф, поэтому на назначении сверяются оба.
func (s *Rider) AssignParcel(ctx context.Context, parcelID int64, riderEmail string) (*entities.Parcel, error) {
	if !isValidEmail(riderEmail) {
		return nil, ErrInvalidEmail
	}

	role, err := s.userService.ResolveRole(ctx, riderEmail)
	if err != nil {
		return nil, fmt.Errorf("resolve rider role: %w", err)
	}
	if role != entities.RoleRider {
		return nil, fmt.Errorf("%w: role is %s", ErrInvalidRider, role)
	}

	application, err := s.repository.GetByEmail(ctx, riderEmail)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRider, riderEmail)
	}
	if application.Status != entities.ApplicationActive {
		return nil, fmt.Errorf("%w: application status is %s", ErrInvalidRider, application.Status)
	}

	assigned, err := s.parcelService.AssignRider(ctx, parcelID, riderEmail)
	if err != nil {
		return nil, err
	}

	return assigned, nil
}

// ReconcileRiderRoles чинит расхождение "заявка active, роль не rider",
// возможное при сбое между двумя записями. Выполняется фоновой задачей.
func (s *Rider) ReconcileRiderRoles(ctx context.Context) (int64, error) {
	promoted, err := s.repository.PromoteUsersWithActiveApplications(ctx)
	if err != nil {
		return 0, fmt.Errorf("reconcile rider roles: %w", err)
	}

	return promoted, nil
}
