package user

import (
	"context"
	"errors"
	"fmt"

	"fastshift/internal/entities"
)

const searchLimit = 10

type User struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *User {
	return &User{
		repository: repository,
		txManager:  txManager,
	}
}

// EnsureUser создает пользователя при первом входе. Повторный вход с тем же
// email возвращает существующую запись без изменений.
func (s *User) EnsureUser(ctx context.Context, userModify entities.UserModify) (*entities.User, bool, error) {
	if userModify.Email == nil {
		return nil, false, ErrMissingRequiredFields
	}
	if !isValidEmail(*userModify.Email) {
		return nil, false, ErrInvalidEmail
	}

	existing, err := s.repository.GetByEmail(ctx, *userModify.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, false, fmt.Errorf("lookup user: %w", err)
	}

	if userModify.Role == nil {
		defaultRole := entities.DefaultRole
		userModify.Role = &defaultRole
	}

	id, err := s.repository.Create(ctx, userModify)
	if err != nil {
		// гонка двух первых входов: второй insert проигрывает по unique email
		if errors.Is(err, ErrConflict) {
			existing, lookupErr := s.repository.GetByEmail(ctx, *userModify.Email)
			if lookupErr != nil {
				return nil, false, fmt.Errorf("lookup user after conflict: %w", lookupErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create user: %w", err)
	}

	created, err := s.repository.GetByEmail(ctx, *userModify.Email)
	if err != nil {
		return nil, false, fmt.Errorf("lookup created user %d: %w", id, err)
	}
	return created, true, nil
}

func (s *User) GetUser(ctx context.Context, email string) (*entities.User, error) {
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	userEntity, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return userEntity, nil
}

// ResolveRole разрешает роль заново на каждый запрос (роль из токена не
// используется). Неизвестный пользователь и пользователь без роли получают
// роль по умолчанию.
func (s *User) ResolveRole(ctx context.Context, email string) (entities.RoleType, error) {
	if !isValidEmail(email) {
		return "", ErrInvalidEmail
	}

	userEntity, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return entities.DefaultRole, nil
		}
		return "", fmt.Errorf("resolve role: %w", err)
	}

	if userEntity.Role == "" {
		return entities.DefaultRole, nil
	}
	return userEntity.Role, nil
}

func (s *User) SetRole(ctx context.Context, email string, role entities.RoleType) (*entities.User, error) {
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !isValidRole(role.String()) {
		return nil, ErrInvalidRole
	}

	updated, err := s.repository.UpdateRole(ctx, email, role)
	if err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	return updated, nil
}

func (s *User) SearchUsers(ctx context.Context, fragment string) ([]entities.User, error) {
	if fragment == "" {
		return nil, ErrMissingRequiredFields
	}

	users, err := s.repository.SearchByEmail(ctx, fragment, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	return users, nil
}
