package user

import "fastshift/internal/entities"

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	userEntity := &entities.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      entities.RoleType(u.Role),
		CreatedAt: u.CreatedAt,
	}
	if u.PhotoURL != nil {
		userEntity.PhotoURL = *u.PhotoURL
	}
	return userEntity
}

func FromDomainModify(userModify *entities.UserModify) *UserModifyDB {
	if userModify == nil {
		return nil
	}
	userDB := &UserModifyDB{}

	if userModify.ID != nil {
		userDB.ID = userModify.ID
	}
	if userModify.Email != nil {
		userDB.Email = userModify.Email
	}
	if userModify.Name != nil {
		userDB.Name = userModify.Name
	}
	if userModify.PhotoURL != nil {
		userDB.PhotoURL = userModify.PhotoURL
	}
	if userModify.Role != nil {
		role := userModify.Role.String()
		userDB.Role = &role
	}

	return userDB
}

func ToDomainList(usersDB []UserDB) []entities.User {
	if len(usersDB) == 0 {
		return []entities.User{}
	}

	result := make([]entities.User, len(usersDB))
	for i, userDB := range usersDB {
		result[i] = *ToDomain(&userDB)
	}
	return result
}
