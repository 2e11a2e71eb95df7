package entities

import "time"

type User struct {
	ID        int64
	Email     string
	Name      string
	PhotoURL  string
	Role      RoleType
	CreatedAt time.Time
}

type RoleType string

const (
	RoleUser  RoleType = "user"
	RoleRider RoleType = "rider"
	RoleAdmin RoleType = "admin"
)

// DefaultRole назначается когда у пользователя нет сохраненной роли.
const DefaultRole = RoleUser

func (r RoleType) String() string {
	return string(r)
}

type UserModify struct {
	ID       *int64
	Email    *string
	Name     *string
	PhotoURL *string
	Role     *RoleType
}

// Identity проверенная личность из bearer-токена.
// Роль сюда намеренно не входит: она разрешается заново на каждый запрос.
type Identity struct {
	Subject string
	Email   string
}
