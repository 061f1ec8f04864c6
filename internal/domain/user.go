package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles de acesso da aplicação
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

type AppUser struct {
	ID           string     `json:"id" mapstructure:"id"`
	Name         string     `json:"name" mapstructure:"name"`
	Lastname     string     `json:"lastname" mapstructure:"lastname"`
	Email        string     `json:"email" mapstructure:"email"`
	PasswordHash string     `json:"-" mapstructure:"password_hash"`
	Role         string     `json:"role" mapstructure:"role"`
	ClientID     string     `json:"client_id" mapstructure:"client_id"`
	Active       bool       `json:"active" mapstructure:"active"`
	AvatarURL    *string    `json:"avatar_url" mapstructure:"avatar_url"`
	Deleted      bool       `json:"deleted" mapstructure:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at" mapstructure:"-"`
	CreatedAt    time.Time  `json:"created_at" mapstructure:"-"`
	UpdatedAt    time.Time  `json:"updated_at" mapstructure:"-"`
}

type UpdateUserRequest struct {
	ID        string  `json:"id"`
	Name      *string `json:"name"`
	Lastname  *string `json:"lastname"`
	Email     *string `json:"email"`
	Active    *bool   `json:"active"`
	Role      *string `json:"role"`
	ClientID  *string `json:"client_id"`
	AvatarURL *string `json:"avatar_url"`
	Deleted   *bool   `json:"deleted"`
}

// Principal é a identidade já verificada que a camada de dados recebe.
// Usuários com role client carregam o ClientID do tenant ao qual pertencem.
type Principal struct {
	UID      string `json:"uid"`
	Role     string `json:"role"`
	ClientID string `json:"client_id"`
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

type Claims struct {
	UID          string  `json:"uid"`
	UserName     string  `json:"name"`
	UserLastname string  `json:"lastname"`
	UserEmail    string  `json:"email"`
	UserRole     string  `json:"role"`
	ClientID     string  `json:"client_id"`
	UserActive   bool    `json:"active"`
	AvatarURL    *string `json:"avatar_url"`
	jwt.RegisteredClaims
}

// Principal extrai a identidade de tenant das claims do token
func (c *Claims) Principal() Principal {
	return Principal{
		UID:      c.UID,
		Role:     c.UserRole,
		ClientID: c.ClientID,
	}
}
