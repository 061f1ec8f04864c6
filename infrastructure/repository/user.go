package repository

import (
	"fmt"
	"time"

	"github.com/lojalytics/dashboard-api/infrastructure/docstore"
	"github.com/lojalytics/dashboard-api/internal/domain"
	"github.com/mitchellh/mapstructure"
)

type UserRepository interface {
	CreateUser(user *domain.AppUser) (*domain.AppUser, error)
	UpdateUser(user *domain.AppUser) error
	GetUserByEmail(email string) (*domain.AppUser, error)
	GetUserByID(userID string) (*domain.AppUser, error)
	ListUsers() ([]*domain.AppUser, error)
	ListUsersByClient(clientID string) ([]*domain.AppUser, error)
}

type userRepository struct {
	store docstore.Store
}

func NewUserRepository(store docstore.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) CreateUser(user *domain.AppUser) (*domain.AppUser, error) {
	if err := r.store.SetDocument(usersCollection, user.ID, serializeUser(user)); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) UpdateUser(user *domain.AppUser) error {
	return r.store.SetDocument(usersCollection, user.ID, serializeUser(user))
}

// GetUserByEmail varre a coleção de usuários. O volume de usuários por
// instalação é pequeno, então a varredura é aceitável.
func (r *userRepository) GetUserByEmail(email string) (*domain.AppUser, error) {
	users, err := r.ListUsers()
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.Email == email && !user.Deleted {
			return user, nil
		}
	}

	return nil, nil
}

func (r *userRepository) GetUserByID(userID string) (*domain.AppUser, error) {
	doc, err := r.store.GetDocument(usersCollection, userID)
	if err != nil || doc == nil {
		return nil, err
	}

	return decodeUser(doc)
}

func (r *userRepository) ListUsers() ([]*domain.AppUser, error) {
	docs, err := r.store.ListDocuments(usersCollection)
	if err != nil {
		return nil, err
	}

	users := make([]*domain.AppUser, 0, len(docs))
	for _, doc := range docs {
		user, err := decodeUser(doc)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *userRepository) ListUsersByClient(clientID string) ([]*domain.AppUser, error) {
	users, err := r.ListUsers()
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.AppUser, 0, len(users))
	for _, user := range users {
		if user.ClientID == clientID {
			filtered = append(filtered, user)
		}
	}

	return filtered, nil
}

func serializeUser(user *domain.AppUser) map[string]any {
	data := map[string]any{
		"id":            user.ID,
		"name":          user.Name,
		"lastname":      user.Lastname,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"role":          user.Role,
		"client_id":     user.ClientID,
		"active":        user.Active,
		"deleted":       user.Deleted,
	}

	if user.AvatarURL != nil {
		data["avatar_url"] = *user.AvatarURL
	}

	if user.DeletedAt != nil {
		data["deleted_at"] = user.DeletedAt.Format(time.RFC3339)
	}

	return data
}

func decodeUser(doc *docstore.Document) (*domain.AppUser, error) {
	user := &domain.AppUser{}
	if err := mapstructure.Decode(doc.Data, user); err != nil {
		return nil, fmt.Errorf("erro ao decodificar usuário %s: %w", doc.ID, err)
	}

	user.ID = doc.ID
	user.CreatedAt = doc.CreatedAt
	user.UpdatedAt = doc.UpdatedAt

	if raw, ok := doc.Data["deleted_at"].(string); ok {
		if deletedAt, err := time.Parse(time.RFC3339, raw); err == nil {
			user.DeletedAt = &deletedAt
		}
	}

	return user, nil
}
