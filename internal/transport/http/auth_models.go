package http

import (
	"time"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
)

// AuthUser is the sanitized user representation returned by auth
// endpoints; the password hash and salt never leave the service.
type AuthUser struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	Preferences []string  `json:"preferences"`
	IsAdmin     bool      `json:"is_admin"`
	CreatedAt   time.Time `json:"created_at"`
}

func toAuthUser(user *domain.User) AuthUser {
	return AuthUser{
		ID:          user.ID.String(),
		Email:       user.Email,
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		AvatarURL:   user.AvatarURL,
		Preferences: append([]string(nil), user.Preferences...),
		IsAdmin:     user.IsAdmin,
		CreatedAt:   user.CreatedAt,
	}
}
