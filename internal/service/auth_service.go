package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/idtoken"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
	"github.com/fortistravel/fortis-tourism-backend/internal/repository/ports"
	"github.com/fortistravel/fortis-tourism-backend/internal/util"
)

var (
	// ErrInvalidCredentials deliberately covers both unknown-email and
	// wrong-password failures so login responses never reveal whether
	// an email is registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrSessionInvalid     = errors.New("session expired or revoked")
)

type RegisterInput struct {
	Email       string
	Password    string
	Username    string
	FirstName   string
	LastName    string
	Preferences []string
}

type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionRepository
	jwt       *util.JWTManager
	tokenTTL  time.Duration
	googleAud string
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, jwt *util.JWTManager, tokenTTL time.Duration, googleAud string) *AuthService {
	return &AuthService{
		users:     users,
		sessions:  sessions,
		jwt:       jwt,
		tokenTTL:  tokenTTL,
		googleAud: googleAud,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, NewValidationError("email is required")
	}
	if err := util.ValidatePassword(input.Password); err != nil {
		return nil, NewValidationError(err.Error())
	}

	hash, salt, err := util.DerivePassword(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, ports.NewUser{
		Email:        email,
		Username:     strings.TrimSpace(input.Username),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Preferences:  input.Preferences,
		PasswordHash: hash,
		PasswordSalt: salt,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a token backed by a session
// row. Both failure paths run the same argon2 derivation so response
// timing does not separate unknown emails from wrong passwords.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if isNotFound(err) {
			util.VerifyPassword(password, decoySalt, decoyHash)
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}

	if !util.VerifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// LoginWithGoogle validates a Google ID token and signs the user in,
// creating the account on first login.
func (s *AuthService) LoginWithGoogle(ctx context.Context, idTok string) (*domain.User, string, time.Time, error) {
	payload, err := idtoken.Validate(ctx, idTok, s.googleAud)
	if err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	givenName, _ := payload.Claims["given_name"].(string)
	familyName, _ := payload.Claims["family_name"].(string)

	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if !isNotFound(err) {
			return nil, "", time.Time{}, err
		}
		user, err = s.users.Create(ctx, ports.NewUser{
			Email:     strings.ToLower(email),
			Username:  strings.SplitN(email, "@", 2)[0],
			FirstName: givenName,
			LastName:  familyName,
		})
		if err != nil {
			return nil, "", time.Time{}, err
		}
	}

	token, expiresAt, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// Authenticate resolves a bearer token to its user. The token must both
// parse and match an active session row, so logout revokes it
// immediately regardless of its JWT expiry.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return nil, ErrSessionInvalid
	}

	session, err := s.sessions.FindActiveSession(ctx, token)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}
	if session.UserID != claims.UserID {
		return nil, ErrSessionInvalid
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.DeactivateSession(ctx, token)
}

// UpdateProfile applies a partial profile edit to the caller's account.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, update domain.UserUpdate) (*domain.User, error) {
	if update.Username != nil && strings.TrimSpace(*update.Username) == "" {
		return nil, NewValidationError("username cannot be blank")
	}
	user, err := s.users.Update(ctx, userID, update)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}
	return user, nil
}

// ListUsers pages through registered accounts for the admin view.
func (s *AuthService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.users.List(ctx, limit, offset)
}

func (s *AuthService) issueSession(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, expiresAt, err := s.jwt.Generate(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return "", time.Time{}, err
	}
	if _, err := s.sessions.CreateSession(ctx, user.ID, token, expiresAt); err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Fixed argon2 inputs burned on the unknown-email path of Login.
var (
	decoySalt = []byte("fortis-decoy-salt")
	decoyHash = []byte("fortis-decoy-hash................")
)
