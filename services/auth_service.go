package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"
	"gorm.io/gorm"

	"reviewdb/config"
	"reviewdb/models"
	"reviewdb/repositories"

	"reviewdb/mailer"
)

const codeIterations = 4096

type AuthService interface {
	Signup(req models.SignupRequest) (*models.SignupResponse, error)
	Token(req models.TokenRequest) (*models.TokenResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
	mailer   mailer.Mailer
	security *config.SecurityConfig
	logger   *slog.Logger
}

func NewAuthService(userRepo repositories.UserRepository, m mailer.Mailer, security *config.SecurityConfig, logger *slog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		mailer:   m,
		security: security,
		logger:   logger,
	}
}

// Signup creates or refreshes a pending registration and emails a fresh
// confirmation code. Repeating it with the same (username, email) pair is
// idempotent apart from the new code; a different email for an existing
// username is rejected.
func (s *authService) Signup(req models.SignupRequest) (*models.SignupResponse, error) {
	if err := models.ValidateUsername(req.Username, s.security.MaxUsernameLength); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(req.Username)
	switch {
	case err == nil:
		if user.Email != req.Email {
			return nil, models.ErrEmailMismatch
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if _, emailErr := s.userRepo.GetByEmail(req.Email); emailErr == nil {
			return nil, models.NewValidationError("email", "email is already registered")
		} else if !errors.Is(emailErr, gorm.ErrRecordNotFound) {
			return nil, emailErr
		}
		user = &models.User{
			Username: req.Username,
			Email:    req.Email,
			Role:     models.RoleUser,
		}
		if err := s.userRepo.Create(user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, models.NewValidationError("username", "username is already registered")
			}
			return nil, err
		}
	default:
		return nil, err
	}

	// A fresh salt invalidates whatever code was issued before.
	salt := uuid.NewString()
	user.ConfirmationCode = &salt
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	code := s.deriveCode(user, salt)
	if err := s.mailer.SendConfirmationCode(user.Email, user.Username, code); err != nil {
		// Delivery is best-effort; the signup itself already succeeded.
		s.logger.Warn("confirmation code delivery failed",
			slog.String("username", user.Username),
			slog.String("error", err.Error()))
	}

	return &models.SignupResponse{Username: user.Username, Email: user.Email}, nil
}

// Token exchanges a valid confirmation code for a bearer access token.
// The code is not cleared on success: it stays valid until the user's
// state changes or signup regenerates the salt. Known weak point, kept to
// match the documented contract.
func (s *authService) Token(req models.TokenRequest) (*models.TokenResponse, error) {
	if req.Username == "" || req.ConfirmationCode == "" {
		return nil, models.ErrMissingField
	}

	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUnknownUser
		}
		return nil, err
	}

	if user.ConfirmationCode == nil {
		return nil, models.ErrBadCode
	}
	expected := s.deriveCode(user, *user.ConfirmationCode)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(req.ConfirmationCode)) != 1 {
		return nil, models.ErrBadCode
	}

	token, err := s.issueAccessToken(user)
	if err != nil {
		return nil, err
	}
	return &models.TokenResponse{Token: token}, nil
}

// deriveCode computes the confirmation code from the user's mutable state,
// the server secret and the per-signup salt. Nothing but the salt is
// stored; any change to the referenced fields invalidates the code.
func (s *authService) deriveCode(user *models.User, salt string) string {
	state := fmt.Sprintf("%d:%s:%s:%s", user.ID, user.Username, user.Email, user.Role)
	key := pbkdf2.Key([]byte(s.security.JWTSecret+":"+state), []byte(salt), codeIterations, 32, sha256.New)

	code := hex.EncodeToString(key)
	if s.security.CodeLength > 0 && len(code) > s.security.CodeLength {
		code = code[:s.security.CodeLength]
	}
	return code
}

func (s *authService) issueAccessToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id":      user.ID,
		"username":     user.Username,
		"role":         user.Role,
		"is_superuser": user.IsSuperuser,
		"exp":          now.Add(s.security.TokenTTL).Unix(),
		"iat":          now.Unix(),
		"nbf":          now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.security.JWTSecret))
}
