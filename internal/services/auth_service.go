package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"fittrack/internal/apperrors"
	"fittrack/internal/models"
	"fittrack/internal/repositories"
)

// AuthService handles registration, login and token verification for the
// single account owning the tracked data.
type AuthService struct {
	userRepo      repositories.UserRepository
	jwtSecret     []byte
	tokenLifetime time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenLifetime time.Duration) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		jwtSecret:     []byte(jwtSecret),
		tokenLifetime: tokenLifetime,
	}
}

// RandomSigningKey generates a signing key for deployments that configure
// none. Tokens signed with it die with the process: every restart
// invalidates all sessions, and multiple processes will not accept each
// other's tokens. Configure JWT_SECRET for anything beyond local use.
func RandomSigningKey() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("Failed to generate signing key: %v", err)
	}
	return hex.EncodeToString(buf)
}

// Register creates the account, stores a bcrypt hash of the password and
// returns the user together with a signed token.
func (s *AuthService) Register(username, password string) (*models.User, string, error) {
	if len(username) < 3 || len(username) > 50 {
		return nil, "", apperrors.NewValidation("username", "must be between 3 and 50 characters")
	}
	if len(password) < 8 {
		return nil, "", apperrors.NewValidation("password", "must be at least 8 characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperrors.NewInternal(fmt.Errorf("failed to hash password: %w", err))
	}

	user := &models.User{
		Username: username,
		Password: string(hashedPassword),
	}
	// The unique index on username backs the conflict check, so two
	// concurrent registrations cannot both succeed.
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates the user and returns a signed token. The error is
// the same whether the username is unknown or the password is wrong.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", apperrors.NewAuth("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.NewAuth("invalid credentials")
	}

	return s.issueToken(user)
}

// ValidateToken parses and verifies a token and resolves it to the acting
// identity. A token whose subject no longer exists in the store is
// rejected the same way as a malformed or expired one.
func (s *AuthService) ValidateToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, apperrors.NewAuth("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.NewAuth("invalid or expired token")
	}

	username, ok := claims["username"].(string)
	if !ok {
		return nil, apperrors.NewAuth("invalid or expired token")
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			return nil, apperrors.NewAuth("invalid or expired token")
		}
		return nil, err
	}
	return user, nil
}

// issueToken signs an HS256 token carrying the subject and an absolute
// expiry.
func (s *AuthService) issueToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenLifetime).Unix(),
		"iat":      time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", apperrors.NewInternal(fmt.Errorf("failed to sign token: %w", err))
	}
	return tokenString, nil
}
