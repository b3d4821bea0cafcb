package service

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"coachingku_backend/internals/features/auth/dto"
	authMiddleware "coachingku_backend/internals/middlewares/auth"
)

const accessTTLDefault = 12 * time.Hour

var (
	ErrAuthDisabled       = errors.New("staff login is not enabled")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingSecret      = errors.New("JWT_SECRET is not configured")
)

// AuthService checks the single staff account configured through the environment.
type AuthService struct {
	Username     string
	PasswordHash string
	Secret       []byte
	TTL          time.Duration
	now          func() time.Time
}

func NewAuthService(username, passwordHash, secret string) *AuthService {
	return &AuthService{
		Username:     username,
		PasswordHash: passwordHash,
		Secret:       []byte(secret),
		TTL:          accessTTLDefault,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *AuthService) Enabled() bool { return s.PasswordHash != "" }

func (s *AuthService) Login(req dto.LoginRequest) (dto.LoginResponse, error) {
	if !s.Enabled() {
		return dto.LoginResponse{}, ErrAuthDisabled
	}
	if len(s.Secret) == 0 {
		return dto.LoginResponse{}, ErrMissingSecret
	}

	// bcrypt tetap dijalankan walau username salah
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(req.Password))
	if !userOK || passErr != nil {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	now := s.now()
	exp := now.Add(s.TTL)
	claims := jwt.MapClaims{
		"user_name": s.Username,
		"role":      authMiddleware.RoleStaff,
		"iat":       now.Unix(),
		"exp":       exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return dto.LoginResponse{}, err
	}
	return dto.LoginResponse{AccessToken: token, UserName: s.Username, ExpiresAt: exp.Unix()}, nil
}
