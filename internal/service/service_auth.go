package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/store"
	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes and sessions are stateless
// HS256-signed JWTs.
type authService struct {
	userRepository store.UserRepository

	// passwordHashCost is the bcrypt work factor used for new hashes.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// An empty issuer is neither set nor checked.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// Register creates a new user account with a bcrypt hash of password.
//
// Empty name and email are accepted; email uniqueness is left to the data
// store, whose complaint is returned as a storage error.
func (a *authService) Register(ctx context.Context, name, email, password string) error {
	log := logger.FromContext(ctx)

	passwordHash, err := a.hashPassword(ctx, password)
	if err != nil {
		return err
	}

	err = a.userRepository.CreateUser(ctx, models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("email", email).Msg("user creation ended with error")
		return StorageError(err)
	}

	log.Info().Str("func", "*authService.Register").Str("email", email).Msg("user registered")
	return nil
}

// Login authenticates a user by email and password and issues a token.
//
// Returns:
//   - ErrEmptyCredentials if email or password is blank.
//   - ErrInvalidCredentials if no single user has exactly this email.
//   - ErrIncorrectPassword if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, email, password string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		log.Debug().Str("func", "*authService.Login").Msg("empty credentials provided")
		return models.Session{}, ErrEmptyCredentials
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("email", email).Msg("user search by email failed")
		return models.Session{}, withCause(ErrInvalidCredentials, err)
	}

	if err = utils.ComparePassword(user.PasswordHash, password); err != nil {
		log.Debug().Str("func", "*authService.Login").Int64("user_id", user.ID).Msg("wrong password")
		return models.Session{}, withCause(ErrIncorrectPassword, err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("user_id", user.ID).Msg("token creation failed")
		return models.Session{}, withCause(ErrInternalServer, err)
	}

	return models.Session{
		Token:  token.String(),
		Name:   user.Name,
		UserID: user.ID,
	}, nil
}

// ChangePassword overwrites the password hash of userID. The current
// password is not checked.
func (a *authService) ChangePassword(ctx context.Context, userID int64, newPassword string) error {
	log := logger.FromContext(ctx)

	passwordHash, err := a.hashPassword(ctx, newPassword)
	if err != nil {
		return err
	}

	if err = a.userRepository.UpdatePassword(ctx, userID, passwordHash); err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Int64("user_id", userID).Msg("password update failed")
		return StorageError(err)
	}

	return nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong signature or issuer, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("invalid token")
		return models.Token{}, withCause(ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

func (a *authService) hashPassword(ctx context.Context, password string) (string, error) {
	hash, err := utils.HashPassword(password, a.passwordHashCost)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return "", withCause(ErrPasswordTooLong, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.hashPassword").Msg("password hashing failed")
		return "", withCause(ErrInternalServer, err)
	}

	return hash, nil
}
