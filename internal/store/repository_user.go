package store

import (
	"context"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/models"
)

const usersTable = "users"

// userRow is the persisted shape of a user.
type userRow struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r userRow) toModel() models.User {
	return models.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.Password,
	}
}

// userRepository implements [UserRepository] on the "users" table.
//
// Errors of the data client are returned unwrapped so that the data store's
// own message reaches the caller.
type userRepository struct {
	client DataClient
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by client.
func NewUserRepository(client DataClient, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		client: client,
		logger: logger,
	}
}

// CreateUser inserts a new user. The identifier is assigned by the store,
// and a duplicate email is rejected by it.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	err := r.client.Insert(ctx, usersTable, Record{
		"name":     user.Name,
		"email":    user.Email,
		"password": user.PasswordHash,
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return err
	}

	return nil
}

// FindUserByEmail returns the user whose email equals email exactly,
// including the password hash.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var row userRow
	q := From(usersTable).Select("id", "name", "email", "password").Eq("email", email)
	if err := r.client.SelectOne(ctx, q, &row); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user by email")
		return models.User{}, err
	}

	return row.toModel(), nil
}

// FindUserByID returns the public profile of a user; PasswordHash is left empty.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var row userRow
	q := From(usersTable).Select("id", "name", "email").Eq("id", userID)
	if err := r.client.SelectOne(ctx, q, &row); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", userID).Msg("error finding user by id")
		return models.User{}, err
	}

	return row.toModel(), nil
}

// UpdatePassword overwrites the stored password hash of a user.
func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	q := From(usersTable).Eq("id", userID)
	if err := r.client.Update(ctx, q, Record{"password": passwordHash}); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Int64("user_id", userID).Msg("error updating password")
		return err
	}

	return nil
}
