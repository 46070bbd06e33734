package services

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/humbertoconstantino/auth-api/internal/auth"
	"github.com/humbertoconstantino/auth-api/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Store outcomes the handlers translate into HTTP responses.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already in use")
	ErrInvalidPassword = errors.New("invalid password")
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	GetUserByID(id string) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	CreateUser(name, email, password string) (models.User, error)
	AuthenticateUser(email, password string) (models.User, error)
}

// UserService provides business logic for user management.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// GetUserByID retrieves a single user by their ID. The password hash is
// excluded from the projection.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, name, email, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// GetUserByEmail retrieves a single user by their email, including the
// password hash. Only the login path should need this.
func (s *UserService) GetUserByEmail(email string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?", email)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// CreateUser creates a new user, hashing their password. Uniqueness of the
// email is left to the store's UNIQUE constraint, so two concurrent
// registrations for the same address cannot both succeed; the losing insert
// surfaces as ErrEmailTaken.
func (s *UserService) CreateUser(name, email, password string) (models.User, error) {
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, name, email, password_hash) VALUES(?, ?, ?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(user.ID, user.Name, user.Email, user.PasswordHash); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// AuthenticateUser verifies a user's credentials. It distinguishes an
// unknown email (ErrUserNotFound) from a wrong password
// (ErrInvalidPassword) because the API reports them differently.
func (s *UserService) AuthenticateUser(email, password string) (models.User, error) {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		return models.User{}, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return models.User{}, ErrInvalidPassword
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
