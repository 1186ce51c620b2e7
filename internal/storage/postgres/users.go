package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/go-blogger-platform/internal/models"
	"github.com/pribylovaa/go-blogger-platform/internal/storage"
)

const userColumns = `id, login, email, password_hash, created_at,
		is_confirmed, confirmation_code, confirmation_expires_at,
		recovery_code, recovery_expires_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Login,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.Confirmation.Confirmed,
		&user.Confirmation.Code,
		&user.Confirmation.ExpiresAt,
		&user.Recovery.Code,
		&user.Recovery.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// SaveUser создает нового пользователя в БД.
func (s *Storage) SaveUser(ctx context.Context, user *models.User) error {
	const op = "storage.postgres.SaveUser"

	query := `
		INSERT INTO users(id, login, email, password_hash, created_at,
			is_confirmed, confirmation_code, confirmation_expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.Exec(ctx, query,
		user.ID,
		user.Login,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.Confirmation.Confirmed,
		user.Confirmation.Code,
		user.Confirmation.ExpiresAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UserByID находит пользователя по ID.
func (s *Storage) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "storage.postgres.UserByID"

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UserByLoginOrEmail находит пользователя по точному совпадению логина ИЛИ email.
func (s *Storage) UserByLoginOrEmail(ctx context.Context, loginOrEmail string) (*models.User, error) {
	const op = "storage.postgres.UserByLoginOrEmail"

	// login сравнивается чувствительно к регистру; email — citext,
	// но значение предъявляется как есть, без нормализации на этом уровне.
	query := `SELECT ` + userColumns + ` FROM users WHERE login = $1 OR email = $1::citext`

	user, err := scanUser(s.db.QueryRow(ctx, query, loginOrEmail))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UserByEmail находит пользователя по email.
func (s *Storage) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.postgres.UserByEmail"

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(s.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UserByConfirmationCode находит пользователя по коду подтверждения.
func (s *Storage) UserByConfirmationCode(ctx context.Context, code uuid.UUID) (*models.User, error) {
	const op = "storage.postgres.UserByConfirmationCode"

	query := `SELECT ` + userColumns + ` FROM users WHERE confirmation_code = $1`

	user, err := scanUser(s.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UserByRecoveryCode находит пользователя по коду восстановления.
func (s *Storage) UserByRecoveryCode(ctx context.Context, code uuid.UUID) (*models.User, error) {
	const op = "storage.postgres.UserByRecoveryCode"

	query := `SELECT ` + userColumns + ` FROM users WHERE recovery_code = $1`

	user, err := scanUser(s.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// SetConfirmationCode перезаписывает код подтверждения.
func (s *Storage) SetConfirmationCode(ctx context.Context, userID, code uuid.UUID, expiresAt time.Time) error {
	const op = "storage.postgres.SetConfirmationCode"

	query := `
		UPDATE users
		SET confirmation_code = $2, confirmation_expires_at = $3
		WHERE id = $1
	`

	cmdTag, err := s.db.Exec(ctx, query, userID, code, expiresAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ConfirmUser помечает пользователя подтверждённым, сохраняя код.
func (s *Storage) ConfirmUser(ctx context.Context, userID uuid.UUID) error {
	const op = "storage.postgres.ConfirmUser"

	query := `
		UPDATE users
		SET is_confirmed = TRUE
		WHERE id = $1
	`

	cmdTag, err := s.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// SetRecoveryCode перезаписывает код восстановления пароля.
func (s *Storage) SetRecoveryCode(ctx context.Context, userID, code uuid.UUID, expiresAt time.Time) error {
	const op = "storage.postgres.SetRecoveryCode"

	query := `
		UPDATE users
		SET recovery_code = $2, recovery_expires_at = $3
		WHERE id = $1
	`

	cmdTag, err := s.db.Exec(ctx, query, userID, code, expiresAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// UpdatePassword заменяет хэш пароля и гасит код восстановления одним запросом.
func (s *Storage) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	const op = "storage.postgres.UpdatePassword"

	query := `
		UPDATE users
		SET password_hash = $2, recovery_code = NULL, recovery_expires_at = NULL
		WHERE id = $1
	`

	cmdTag, err := s.db.Exec(ctx, query, userID, passwordHash)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
