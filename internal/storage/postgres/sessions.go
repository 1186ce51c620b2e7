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

const sessionColumns = `user_id, device_id, device_title, ip, issued_at, expires_at, last_active_at`

func scanSession(row pgx.Row) (*models.Session, error) {
	var s models.Session
	err := row.Scan(
		&s.UserID,
		&s.DeviceID,
		&s.DeviceTitle,
		&s.IP,
		&s.IssuedAt,
		&s.ExpiresAt,
		&s.LastActiveAt,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// SaveSession создаёт новую сессию устройства.
func (s *Storage) SaveSession(ctx context.Context, session *models.Session) error {
	const op = "storage.postgres.SaveSession"

	query := `
		INSERT INTO sessions(user_id, device_id, device_title, ip, issued_at, expires_at, last_active_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.Exec(ctx, query,
		session.UserID,
		session.DeviceID,
		session.DeviceTitle,
		session.IP,
		session.IssuedAt,
		session.ExpiresAt,
		session.LastActiveAt,
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

// SessionByDevice находит сессию по паре (userID, deviceID).
func (s *Storage) SessionByDevice(ctx context.Context, userID, deviceID uuid.UUID) (*models.Session, error) {
	const op = "storage.postgres.SessionByDevice"

	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE user_id = $1 AND device_id = $2`

	session, err := scanSession(s.db.QueryRow(ctx, query, userID, deviceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return session, nil
}

// SessionByDeviceID находит сессию по deviceID независимо от владельца.
func (s *Storage) SessionByDeviceID(ctx context.Context, deviceID uuid.UUID) (*models.Session, error) {
	const op = "storage.postgres.SessionByDeviceID"

	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE device_id = $1`

	session, err := scanSession(s.db.QueryRow(ctx, query, deviceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return session, nil
}

// SessionsByUser возвращает все непросроченные сессии пользователя.
func (s *Storage) SessionsByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]models.Session, error) {
	const op = "storage.postgres.SessionsByUser"

	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE user_id = $1 AND expires_at > $2
		ORDER BY last_active_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		sessions = append(sessions, *session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sessions, nil
}

// RotateSession атомарно обновляет сессию на месте (compare-and-swap по issued_at).
// Одиночный условный UPDATE гарантирует, что из двух конкурентных ротаций
// с одним и тем же предъявленным токеном выиграет ровно одна.
//
// Возвращает:
//
//	(true, nil)  — ротация выполнена этим вызовом;
//	(false, nil) — сессия отсутствует, просрочена или issued_at уже другой.
func (s *Storage) RotateSession(ctx context.Context, userID, deviceID uuid.UUID,
	oldIssuedAt, newIssuedAt, newExpiresAt time.Time, ip string) (bool, error) {
	const op = "storage.postgres.RotateSession"

	query := `
		UPDATE sessions
		SET issued_at = $4, expires_at = $5, ip = $6, last_active_at = $4
		WHERE user_id = $1 AND device_id = $2 AND issued_at = $3 AND expires_at > $4
		RETURNING device_id
	`

	var got uuid.UUID
	err := s.db.QueryRow(ctx, query, userID, deviceID, oldIssuedAt, newIssuedAt, newExpiresAt, ip).Scan(&got)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}

	return false, fmt.Errorf("%s: %w", op, err)
}

// DeleteSession удаляет сессию при совпадении версии issued_at.
func (s *Storage) DeleteSession(ctx context.Context, userID, deviceID uuid.UUID, issuedAt time.Time) (bool, error) {
	const op = "storage.postgres.DeleteSession"

	query := `
		DELETE FROM sessions
		WHERE user_id = $1 AND device_id = $2 AND issued_at = $3
	`

	cmdTag, err := s.db.Exec(ctx, query, userID, deviceID, issuedAt)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// DeleteSessionByDeviceID удаляет сессию по deviceID.
func (s *Storage) DeleteSessionByDeviceID(ctx context.Context, deviceID uuid.UUID) error {
	const op = "storage.postgres.DeleteSessionByDeviceID"

	query := `DELETE FROM sessions WHERE device_id = $1`

	cmdTag, err := s.db.Exec(ctx, query, deviceID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteOtherSessions удаляет все сессии пользователя, кроме keepDeviceID.
// Один DELETE-запрос: фильтрация по устройству выполняется на стороне БД,
// без окна между чтением списка и поштучным удалением.
func (s *Storage) DeleteOtherSessions(ctx context.Context, userID, keepDeviceID uuid.UUID) error {
	const op = "storage.postgres.DeleteOtherSessions"

	query := `
		DELETE FROM sessions
		WHERE user_id = $1 AND device_id <> $2
	`

	if _, err := s.db.Exec(ctx, query, userID, keepDeviceID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteExpiredSessions удаляет все просроченные сессии.
func (s *Storage) DeleteExpiredSessions(ctx context.Context, now time.Time) error {
	const op = "storage.postgres.DeleteExpiredSessions"

	query := `
		DELETE FROM sessions
		WHERE expires_at <= $1
	`

	if _, err := s.db.Exec(ctx, query, now); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
