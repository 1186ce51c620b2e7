package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-blogger-platform/internal/models"
)

var (
	// ErrNotFound — запись не найдена (пользователь/сессия).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (login/email/device).
	ErrAlreadyExists = errors.New("already exists")
)

// UserStorage выполняет операции над пользователями и их одноразовыми кодами.
type UserStorage interface {
	// SaveUser создает нового пользователя в БД.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByID находит пользователя по ID.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// UserByLoginOrEmail находит пользователя по точному совпадению логина ИЛИ email.
	UserByLoginOrEmail(ctx context.Context, loginOrEmail string) (*models.User, error)
	// UserByEmail находит пользователя по email.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserByConfirmationCode находит пользователя по коду подтверждения.
	UserByConfirmationCode(ctx context.Context, code uuid.UUID) (*models.User, error)
	// UserByRecoveryCode находит пользователя по коду восстановления.
	UserByRecoveryCode(ctx context.Context, code uuid.UUID) (*models.User, error)
	// SetConfirmationCode перезаписывает код подтверждения (overwrite, не append).
	SetConfirmationCode(ctx context.Context, userID, code uuid.UUID, expiresAt time.Time) error
	// ConfirmUser помечает пользователя подтверждённым. Код сохраняется,
	// чтобы повторное использование различалось как "уже использован".
	ConfirmUser(ctx context.Context, userID uuid.UUID) error
	// SetRecoveryCode перезаписывает код восстановления пароля.
	SetRecoveryCode(ctx context.Context, userID, code uuid.UUID, expiresAt time.Time) error
	// UpdatePassword заменяет хэш пароля и гасит код восстановления одним запросом.
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// SessionStorage выполняет операции над сессиями устройств.
type SessionStorage interface {
	// SaveSession создаёт новую сессию устройства.
	SaveSession(ctx context.Context, session *models.Session) error
	// SessionByDevice находит сессию по паре (userID, deviceID).
	SessionByDevice(ctx context.Context, userID, deviceID uuid.UUID) (*models.Session, error)
	// SessionByDeviceID находит сессию по deviceID независимо от владельца.
	// Нужна проверке "существование раньше принадлежности": несуществующее
	// устройство — всегда NotFound, даже если оно было бы чужим.
	SessionByDeviceID(ctx context.Context, deviceID uuid.UUID) (*models.Session, error)
	// SessionsByUser возвращает все непросроченные сессии пользователя.
	SessionsByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]models.Session, error)
	// RotateSession атомарно обновляет сессию на месте, если её текущий
	// issued_at равен oldIssuedAt (compare-and-swap). Возвращает:
	//
	//	(true, nil)  — ротация выполнена этим вызовом;
	//	(false, nil) — сессия отсутствует, просрочена или уже ротирована.
	RotateSession(ctx context.Context, userID, deviceID uuid.UUID,
		oldIssuedAt, newIssuedAt, newExpiresAt time.Time, ip string) (bool, error)
	// DeleteSession удаляет сессию, если её issued_at равен issuedAt.
	// Возвращает false, если сессия отсутствует или версия не совпала.
	DeleteSession(ctx context.Context, userID, deviceID uuid.UUID, issuedAt time.Time) (bool, error)
	// DeleteSessionByDeviceID удаляет сессию по deviceID (проверку
	// принадлежности выполняет вызывающий).
	DeleteSessionByDeviceID(ctx context.Context, deviceID uuid.UUID) error
	// DeleteOtherSessions удаляет все сессии пользователя, кроме keepDeviceID,
	// одним DELETE-запросом.
	DeleteOtherSessions(ctx context.Context, userID, keepDeviceID uuid.UUID) error
	// DeleteExpiredSessions удаляет все просроченные сессии.
	DeleteExpiredSessions(ctx context.Context, now time.Time) error
}

// Storage задает контракт работы с БД.
type Storage interface {
	UserStorage
	SessionStorage
	Close()
}
