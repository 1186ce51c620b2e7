package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/go-blogger-platform/internal/models"
	"github.com/pribylovaa/go-blogger-platform/internal/pkg/log"
	"github.com/pribylovaa/go-blogger-platform/internal/pkg/redact"
	"github.com/pribylovaa/go-blogger-platform/internal/storage"
)

// UserSummary — краткие сведения о текущем пользователе (эндпоинт me).
type UserSummary struct {
	UserID uuid.UUID
	Login  string
	Email  string
}

// Login выполняет вход по логину-или-email и паролю.
//
// На каждый успешный вход выпускается новый deviceID: он стабилен для
// устройства на всё время жизни сессии и переживает любые ротации.
// issuedAt усечён до секунды и записывается в сессию как её версия.
func (s *Service) Login(ctx context.Context, loginOrEmail, password, deviceTitle, ip string) (*models.TokenPair, error) {
	const op = "service.auth.Login"

	lg := log.From(ctx)

	if err := validateLoginOrEmail(loginOrEmail); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := validatePassword(password); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user, err := s.storage.UserByLoginOrEmail(ctx, loginOrEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			loginsTotal.WithLabelValues("fail").Inc()
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, password) {
		lg.Warn("login_password_mismatch",
			slog.String("op", op),
			slog.String("login", redact.Login(loginOrEmail)),
		)
		loginsTotal.WithLabelValues("fail").Inc()

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	now := time.Now().UTC().Truncate(time.Second)
	session := &models.Session{
		UserID:       user.ID,
		DeviceID:     uuid.New(),
		DeviceTitle:  deviceTitle,
		IP:           ip,
		IssuedAt:     now,
		ExpiresAt:    now.Add(s.cfg.RefreshTokenTTL),
		LastActiveAt: now,
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pair, err := s.issuePair(ctx, user.ID, session.DeviceID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	loginsTotal.WithLabelValues("ok").Inc()

	return pair, nil
}

// Refresh ротирует пару токенов по refresh-токену.
//
// Ключевое свойство: каждый refresh-токен срабатывает ровно один раз.
// Сверка iat и обновление сессии выполняются одним условным UPDATE
// (compare-and-swap в хранилище); из двух конкурентных вызовов с одним
// и тем же токеном выигрывает ровно один. При несовпадении версии сессия
// не трогается: отклоняется только сам устаревший токен, легитимная
// гонка не должна выбивать устройство.
func (s *Service) Refresh(ctx context.Context, refreshToken, ip string) (*models.TokenPair, error) {
	const op = "service.auth.Refresh"

	payload, err := s.parseRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC().Truncate(time.Second)

	rotated, err := s.storage.RotateSession(ctx, payload.UserID, payload.DeviceID,
		payload.IssuedAt, now, now.Add(s.cfg.RefreshTokenTTL), ip)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !rotated {
		log.From(ctx).Warn("refresh_version_mismatch",
			slog.String("op", op),
			slog.String("user_id", payload.UserID.String()),
			slog.String("device_id", payload.DeviceID.String()),
		)
		replaysTotal.Inc()

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	pair, err := s.issuePair(ctx, payload.UserID, payload.DeviceID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rotationsTotal.Inc()

	return pair, nil
}

// Logout удаляет сессию устройства по refresh-токену.
// Удаление условно по iat: уже ротированный токен и отсутствующая сессия
// наружу неотличимы (единый ErrInvalidToken).
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	const op = "service.auth.Logout"

	payload, err := s.parseRefreshToken(refreshToken)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	deleted, err := s.storage.DeleteSession(ctx, payload.UserID, payload.DeviceID, payload.IssuedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !deleted {
		return fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return nil
}

// CurrentUser проверяет access-токен и возвращает сводку о пользователе.
func (s *Service) CurrentUser(ctx context.Context, accessToken string) (*UserSummary, error) {
	const op = "service.auth.CurrentUser"

	payload, err := s.parseAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.storage.UserByID(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &UserSummary{
		UserID: user.ID,
		Login:  user.Login,
		Email:  user.Email,
	}, nil
}

// sessionForRefresh проверяет refresh-токен и его соответствие живой сессии.
// Используется операциями над списком устройств: они не ротируют токен,
// но требуют действующей (не ротированной и не просроченной) сессии.
func (s *Service) sessionForRefresh(ctx context.Context, refreshToken string) (*models.Session, error) {
	const op = "service.auth.sessionForRefresh"

	payload, err := s.parseRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	session, err := s.storage.SessionByDevice(ctx, payload.UserID, payload.DeviceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !session.IssuedAt.Equal(payload.IssuedAt) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if !time.Now().UTC().Before(session.ExpiresAt) {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
	}

	return session, nil
}

// hashPassword хэширует пароль с помощью bcrypt.
func hashPassword(password string) (string, error) {
	const op = "service.auth.hashPassword"

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// validateLoginOrEmail проверяет форму идентификатора входа (3–100 символов).
func validateLoginOrEmail(v string) error {
	const op = "service.auth.validateLoginOrEmail"

	n := len([]rune(v))
	if n < 3 || n > 100 {
		return fmt.Errorf("%s: %w", op, ErrInvalidLoginOrEmail)
	}

	return nil
}

// validatePassword проверяет форму пароля (6–20 символов).
func validatePassword(pw string) error {
	const op = "service.auth.validatePassword"

	n := len([]rune(pw))
	if n < 6 || n > 20 {
		return fmt.Errorf("%s: %w", op, ErrInvalidPassword)
	}

	return nil
}

// validateLogin проверяет форму логина при регистрации (3–30 символов,
// латиница/цифры/._-).
func validateLogin(login string) error {
	const op = "service.auth.validateLogin"

	n := len(login)
	if n < 3 || n > 30 {
		return fmt.Errorf("%s: %w", op, ErrInvalidLogin)
	}

	for i := 0; i < n; i++ {
		c := login[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '.' || c == '_' || c == '-':
		default:
			return fmt.Errorf("%s: %w", op, ErrInvalidLogin)
		}
	}

	return nil
}

// validateEmail проверяет базовый формат email и обрезает пробелы снаружи.
func validateEmail(raw string) (string, error) {
	const op = "service.auth.validateEmail"

	email := strings.TrimSpace(raw)
	if email == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	return strings.ToLower(email), nil
}
