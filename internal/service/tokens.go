package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/go-blogger-platform/internal/models"
	"github.com/pribylovaa/go-blogger-platform/internal/pkg/log"
)

// authClaims — полезная нагрузка обоих типов токенов.
// Access и refresh различаются только секретом и TTL: токен одного типа
// не проходит проверку подписи кодеком другого.
type authClaims struct {
	UserID   string `json:"uid"`
	DeviceID string `json:"did"`
	jwt.RegisteredClaims
}

// tokenPayload — разобранная и проверенная полезная нагрузка токена.
type tokenPayload struct {
	UserID    uuid.UUID
	DeviceID  uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// issueToken подписывает токен с данными uid/did/iat.
// iat усечён до секунды: это же значение хранится в сессии как её версия.
func (s *Service) issueToken(ctx context.Context, secret string, userID, deviceID uuid.UUID,
	issuedAt time.Time, ttl time.Duration) (string, error) {
	const op = "service.tokens.issueToken"

	claims := authClaims{
		UserID:   userID.String(),
		DeviceID: deviceID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    s.cfg.Issuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		log.From(ctx).Error("token_sign_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// parseToken проверяет подпись и срок действия токена.
// Просроченный и испорченный токены различаются только внутренними
// сентинелами (ErrTokenExpired / ErrInvalidToken); транспорт сводит оба к 401.
func (s *Service) parseToken(secret, tokenStr string) (*tokenPayload, error) {
	const op = "service.tokens.parseToken"

	token, err := jwt.ParseWithClaims(tokenStr, &authClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(s.cfg.Issuer),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*authClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	did, err := uuid.Parse(claims.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return &tokenPayload{
		UserID:    uid,
		DeviceID:  did,
		IssuedAt:  claims.IssuedAt.Time.UTC(),
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}, nil
}

// parseAccessToken проверяет access-токен.
func (s *Service) parseAccessToken(tokenStr string) (*tokenPayload, error) {
	return s.parseToken(s.cfg.AccessSecret, tokenStr)
}

// parseRefreshToken проверяет refresh-токен. Проверка подписи — только
// первый шаг: подлинность версии (iat == issued_at сессии) сверяет вызывающий.
func (s *Service) parseRefreshToken(tokenStr string) (*tokenPayload, error) {
	return s.parseToken(s.cfg.RefreshSecret, tokenStr)
}

// issuePair выпускает пару access+refresh с одинаковыми uid/did/iat.
func (s *Service) issuePair(ctx context.Context, userID, deviceID uuid.UUID, issuedAt time.Time) (*models.TokenPair, error) {
	const op = "service.tokens.issuePair"

	accessToken, err := s.issueToken(ctx, s.cfg.AccessSecret, userID, deviceID, issuedAt, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, err := s.issueToken(ctx, s.cfg.RefreshSecret, userID, deviceID, issuedAt, s.cfg.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		AccessExpiresAt: issuedAt.Add(s.cfg.AccessTokenTTL),
	}, nil
}
