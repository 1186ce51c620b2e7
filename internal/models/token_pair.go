package models

import "time"

// TokenPair — пара токенов, выдаваемая при логине и ротации.
//
// Описание:
//   - AccessToken — короткоживущий JWT, передаётся в заголовке Authorization;
//   - RefreshToken — долгоживущий JWT, передаётся только в HTTP-only cookie;
//   - AccessExpiresAt — момент истечения access-токена (UTC).
//
// Оба токена несут одинаковые uid/did/iat; сервер не хранит сами токены,
// refresh сверяется с записью сессии по iat.
type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}
