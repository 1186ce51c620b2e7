package models

import (
	"time"

	"github.com/google/uuid"
)

// User — учётная запись пользователя платформы.
//
// Подзаписи Confirmation и Recovery хранят одноразовые коды:
// на каждую цель действует не более одного активного кода,
// выпуск нового кода перезаписывает предыдущий.
type User struct {
	ID           uuid.UUID
	Login        string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	Confirmation Confirmation
	Recovery     Recovery
}

// Confirmation — состояние подтверждения e-mail.
// Code сохраняется после подтверждения: повторная попытка использовать
// тот же код должна различаться как "уже использован", а не "неверный".
type Confirmation struct {
	Code      *uuid.UUID
	ExpiresAt *time.Time
	Confirmed bool
}

// Recovery — активный код восстановления пароля (если запрошен).
type Recovery struct {
	Code      *uuid.UUID
	ExpiresAt *time.Time
}
