package models

import (
	"time"

	"github.com/google/uuid"
)

// Session — серверная запись о сессии устройства.
//
// Инварианты:
//   - на пару (UserID, DeviceID) существует не более одной записи;
//   - IssuedAt — авторитетная версия сессии (точность до секунды, UTC):
//     refresh-токен действителен, только если его iat строго равен IssuedAt;
//   - ротация обновляет запись на месте и никогда не создаёт вторую строку
//     для того же устройства.
type Session struct {
	UserID       uuid.UUID
	DeviceID     uuid.UUID
	DeviceTitle  string
	IP           string
	IssuedAt     time.Time
	ExpiresAt    time.Time
	LastActiveAt time.Time
}

// Device — представление сессии, отдаваемое клиенту в списке устройств.
type Device struct {
	DeviceID       uuid.UUID `json:"deviceId"`
	Title          string    `json:"title"`
	IP             string    `json:"ip"`
	LastActiveDate time.Time `json:"lastActiveDate"`
}
