// service содержит бизнес-логику auth-сервиса:
// проверку учётных данных, выпуск/ротацию пары токенов, управление
// сессиями устройств и жизненный цикл одноразовых кодов
// подтверждения/восстановления.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Единственная точка атомарности ротации — условный UPDATE по issued_at
//     в хранилище; сервис никогда не делает check-then-update двумя запросами.
//   - Ошибки возвращаются как сентинелы и далее маппятся транспортом на
//     HTTP-статусы (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"github.com/pribylovaa/go-blogger-platform/internal/config"
	"github.com/pribylovaa/go-blogger-platform/internal/mail"
	"github.com/pribylovaa/go-blogger-platform/internal/storage"
)

var (
	// ErrInvalidCredentials — пара логин/пароль неверна или пользователь не найден.
	// Наружу уходит единый ответ без уточнения, что именно не совпало. HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — токен некорректен по формату/подписи, либо сессия
	// отсутствует, либо iat токена не равен версии сессии (replay). Снаружи
	// эти случаи не различаются. HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. HTTP 401 (снаружи
	// неотличимо от ErrInvalidToken).
	ErrTokenExpired = errors.New("token expired")

	// ErrDeviceNotFound — сессия с указанным deviceId не существует ни у кого.
	// Проверяется раньше принадлежности. HTTP 404.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrForeignDevice — сессия существует, но принадлежит другому пользователю.
	// HTTP 403.
	ErrForeignDevice = errors.New("device belongs to another user")

	// ErrLoginTaken / ErrEmailTaken — нарушение уникальности при регистрации.
	// HTTP 400 с указанием поля.
	ErrLoginTaken = errors.New("login already taken")
	ErrEmailTaken = errors.New("email already taken")

	// Ошибки валидации формы входных данных. HTTP 400 с указанием поля.
	ErrInvalidLogin        = errors.New("invalid login")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrInvalidPassword     = errors.New("invalid password")
	ErrInvalidLoginOrEmail = errors.New("invalid login or email")

	// ErrCodeIncorrect — код подтверждения не найден. HTTP 400, поле code.
	ErrCodeIncorrect = errors.New("confirmation code incorrect")

	// ErrCodeExpired — код подтверждения просрочен. HTTP 400, поле code.
	ErrCodeExpired = errors.New("confirmation code expired")

	// ErrAlreadyConfirmed — учётная запись уже подтверждена; повторное
	// подтверждение и повторная отправка письма отклоняются именно этой
	// причиной, а не "неверным кодом". HTTP 400.
	ErrAlreadyConfirmed = errors.New("email already confirmed")

	// ErrEmailUnknown — e-mail не зарегистрирован (только для resend;
	// password-recovery на неизвестный адрес отвечает успехом). HTTP 400.
	ErrEmailUnknown = errors.New("email is not registered")

	// ErrRecoveryCodeIncorrect — код восстановления не найден или просрочен,
	// единая причина без уточнения. HTTP 400, поле recoveryCode.
	ErrRecoveryCodeIncorrect = errors.New("recovery code incorrect")
)

// Service описывает бизнес-логику auth-сервиса.
type Service struct {
	storage storage.Storage
	cfg     config.AuthConfig
	mailer  mail.Sender // может быть nil, если отправка писем не сконфигурирована
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg config.AuthConfig) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}

// SetMailer устанавливает отправителя писем (опционально).
func (s *Service) SetMailer(m mail.Sender) {
	s.mailer = m
}
