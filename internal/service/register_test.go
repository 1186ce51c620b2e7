package service

// Тесты регистрации и подтверждения e-mail (internal/service/register.go).
//
// Проверяем:
//  - happy-path Register: неподтверждённый пользователь с кодом и TTL,
//    письмо уходит fire-and-forget;
//  - конфликты логина/email и валидацию входов;
//  - Confirm: неверный, использованный и просроченный коды различимы;
//  - ResendConfirmation: перевыпуск кода перезаписывает предыдущий.

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-blogger-platform/internal/models"
	"github.com/pribylovaa/go-blogger-platform/internal/storage"
	"github.com/pribylovaa/go-blogger-platform/mocks"
)

func TestRegister_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ms := mocks.NewMockStorage(ctrl)
	sender := mocks.NewMockSender(ctrl)

	s := New(ms, testAuthConfig())
	s.SetMailer(sender)

	ms.EXPECT().UserByLoginOrEmail(gomock.Any(), "alice").Return(nil, storage.ErrNotFound)
	ms.EXPECT().UserByEmail(gomock.Any(), "alice@example.org").Return(nil, storage.ErrNotFound)

	var saved models.User
	ms.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			saved = *user
			return nil
		})

	// Письмо уходит в фоне: ждём фактической отправки.
	sent := make(chan string, 1)
	sender.EXPECT().Send(gomock.Any(), "alice@example.org", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, html string) error {
			sent <- html
			return nil
		})

	err := s.Register(context.Background(), "alice", "Alice@Example.org", "qwerty1")
	require.NoError(t, err)

	require.Equal(t, "alice", saved.Login)
	require.Equal(t, "alice@example.org", saved.Email) // email нормализован
	require.False(t, saved.Confirmation.Confirmed)
	require.NotNil(t, saved.Confirmation.Code)
	require.NotNil(t, saved.Confirmation.ExpiresAt)
	require.WithinDuration(t, time.Now().UTC().Add(s.cfg.CodeTTL), *saved.Confirmation.ExpiresAt, 5*time.Second)
	require.True(t, checkPassword(saved.PasswordHash, "qwerty1"))

	select {
	case html := <-sent:
		require.True(t, strings.Contains(html, saved.Confirmation.Code.String()))
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation letter was not sent")
	}
}

func TestRegister_LoginTaken(t *testing.T) {
	t.Parallel()

	s, ms := newServiceWithMocks(t)

	ms.EXPECT().UserByLoginOrEmail(gomock.Any(), "alice").
		Return(mustUser(t, "alice", "old@example.org", "qwerty1"), nil)

	err := s.Register(context.Background(), "alice", "new@example.org", "qwerty1")
	require.ErrorIs(t, err, ErrLoginTaken)
}

func TestRegister_EmailTaken(t *testing.T) {
	t.Parallel()

	s, ms := newServiceWithMocks(t)

	ms.EXPECT().UserByLoginOrEmail(gomock.Any(), "alice").Return(nil, storage.ErrNotFound)
	ms.EXPECT().UserByEmail(gomock.Any(), "taken@example.org").
		Return(mustUser(t, "bob", "taken@example.org", "qwerty1"), nil)

	err := s.Register(context.Background(), "alice", "taken@example.org", "qwerty1")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_UniqueViolationOnInsert(t *testing.T) {
	t.Parallel()

	s, ms := newServiceWithMocks(t)

	// Гонку предварительные проверки не закрывают: уникальный индекс
	// срабатывает на вставке.
	ms.EXPECT().UserByLoginOrEmail(gomock.Any(), "alice").Return(nil, storage.ErrNotFound)
	ms.EXPECT().UserByEmail(gomock.Any(), "alice@example.org").Return(nil, storage.ErrNotFound)
	ms.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

	err := s.Register(context.Background(), "alice", "alice@example.org", "qwerty1")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	s, _ := newServiceWithMocks(t)
	ctx := context.Background()

	require.ErrorIs(t, s.Register(ctx, "ab", "a@b.org", "qwerty1"), ErrInvalidLogin)
	require.ErrorIs(t, s.Register(ctx, "alice!", "a@b.org", "qwerty1"), ErrInvalidLogin)
	require.ErrorIs(t, s.Register(ctx, "alice", "not-an-email", "qwerty1"), ErrInvalidEmail)
	require.ErrorIs(t, s.Register(ctx, "alice", "a@b.org", "short"), ErrInvalidPassword)
}

func TestConfirm_OK(t *testing.T) {
	t.Parallel()

	s, ms := newServiceWithMocks(t)

	code := uuid.New()
	expiresAt := time.Now().UTC().Add(30 * time.Minute)
	user := &models.User{
		ID: uuid.New(),
		Confirmation: models.Confirmation{
			Code:      &code,
			ExpiresAt: &expiresAt,
		},
	}

	ms.EXPECT().UserByConfirmationCode(gomock.Any(), code).Return(user, nil)
	ms.EXPECT().ConfirmUser(gomock.Any(), user.ID).Return(nil)

	require.NoError(t, s.Confirm(context.Background(), code))
}

func TestConfirm_UnknownCode(t *testing.T) {
	t.Parallel()

	s, ms := newServiceWithMocks(t)

	code := uuid.New()
	ms.EXPECT().UserByConfirmationCode(gomock.Any(), code).Return(nil, storage.ErrNotFound)

	require.ErrorIs(t, s.Confirm(context.Background(), code), ErrCodeIncorrect)
}

func TestConfirm_AlreadyUsed(t *testing.T) {
	t.Parallel()

	s, ms := newServiceWithMocks(t)

	// Код остаётся в записи после подтверждения: повтор различим
	// как "уже использован", а не "неверный".
	code := uuid.New()
	expiresAt := time.Now().UTC().Add(30 * time.Minute)
	user := &models.User{
		ID: uuid.New(),
		Confirmation: models.Confirmation{
			Code:      &code,
			ExpiresAt: &expiresAt,
			Confirmed: true,
		},
	}

	ms.EXPECT().UserByConfirmationCode(gomock.Any(), code).Return(user, nil)

	require.ErrorIs(t, s.Confirm(context.Background(), code), ErrAlreadyConfirmed)
}

func TestConfirm_Expired(t *testing.T) {
	t.Parallel()

	s, ms := newServiceWithMocks(t)

	code := uuid.New()
	expiresAt := time.Now().UTC().Add(-time.Minute)
	user := &models.User{
		ID: uuid.New(),
		Confirmation: models.Confirmation{
			Code:      &code,
			ExpiresAt: &expiresAt,
		},
	}

	ms.EXPECT().UserByConfirmationCode(gomock.Any(), code).Return(user, nil)

	require.ErrorIs(t, s.Confirm(context.Background(), code), ErrCodeExpired)
}

func TestResendConfirmation_OK(t *testing.T) {
	t.Parallel()

	s, ms := newServiceWithMocks(t)

	oldCode := uuid.New()
	expiresAt := time.Now().UTC().Add(time.Minute)
	user := &models.User{
		ID:    uuid.New(),
		Email: "alice@example.org",
		Confirmation: models.Confirmation{
			Code:      &oldCode,
			ExpiresAt: &expiresAt,
		},
	}

	ms.EXPECT().UserByEmail(gomock.Any(), "alice@example.org").Return(user, nil)
	ms.EXPECT().SetConfirmationCode(gomock.Any(), user.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, code uuid.UUID, _ time.Time) error {
			require.NotEqual(t, oldCode, code) // новый код, старый перезаписан
			return nil
		})

	require.NoError(t, s.ResendConfirmation(context.Background(), "alice@example.org"))
}

func TestResendConfirmation_UnknownEmail(t *testing.T) {
	t.Parallel()

	s, ms := newServiceWithMocks(t)

	ms.EXPECT().UserByEmail(gomock.Any(), "nobody@example.org").Return(nil, storage.ErrNotFound)

	err := s.ResendConfirmation(context.Background(), "nobody@example.org")
	require.ErrorIs(t, err, ErrEmailUnknown)
}

func TestResendConfirmation_AlreadyConfirmed(t *testing.T) {
	t.Parallel()

	s, ms := newServiceWithMocks(t)

	user := mustUser(t, "alice", "alice@example.org", "qwerty1")
	ms.EXPECT().UserByEmail(gomock.Any(), "alice@example.org").Return(user, nil)

	err := s.ResendConfirmation(context.Background(), "alice@example.org")
	require.ErrorIs(t, err, ErrAlreadyConfirmed)
}
