package service

// Тесты операций над устройствами (internal/service/sessions.go).
//
// Проверяем:
//  - авторизацию операций по refresh-токену и живой сессии
//    (ротированный токен и просроченная сессия отклоняются);
//  - маппинг сессий в устройства;
//  - порядок проверок DeleteDevice: существование раньше принадлежности;
//  - удаление собственного текущего устройства разрешено.

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-blogger-platform/internal/models"
	"github.com/pribylovaa/go-blogger-platform/internal/storage"
)

// deviceFixture — валидный refresh-токен и соответствующая ему сессия.
type deviceFixture struct {
	token   string
	session *models.Session
}

func newDeviceFixture(t *testing.T, s *Service) deviceFixture {
	t.Helper()

	userID := uuid.New()
	deviceID := uuid.New()
	issuedAt := time.Now().UTC().Add(-time.Minute).Truncate(time.Second)

	pair, err := s.issuePair(context.Background(), userID, deviceID, issuedAt)
	require.NoError(t, err)

	return deviceFixture{
		token: pair.RefreshToken,
		session: &models.Session{
			UserID:       userID,
			DeviceID:     deviceID,
			DeviceTitle:  "Chrome on mac",
			IP:           "10.0.0.1",
			IssuedAt:     issuedAt,
			ExpiresAt:    issuedAt.Add(s.cfg.RefreshTokenTTL),
			LastActiveAt: issuedAt,
		},
	}
}

func TestListDevices_OK(t *testing.T) {
	t.Parallel()

	s, ms := newServiceWithMocks(t)
	fx := newDeviceFixture(t, s)

	other := *fx.session
	other.DeviceID = uuid.New()
	other.DeviceTitle = "Firefox on linux"
	other.IP = "10.0.0.2"

	ms.EXPECT().SessionByDevice(gomock.Any(), fx.session.UserID, fx.session.DeviceID).
		Return(fx.session, nil)
	ms.EXPECT().SessionsByUser(gomock.Any(), fx.session.UserID, gomock.Any()).
		Return([]models.Session{*fx.session, other}, nil)

	devices, err := s.ListDevices(context.Background(), fx.token)
	require.NoError(t, err)
	require.Len(t, devices, 2)

	require.Equal(t, fx.session.DeviceID, devices[0].DeviceID)
	require.Equal(t, "Chrome on mac", devices[0].Title)
	require.Equal(t, "10.0.0.1", devices[0].IP)
	require.Equal(t, other.DeviceID, devices[1].DeviceID)
	require.Equal(t, "Firefox on linux", devices[1].Title)
}

func TestListDevices_RotatedToken(t *testing.T) {
	t.Parallel()

	s, ms := newServiceWithMocks(t)
	fx := newDeviceFixture(t, s)

	// Сессия уже ротирована: её iat новее, чем в предъявленном токене.
	rotated := *fx.session
	rotated.IssuedAt = fx.session.IssuedAt.Add(30 * time.Second)

	ms.EXPECT().SessionByDevice(gomock.Any(), fx.session.UserID, fx.session.DeviceID).
		Return(&rotated, nil)

	_, err := s.ListDevices(context.Background(), fx.token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestListDevices_SessionGone(t *testing.T) {
	t.Parallel()

	s, ms := newServiceWithMocks(t)
	fx := newDeviceFixture(t, s)

	ms.EXPECT().SessionByDevice(gomock.Any(), fx.session.UserID, fx.session.DeviceID).
		Return(nil, storage.ErrNotFound)

	_, err := s.ListDevices(context.Background(), fx.token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestListDevices_ExpiredSession(t *testing.T) {
	t.Parallel()

	s, ms := newServiceWithMocks(t)
	fx := newDeviceFixture(t, s)

	expired := *fx.session
	expired.ExpiresAt = time.Now().UTC().Add(-time.Second)

	ms.EXPECT().SessionByDevice(gomock.Any(), fx.session.UserID, fx.session.DeviceID).
		Return(&expired, nil)

	_, err := s.ListDevices(context.Background(), fx.token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestDeleteOtherDevices_OK(t *testing.T) {
	t.Parallel()

	s, ms := newServiceWithMocks(t)
	fx := newDeviceFixture(t, s)

	ms.EXPECT().SessionByDevice(gomock.Any(), fx.session.UserID, fx.session.DeviceID).
		Return(fx.session, nil)
	ms.EXPECT().DeleteOtherSessions(gomock.Any(), fx.session.UserID, fx.session.DeviceID).
		Return(nil)

	require.NoError(t, s.DeleteOtherDevices(context.Background(), fx.token))
}

func TestDeleteDevice_OK(t *testing.T) {
	t.Parallel()

	s, ms := newServiceWithMocks(t)
	fx := newDeviceFixture(t, s)

	target := *fx.session
	target.DeviceID = uuid.New()

	ms.EXPECT().SessionByDevice(gomock.Any(), fx.session.UserID, fx.session.DeviceID).
		Return(fx.session, nil)
	ms.EXPECT().SessionByDeviceID(gomock.Any(), target.DeviceID).Return(&target, nil)
	ms.EXPECT().DeleteSessionByDeviceID(gomock.Any(), target.DeviceID).Return(nil)

	require.NoError(t, s.DeleteDevice(context.Background(), fx.token, target.DeviceID))
}

func TestDeleteDevice_OwnCurrentDevice(t *testing.T) {
	t.Parallel()

	s, ms := newServiceWithMocks(t)
	fx := newDeviceFixture(t, s)

	ms.EXPECT().SessionByDevice(gomock.Any(), fx.session.UserID, fx.session.DeviceID).
		Return(fx.session, nil)
	ms.EXPECT().SessionByDeviceID(gomock.Any(), fx.session.DeviceID).Return(fx.session, nil)
	ms.EXPECT().DeleteSessionByDeviceID(gomock.Any(), fx.session.DeviceID).Return(nil)

	require.NoError(t, s.DeleteDevice(context.Background(), fx.token, fx.session.DeviceID))
}

func TestDeleteDevice_NotFound(t *testing.T) {
	t.Parallel()

	s, ms := newServiceWithMocks(t)
	fx := newDeviceFixture(t, s)

	unknown := uuid.New()
	ms.EXPECT().SessionByDevice(gomock.Any(), fx.session.UserID, fx.session.DeviceID).
		Return(fx.session, nil)
	ms.EXPECT().SessionByDeviceID(gomock.Any(), unknown).Return(nil, storage.ErrNotFound)

	require.ErrorIs(t, s.DeleteDevice(context.Background(), fx.token, unknown), ErrDeviceNotFound)
}

func TestDeleteDevice_Foreign(t *testing.T) {
	t.Parallel()

	s, ms := newServiceWithMocks(t)
	fx := newDeviceFixture(t, s)

	foreign := *fx.session
	foreign.UserID = uuid.New()
	foreign.DeviceID = uuid.New()

	ms.EXPECT().SessionByDevice(gomock.Any(), fx.session.UserID, fx.session.DeviceID).
		Return(fx.session, nil)
	ms.EXPECT().SessionByDeviceID(gomock.Any(), foreign.DeviceID).Return(&foreign, nil)

	require.ErrorIs(t, s.DeleteDevice(context.Background(), fx.token, foreign.DeviceID), ErrForeignDevice)
}
