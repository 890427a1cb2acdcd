package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"telegram-bulk-checker/internal/domain"
)

func newTestCheckService(resolver *mockResolver) *CheckService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCheckService(resolver, WithCheckLogger(logger))
}

func TestCheckService_CheckInvite_Preview(t *testing.T) {
	resolver := new(mockResolver)
	resolver.On("CheckInvite", mock.Anything, "AAAAAAAAAAAAAAAAAA").Return(domain.InviteInfo(&domain.InvitePreview{
		Title:             "Crypto News",
		Channel:           true,
		Megagroup:         true,
		RequestNeeded:     true,
		Verified:          false,
		ParticipantsCount: 4200,
	}), nil)

	service := newTestCheckService(resolver)
	res, err := service.CheckInvite(context.Background(), "AAAAAAAAAAAAAAAAAA")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusValid, res.Status)
	assert.Equal(t, domain.KindSupergroup, res.Kind)
	assert.Equal(t, domain.VisibilityPrivate, res.Visibility)
	assert.NotNil(t, res.RequiresApproval)
	assert.True(t, *res.RequiresApproval)
	assert.NotNil(t, res.Verified)
	assert.False(t, *res.Verified)
	assert.NotNil(t, res.MemberCount)
	assert.Equal(t, 4200, *res.MemberCount)
	assert.NotNil(t, res.Title)
	assert.Equal(t, "Crypto News", *res.Title)
	assert.Nil(t, res.Username)
}

func TestCheckService_CheckInvite_PreviewKinds(t *testing.T) {
	cases := []struct {
		name      string
		channel   bool
		megagroup bool
		wantKind  string
	}{
		{"канал и megagroup дают супергруппу", true, true, domain.KindSupergroup},
		{"только канал дает канал", true, false, domain.KindChannel},
		{"иначе группа", false, false, domain.KindGroup},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolver := new(mockResolver)
			resolver.On("CheckInvite", mock.Anything, mock.Anything).Return(domain.InviteInfo(&domain.InvitePreview{
				Channel:   tc.channel,
				Megagroup: tc.megagroup,
			}), nil)

			service := newTestCheckService(resolver)
			res, err := service.CheckInvite(context.Background(), "AAAAAAAAAAAAAAAAAA")

			assert.NoError(t, err)
			assert.Equal(t, tc.wantKind, res.Kind)
		})
	}
}

func TestCheckService_CheckInvite_Membership(t *testing.T) {
	resolver := new(mockResolver)
	resolver.On("CheckInvite", mock.Anything, "AAAAAAAAAAAAAAAAAA").Return(domain.InviteInfo(&domain.InviteMembership{
		Entity: &domain.Channel{Title: "Gopher Talk", Username: "gophertalk", Verified: true},
	}), nil)

	service := newTestCheckService(resolver)
	res, err := service.CheckInvite(context.Background(), "AAAAAAAAAAAAAAAAAA")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusValid, res.Status)
	assert.Equal(t, domain.KindChannel, res.Kind)
	assert.Equal(t, domain.VisibilityPublic, res.Visibility)
	assert.NotNil(t, res.Username)
	assert.Equal(t, "gophertalk", *res.Username)
	// В этой форме ответа количество участников недоступно:
	// поле отсутствует, а не равно нулю.
	assert.Nil(t, res.MemberCount)
}

func TestCheckService_CheckInvite_Fault(t *testing.T) {
	resolver := new(mockResolver)
	resolver.On("CheckInvite", mock.Anything, "AAAAAAAAAAAAAAAAAA").Return(nil,
		&domain.RemoteFault{Kind: "InviteHashExpired", Message: "The invite link has expired"})

	service := newTestCheckService(resolver)
	res, err := service.CheckInvite(context.Background(), "AAAAAAAAAAAAAAAAAA")

	assert.NoError(t, err)
	assert.Equal(t, "invalid: InviteHashExpired", res.Status)
	assert.Equal(t, domain.KindUnknown, res.Kind)
	assert.Equal(t, domain.VisibilityUnknown, res.Visibility)
	assert.Nil(t, res.Verified)
	assert.Nil(t, res.RequiresApproval)
	assert.NotNil(t, res.Extra)
	assert.Equal(t, "The invite link has expired", *res.Extra)
}

func TestCheckService_CheckInvite_UnexpectedError(t *testing.T) {
	resolver := new(mockResolver)
	unexpected := errors.New("connection reset")
	resolver.On("CheckInvite", mock.Anything, mock.Anything).Return(nil, unexpected)

	service := newTestCheckService(resolver)
	_, err := service.CheckInvite(context.Background(), "AAAAAAAAAAAAAAAAAA")

	// Несмоделированный сбой выходит наружу как ошибка драйвера.
	assert.ErrorIs(t, err, unexpected)
}

func TestCheckService_CheckUsername_Channel(t *testing.T) {
	resolver := new(mockResolver)
	channel := &domain.Channel{ID: 100, AccessHash: 7, Title: "Telegram News", Username: "telegram", Verified: true}
	resolver.On("ResolveUsername", mock.Anything, "telegram").Return(&domain.ResolvedPeer{
		Chats: []domain.RemoteEntity{channel},
	}, nil)

	count := 9000
	pending := 3
	resolver.On("GetFullChannelInfo", mock.Anything, channel).Return(&domain.ChannelFullInfo{
		ParticipantsCount: &count,
		RequestsPending:   &pending,
	}, nil)

	service := newTestCheckService(resolver)
	res, err := service.CheckUsername(context.Background(), "telegram")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusResolved, res.Status)
	assert.Equal(t, domain.KindChannel, res.Kind)
	assert.Equal(t, domain.VisibilityPublic, res.Visibility)
	assert.NotNil(t, res.MemberCount)
	assert.Equal(t, 9000, *res.MemberCount)
	assert.NotNil(t, res.RequiresApproval)
	assert.True(t, *res.RequiresApproval)
	resolver.AssertExpectations(t)
}

func TestCheckService_CheckUsername_NoPendingRequests(t *testing.T) {
	resolver := new(mockResolver)
	channel := &domain.Channel{Username: "quietplace"}
	resolver.On("ResolveUsername", mock.Anything, mock.Anything).Return(&domain.ResolvedPeer{
		Chats: []domain.RemoteEntity{channel},
	}, nil)

	count := 12
	zero := 0
	resolver.On("GetFullChannelInfo", mock.Anything, channel).Return(&domain.ChannelFullInfo{
		ParticipantsCount: &count,
		RequestsPending:   &zero,
	}, nil)

	service := newTestCheckService(resolver)
	res, err := service.CheckUsername(context.Background(), "quietplace")

	assert.NoError(t, err)
	// Нулевой счетчик заявок не доказывает, что одобрение не требуется:
	// поле остается неопределенным, а не false.
	assert.Nil(t, res.RequiresApproval)
	assert.Equal(t, 12, *res.MemberCount)
}

func TestCheckService_CheckUsername_FullInfoFaultSwallowed(t *testing.T) {
	resolver := new(mockResolver)
	channel := &domain.Channel{Username: "closed"}
	resolver.On("ResolveUsername", mock.Anything, mock.Anything).Return(&domain.ResolvedPeer{
		Chats: []domain.RemoteEntity{channel},
	}, nil)
	resolver.On("GetFullChannelInfo", mock.Anything, channel).Return(nil,
		&domain.RemoteFault{Kind: "ChatAdminRequired", Message: "admin rights required"})

	service := newTestCheckService(resolver)
	res, err := service.CheckUsername(context.Background(), "closed")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusResolved, res.Status)
	assert.Nil(t, res.MemberCount)
	assert.Nil(t, res.RequiresApproval)
}

func TestCheckService_CheckUsername_User(t *testing.T) {
	resolver := new(mockResolver)
	resolver.On("ResolveUsername", mock.Anything, "durov").Return(&domain.ResolvedPeer{
		Users: []domain.RemoteEntity{&domain.User{Username: "durov", Verified: true}},
	}, nil)

	service := newTestCheckService(resolver)
	res, err := service.CheckUsername(context.Background(), "durov")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusResolved, res.Status)
	assert.Equal(t, domain.KindUser, res.Kind)
	assert.Equal(t, domain.VisibilityPublic, res.Visibility)
	assert.NotNil(t, res.Verified)
	assert.True(t, *res.Verified)
	// Для пользователей вторичный запрос не выполняется.
	resolver.AssertNotCalled(t, "GetFullChannelInfo", mock.Anything, mock.Anything)
}

func TestCheckService_CheckUsername_ChatPreferredOverUser(t *testing.T) {
	resolver := new(mockResolver)
	channel := &domain.Channel{Username: "shared"}
	resolver.On("ResolveUsername", mock.Anything, mock.Anything).Return(&domain.ResolvedPeer{
		Chats: []domain.RemoteEntity{channel},
		Users: []domain.RemoteEntity{&domain.User{Username: "shared"}},
	}, nil)
	resolver.On("GetFullChannelInfo", mock.Anything, channel).Return(nil,
		&domain.RemoteFault{Kind: "ChannelPrivate"})

	service := newTestCheckService(resolver)
	res, err := service.CheckUsername(context.Background(), "shared")

	assert.NoError(t, err)
	assert.Equal(t, domain.KindChannel, res.Kind)
}

func TestCheckService_CheckUsername_EmptyPeerIsNotOccupied(t *testing.T) {
	resolver := new(mockResolver)
	resolver.On("ResolveUsername", mock.Anything, mock.Anything).Return(&domain.ResolvedPeer{}, nil)

	service := newTestCheckService(resolver)
	res, err := service.CheckUsername(context.Background(), "ghost123")

	assert.NoError(t, err)
	assert.Equal(t, "invalid_username: UsernameNotOccupied", res.Status)
	assert.Nil(t, res.Extra)
}

func TestCheckService_CheckUsername_Faults(t *testing.T) {
	t.Run("Сбой UsernameInvalid дает invalid_username без extra", func(t *testing.T) {
		resolver := new(mockResolver)
		resolver.On("ResolveUsername", mock.Anything, mock.Anything).Return(nil,
			&domain.RemoteFault{Kind: "UsernameInvalid", Message: "Nobody is using this username"})

		service := newTestCheckService(resolver)
		res, err := service.CheckUsername(context.Background(), "bad!name")

		assert.NoError(t, err)
		assert.Equal(t, "invalid_username: UsernameInvalid", res.Status)
		assert.Equal(t, domain.KindUnknown, res.Kind)
		assert.Nil(t, res.Extra)
	})

	t.Run("Прочие сбои дают error с extra", func(t *testing.T) {
		resolver := new(mockResolver)
		resolver.On("ResolveUsername", mock.Anything, mock.Anything).Return(nil,
			&domain.RemoteFault{Kind: "FloodWait", Message: "A wait of 30 seconds is required"})

		service := newTestCheckService(resolver)
		res, err := service.CheckUsername(context.Background(), "whatever")

		assert.NoError(t, err)
		assert.Equal(t, "error: FloodWait", res.Status)
		assert.NotNil(t, res.Extra)
		assert.Equal(t, "A wait of 30 seconds is required", *res.Extra)
	})

	t.Run("Несмоделированный сбой выходит наружу", func(t *testing.T) {
		resolver := new(mockResolver)
		unexpected := errors.New("boom")
		resolver.On("ResolveUsername", mock.Anything, mock.Anything).Return(nil, unexpected)

		service := newTestCheckService(resolver)
		_, err := service.CheckUsername(context.Background(), "whatever")

		assert.ErrorIs(t, err, unexpected)
	})
}

func TestCheckService_CheckUsername_GroupFallsBackToHandle(t *testing.T) {
	resolver := new(mockResolver)
	resolver.On("ResolveUsername", mock.Anything, "oldgroup").Return(&domain.ResolvedPeer{
		Chats: []domain.RemoteEntity{&domain.Group{Title: "Old Group"}},
	}, nil)

	service := newTestCheckService(resolver)
	res, err := service.CheckUsername(context.Background(), "oldgroup")

	assert.NoError(t, err)
	assert.Equal(t, domain.KindGroup, res.Kind)
	assert.Equal(t, domain.VisibilityPrivate, res.Visibility)
	assert.NotNil(t, res.Username)
	assert.Equal(t, "oldgroup", *res.Username)
}
