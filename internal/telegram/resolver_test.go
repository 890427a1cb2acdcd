package telegram

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gotd/td/tg"
	"github.com/gotd/td/tgerr"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"telegram-bulk-checker/internal/domain"
	"telegram-bulk-checker/internal/ports"
)

// mockAPIClient — мок для интерфейса ports.TelegramClient.
type mockAPIClient struct {
	mock.Mock
}

func (m *mockAPIClient) MessagesCheckChatInvite(ctx context.Context, hash string) (tg.ChatInviteClass, error) {
	args := m.Called(ctx, hash)
	res, _ := args.Get(0).(tg.ChatInviteClass)
	return res, args.Error(1)
}

func (m *mockAPIClient) ContactsResolveUsername(ctx context.Context, req *tg.ContactsResolveUsernameRequest) (*tg.ContactsResolvedPeer, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*tg.ContactsResolvedPeer)
	return res, args.Error(1)
}

func (m *mockAPIClient) ChannelsGetFullChannel(ctx context.Context, channel tg.InputChannelClass) (*tg.MessagesChatFull, error) {
	args := m.Called(ctx, channel)
	res, _ := args.Get(0).(*tg.MessagesChatFull)
	return res, args.Error(1)
}

func (m *mockAPIClient) Health(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockAPIClient) ID() string {
	return "mock-client"
}

func (m *mockAPIClient) Start(ctx context.Context) {}

// mockRouter — мок для интерфейса ports.Router.
type mockRouter struct {
	mock.Mock
}

func (m *mockRouter) GetClient(ctx context.Context) (ports.TelegramClient, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(ports.TelegramClient)
	return res, args.Error(1)
}

func (m *mockRouter) Stop() {
	m.Called()
}

func newTestResolver(router ports.Router) *Resolver {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewResolver(router,
		WithResolverLogger(logger),
		WithOperationTimeout(time.Second),
		WithClientRetryPause(time.Millisecond),
	)
}

func TestResolver_CheckInvite(t *testing.T) {
	t.Run("Предпросмотр инвайта сворачивается в доменную форму", func(t *testing.T) {
		client := new(mockAPIClient)
		client.On("MessagesCheckChatInvite", mock.Anything, "AAAAAAAAAAAAAAAAAA").
			Return(&tg.ChatInvite{
				Title:             "Dev Chat",
				Channel:           true,
				Megagroup:         true,
				RequestNeeded:     true,
				Verified:          true,
				ParticipantsCount: 1500,
			}, nil).Once()

		router := new(mockRouter)
		router.On("GetClient", mock.Anything).Return(client, nil)

		info, err := newTestResolver(router).CheckInvite(context.Background(), "AAAAAAAAAAAAAAAAAA")
		require.NoError(t, err)

		preview, ok := info.(*domain.InvitePreview)
		require.True(t, ok)
		require.Equal(t, "Dev Chat", preview.Title)
		require.True(t, preview.Channel)
		require.True(t, preview.Megagroup)
		require.True(t, preview.RequestNeeded)
		require.True(t, preview.Verified)
		require.Equal(t, 1500, preview.ParticipantsCount)
		client.AssertExpectations(t)
	})

	t.Run("Уже участник: инвайт развернут в сущность", func(t *testing.T) {
		channel := &tg.Channel{ID: 700, Title: "Members Only", Megagroup: true}
		client := new(mockAPIClient)
		client.On("MessagesCheckChatInvite", mock.Anything, mock.Anything).
			Return(&tg.ChatInviteAlready{Chat: channel}, nil).Once()

		router := new(mockRouter)
		router.On("GetClient", mock.Anything).Return(client, nil)

		info, err := newTestResolver(router).CheckInvite(context.Background(), "BBBBBBBBBBBBBBBBBB")
		require.NoError(t, err)

		membership, ok := info.(*domain.InviteMembership)
		require.True(t, ok)
		entity, ok := membership.Entity.(*domain.Channel)
		require.True(t, ok)
		require.Equal(t, int64(700), entity.ID)
		require.Equal(t, "Members Only", entity.Title)
		require.True(t, entity.Megagroup)
	})

	t.Run("Peek-предпросмотр дает nil без ошибки", func(t *testing.T) {
		client := new(mockAPIClient)
		client.On("MessagesCheckChatInvite", mock.Anything, mock.Anything).
			Return(&tg.ChatInvitePeek{Chat: &tg.Chat{ID: 1}}, nil).Once()

		router := new(mockRouter)
		router.On("GetClient", mock.Anything).Return(client, nil)

		info, err := newTestResolver(router).CheckInvite(context.Background(), "CCCCCCCCCCCCCCCCCC")
		require.NoError(t, err)
		require.Nil(t, info)
	})

	t.Run("RPC-ошибка сворачивается в RemoteFault с CamelCase-именем", func(t *testing.T) {
		client := new(mockAPIClient)
		client.On("MessagesCheckChatInvite", mock.Anything, mock.Anything).
			Return(nil, tgerr.New(400, "INVITE_HASH_EXPIRED")).Once()

		router := new(mockRouter)
		router.On("GetClient", mock.Anything).Return(client, nil)

		_, err := newTestResolver(router).CheckInvite(context.Background(), "DDDDDDDDDDDDDDDDDD")
		require.Error(t, err)

		var fault *domain.RemoteFault
		require.ErrorAs(t, err, &fault)
		require.Equal(t, "InviteHashExpired", fault.Kind)
	})

	t.Run("Транспортная ошибка возвращается как есть", func(t *testing.T) {
		transportErr := errors.New("connection reset by peer")
		client := new(mockAPIClient)
		client.On("MessagesCheckChatInvite", mock.Anything, mock.Anything).
			Return(nil, transportErr).Once()

		router := new(mockRouter)
		router.On("GetClient", mock.Anything).Return(client, nil)

		_, err := newTestResolver(router).CheckInvite(context.Background(), "EEEEEEEEEEEEEEEEEE")
		require.Error(t, err)

		var fault *domain.RemoteFault
		require.False(t, errors.As(err, &fault))
		require.ErrorIs(t, err, transportErr)
	})
}

func TestResolver_ResolveUsername(t *testing.T) {
	t.Run("Префикс @ отбрасывается перед запросом", func(t *testing.T) {
		client := new(mockAPIClient)
		client.On("ContactsResolveUsername", mock.Anything, &tg.ContactsResolveUsernameRequest{Username: "telegram"}).
			Return(&tg.ContactsResolvedPeer{}, nil).Once()

		router := new(mockRouter)
		router.On("GetClient", mock.Anything).Return(client, nil)

		peer, err := newTestResolver(router).ResolveUsername(context.Background(), "@telegram")
		require.NoError(t, err)
		require.NotNil(t, peer)
		client.AssertExpectations(t)
	})

	t.Run("Чаты и пользователи сворачиваются в параллельные списки", func(t *testing.T) {
		tgChannel := &tg.Channel{ID: 10, Title: "News", Verified: true}
		tgChannel.SetUsername("news")
		tgChannel.SetAccessHash(555)
		tgUser := &tg.User{ID: 20, Verified: false}
		tgUser.SetUsername("alice")

		client := new(mockAPIClient)
		client.On("ContactsResolveUsername", mock.Anything, mock.Anything).
			Return(&tg.ContactsResolvedPeer{
				Chats: []tg.ChatClass{tgChannel, &tg.Chat{ID: 30, Title: "Small Group"}},
				Users: []tg.UserClass{tgUser},
			}, nil).Once()

		router := new(mockRouter)
		router.On("GetClient", mock.Anything).Return(client, nil)

		peer, err := newTestResolver(router).ResolveUsername(context.Background(), "news")
		require.NoError(t, err)
		require.Len(t, peer.Chats, 2)
		require.Len(t, peer.Users, 1)

		ch, ok := peer.Chats[0].(*domain.Channel)
		require.True(t, ok)
		require.Equal(t, "news", ch.Username)
		require.Equal(t, int64(555), ch.AccessHash)
		require.True(t, ch.Verified)

		group, ok := peer.Chats[1].(*domain.Group)
		require.True(t, ok)
		require.Equal(t, "Small Group", group.Title)

		user, ok := peer.Users[0].(*domain.User)
		require.True(t, ok)
		require.Equal(t, "alice", user.Username)
	})

	t.Run("Ошибка USERNAME_NOT_OCCUPIED сворачивается в RemoteFault", func(t *testing.T) {
		client := new(mockAPIClient)
		client.On("ContactsResolveUsername", mock.Anything, mock.Anything).
			Return(nil, tgerr.New(400, "USERNAME_NOT_OCCUPIED")).Once()

		router := new(mockRouter)
		router.On("GetClient", mock.Anything).Return(client, nil)

		_, err := newTestResolver(router).ResolveUsername(context.Background(), "ghost")
		var fault *domain.RemoteFault
		require.ErrorAs(t, err, &fault)
		require.Equal(t, "UsernameNotOccupied", fault.Kind)
	})
}

func TestResolver_GetFullChannelInfo(t *testing.T) {
	t.Run("Опциональные счетчики переносятся в доменную форму", func(t *testing.T) {
		full := &tg.ChannelFull{}
		full.SetParticipantsCount(9000)
		full.SetRequestsPending(3)

		client := new(mockAPIClient)
		client.On("ChannelsGetFullChannel", mock.Anything, &tg.InputChannel{ChannelID: 10, AccessHash: 555}).
			Return(&tg.MessagesChatFull{FullChat: full}, nil).Once()

		router := new(mockRouter)
		router.On("GetClient", mock.Anything).Return(client, nil)

		info, err := newTestResolver(router).GetFullChannelInfo(context.Background(), &domain.Channel{ID: 10, AccessHash: 555})
		require.NoError(t, err)
		require.NotNil(t, info.ParticipantsCount)
		require.Equal(t, 9000, *info.ParticipantsCount)
		require.NotNil(t, info.RequestsPending)
		require.Equal(t, 3, *info.RequestsPending)
		client.AssertExpectations(t)
	})

	t.Run("Отсутствующие счетчики остаются nil", func(t *testing.T) {
		client := new(mockAPIClient)
		client.On("ChannelsGetFullChannel", mock.Anything, mock.Anything).
			Return(&tg.MessagesChatFull{FullChat: &tg.ChannelFull{}}, nil).Once()

		router := new(mockRouter)
		router.On("GetClient", mock.Anything).Return(client, nil)

		info, err := newTestResolver(router).GetFullChannelInfo(context.Background(), &domain.Channel{ID: 10})
		require.NoError(t, err)
		require.Nil(t, info.ParticipantsCount)
		require.Nil(t, info.RequestsPending)
	})
}

func TestResolver_ClientAcquisitionRetry(t *testing.T) {
	client := new(mockAPIClient)
	client.On("MessagesCheckChatInvite", mock.Anything, mock.Anything).
		Return(&tg.ChatInvite{Title: "Late"}, nil).Once()

	router := new(mockRouter)
	router.On("GetClient", mock.Anything).Return(nil, errors.New("no healthy clients")).Twice()
	router.On("GetClient", mock.Anything).Return(client, nil).Once()

	info, err := newTestResolver(router).CheckInvite(context.Background(), "FFFFFFFFFFFFFFFFFF")
	require.NoError(t, err)
	require.NotNil(t, info)
	router.AssertExpectations(t)
}

func TestCamelFromType(t *testing.T) {
	cases := map[string]string{
		"INVITE_HASH_EXPIRED":   "InviteHashExpired",
		"USERNAME_INVALID":      "UsernameInvalid",
		"FLOOD_WAIT":            "FloodWait",
		"CHANNEL_PRIVATE":       "ChannelPrivate",
		"CHAT_ADMIN_REQUIRED":   "ChatAdminRequired",
		"USERNAME_NOT_OCCUPIED": "UsernameNotOccupied",
	}
	for input, want := range cases {
		require.Equal(t, want, camelFromType(input), "type %q", input)
	}
}
