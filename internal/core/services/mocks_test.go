package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"telegram-bulk-checker/internal/domain"
)

// mockResolver — мок для интерфейса ports.ChatResolver.
type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) CheckInvite(ctx context.Context, code string) (domain.InviteInfo, error) {
	args := m.Called(ctx, code)
	if res := args.Get(0); res != nil {
		return res.(domain.InviteInfo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockResolver) ResolveUsername(ctx context.Context, handle string) (*domain.ResolvedPeer, error) {
	args := m.Called(ctx, handle)
	if res := args.Get(0); res != nil {
		return res.(*domain.ResolvedPeer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockResolver) GetFullChannelInfo(ctx context.Context, ch *domain.Channel) (*domain.ChannelFullInfo, error) {
	args := m.Called(ctx, ch)
	if res := args.Get(0); res != nil {
		return res.(*domain.ChannelFullInfo), args.Error(1)
	}
	return nil, args.Error(1)
}
