package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gotd/td/tg"
	"github.com/gotd/td/tgerr"

	"telegram-bulk-checker/internal/domain"
	"telegram-bulk-checker/internal/ports"
)

// ResolverConfig хранит конфигурацию для Resolver.
type ResolverConfig struct {
	// OperationTimeout — таймаут для одного вызова Telegram API.
	OperationTimeout time.Duration
	// ClientRetryPause — продолжительность паузы перед повторной попыткой получить клиент от роутера.
	ClientRetryPause time.Duration
}

// ResolverOption — функциональная опция для настройки Resolver.
type ResolverOption func(*Resolver)

// WithOperationTimeout устанавливает таймаут для одной операции API.
func WithOperationTimeout(d time.Duration) ResolverOption {
	return func(r *Resolver) {
		r.config.OperationTimeout = d
	}
}

// WithClientRetryPause устанавливает длительность паузы между повторными попытками получения клиента.
func WithClientRetryPause(d time.Duration) ResolverOption {
	return func(r *Resolver) {
		r.config.ClientRetryPause = d
	}
}

// WithResolverLogger устанавливает логгер для резолвера.
func WithResolverLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// Resolver выполняет доменные запросы к Telegram API через роутер клиентов
// и сворачивает транспортные формы ответов и ошибок в доменные.
// Резолвер не хранит состояние и безопасен для одновременного использования.
type Resolver struct {
	router ports.Router
	config ResolverConfig
	log    *slog.Logger
}

// NewResolver создает новый Resolver с использованием функциональных опций.
func NewResolver(router ports.Router, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		router: router,
		config: ResolverConfig{
			OperationTimeout: 5 * time.Second,
			ClientRetryPause: 1 * time.Second,
		},
		log: slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// CheckInvite проверяет инвайт-код и возвращает одну из доменных форм ответа.
func (r *Resolver) CheckInvite(ctx context.Context, code string) (domain.InviteInfo, error) {
	logArgs := []any{"operation", "MessagesCheckChatInvite"}
	res, err := r.executeOperation(ctx, logArgs, func(ctx context.Context, cl ports.TelegramClient) (any, error) {
		return cl.MessagesCheckChatInvite(ctx, code)
	})
	if err != nil {
		return nil, faultFrom(err)
	}

	invite, ok := res.(tg.ChatInviteClass)
	if !ok {
		return nil, fmt.Errorf("unexpected invite check result type %T", res)
	}
	return inviteInfoFrom(invite), nil
}

// ResolveUsername разрешает юзернейм в параллельные списки доменных сущностей.
func (r *Resolver) ResolveUsername(ctx context.Context, handle string) (*domain.ResolvedPeer, error) {
	cleanUsername := strings.TrimPrefix(handle, "@")
	logArgs := []any{"operation", "ContactsResolveUsername", "username", cleanUsername}
	res, err := r.executeOperation(ctx, logArgs, func(ctx context.Context, cl ports.TelegramClient) (any, error) {
		return cl.ContactsResolveUsername(ctx, &tg.ContactsResolveUsernameRequest{Username: cleanUsername})
	})
	if err != nil {
		return nil, faultFrom(err)
	}

	resolved, ok := res.(*tg.ContactsResolvedPeer)
	if !ok {
		return nil, fmt.Errorf("unexpected username resolution result type %T", res)
	}
	return resolvedPeerFrom(resolved), nil
}

// GetFullChannelInfo запрашивает полную информацию о канале.
func (r *Resolver) GetFullChannelInfo(ctx context.Context, channel *domain.Channel) (*domain.ChannelFullInfo, error) {
	input := &tg.InputChannel{ChannelID: channel.ID, AccessHash: channel.AccessHash}
	logArgs := []any{"operation", "ChannelsGetFullChannel", "channel_id", channel.ID}
	res, err := r.executeOperation(ctx, logArgs, func(ctx context.Context, cl ports.TelegramClient) (any, error) {
		return cl.ChannelsGetFullChannel(ctx, input)
	})
	if err != nil {
		return nil, faultFrom(err)
	}

	full, ok := res.(*tg.MessagesChatFull)
	if !ok {
		return nil, fmt.Errorf("unexpected full channel result type %T", res)
	}
	return channelFullFrom(full), nil
}

// executeOperation получает здорового клиента у роутера и выполняет операцию.
// Внутренний цикл отвечает за получение клиента. Он "бесконечный", но ограничен родительским контекстом.
func (r *Resolver) executeOperation(ctx context.Context, logArgs []any, fn func(ctx context.Context, cl ports.TelegramClient) (any, error)) (any, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		r.log.DebugContext(ctx, "Attempting to get a client from the router")
		apiClient, err := r.router.GetClient(ctx)
		if err != nil {
			r.log.WarnContext(ctx, "Failed to get a client from the router, will retry", "error", err, "pause", r.config.ClientRetryPause)
			select {
			case <-time.After(r.config.ClientRetryPause):
				continue
			case <-ctx.Done():
				return nil, fmt.Errorf("не удалось получить клиент, так как контекст был отменен: %w", ctx.Err())
			}
		}

		r.log.DebugContext(ctx, "Obtained client successfully", "client_id", apiClient.ID())

		opCtx, opCancel := context.WithTimeout(ctx, r.config.OperationTimeout)
		res, opErr := fn(opCtx, apiClient)
		opCancel()

		// Добавляем client_id к уже существующим аргументам лога.
		finalLogArgs := append(logArgs, "client_id", apiClient.ID())

		if opErr == nil {
			r.log.DebugContext(ctx, "API operation executed successfully", finalLogArgs...)
			return res, nil // Успех
		}

		// Ошибка операции возвращается вызывающей стороне без повтора.
		finalLogArgs = append(finalLogArgs, "error", opErr)
		r.log.WarnContext(ctx, "API operation failed", finalLogArgs...)
		return nil, fmt.Errorf("операция API завершилась с ошибкой: %w", opErr)
	}
}

// faultFrom сворачивает RPC-ошибку в доменный RemoteFault. Ошибки, не
// являющиеся RPC-ошибками (транспорт, таймауты), возвращаются как есть.
func faultFrom(err error) error {
	rpcErr, ok := tgerr.As(err)
	if !ok {
		return err
	}
	return &domain.RemoteFault{
		Kind:    camelFromType(rpcErr.Type),
		Message: rpcErr.Message,
	}
}

// camelFromType переводит имя RPC-ошибки из SNAKE_CASE в CamelCase:
// "INVITE_HASH_EXPIRED" -> "InviteHashExpired".
func camelFromType(errType string) string {
	parts := strings.Split(errType, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}
