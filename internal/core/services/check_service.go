package services

import (
	"context"
	"errors"
	"log/slog"

	"telegram-bulk-checker/internal/domain"
	"telegram-bulk-checker/internal/ports"
)

// CheckOption — функциональная опция для настройки CheckService.
type CheckOption func(*CheckService)

// WithCheckLogger устанавливает логгер для сервиса.
func WithCheckLogger(l *slog.Logger) CheckOption {
	return func(s *CheckService) {
		if l != nil {
			s.log = l
		}
	}
}

// CheckService превращает идентификаторы в нормализованные результаты,
// интерпретируя ответы и сбои удаленного коллаборатора.
// Сервис не хранит состояние и безопасен для одновременного использования.
type CheckService struct {
	resolver ports.ChatResolver
	log      *slog.Logger
}

// NewCheckService создает новый экземпляр CheckService.
func NewCheckService(resolver ports.ChatResolver, opts ...CheckOption) *CheckService {
	s := &CheckService{
		resolver: resolver,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckInvite проверяет инвайт-код через коллаборатора и сворачивает
// ответ или смоделированный сбой в CheckResult. Ошибка возвращается
// только для несмоделированных сбоев (они учитываются драйвером отдельно).
func (s *CheckService) CheckInvite(ctx context.Context, code string) (domain.CheckResult, error) {
	s.log.DebugContext(ctx, "Checking invite", "code", code)

	info, err := s.resolver.CheckInvite(ctx, code)
	if err != nil {
		var fault *domain.RemoteFault
		if !errors.As(err, &fault) {
			return domain.CheckResult{}, err
		}
		s.log.DebugContext(ctx, "Invite check returned a modeled fault", "code", code, "fault", fault.Kind)
		res := unknownResult(code, domain.InvalidStatus(fault.Kind))
		if fault.Message != "" {
			res.Extra = ptr(fault.Message)
		}
		return res, nil
	}

	res := domain.CheckResult{
		Input:      code,
		Status:     domain.StatusValid,
		Kind:       domain.KindUnknown,
		Visibility: domain.VisibilityPrivate,
	}

	switch v := info.(type) {
	case *domain.InvitePreview:
		// Предпросмотр не раскрывает публичный юзернейм, видимость остается приватной.
		switch {
		case v.Channel && v.Megagroup:
			res.Kind = domain.KindSupergroup
		case v.Channel:
			res.Kind = domain.KindChannel
		default:
			res.Kind = domain.KindGroup
		}
		res.RequiresApproval = ptr(v.RequestNeeded)
		res.Verified = ptr(v.Verified)
		res.MemberCount = ptr(v.ParticipantsCount)
		if v.Title != "" {
			res.Title = ptr(v.Title)
		}
	case *domain.InviteMembership:
		// Мы уже участник: классифицируем вложенную сущность.
		// Количество участников в этой форме ответа недоступно.
		res.Kind, res.Visibility, res.Verified = Classify(v.Entity)
		if username := entityUsername(v.Entity); username != "" {
			res.Username = ptr(username)
		}
		if title := entityTitle(v.Entity); title != "" {
			res.Title = ptr(title)
		}
	default:
		// Неожиданная успешная форма ответа (например, peek-предпросмотр).
		res.Visibility = domain.VisibilityUnknown
	}

	return res, nil
}

// CheckUsername разрешает юзернейм через коллаборатора. Для каналов
// выполняется вторичный best-effort запрос полной информации; его сбой
// намеренно проглатывается и лишь оставляет поля неопределенными.
func (s *CheckService) CheckUsername(ctx context.Context, handle string) (domain.CheckResult, error) {
	s.log.DebugContext(ctx, "Resolving username", "username", handle)

	entity, err := s.resolveFirstEntity(ctx, handle)
	if err != nil {
		var fault *domain.RemoteFault
		if !errors.As(err, &fault) {
			return domain.CheckResult{}, err
		}
		if fault.Kind == "UsernameInvalid" || fault.Kind == "UsernameNotOccupied" {
			s.log.DebugContext(ctx, "Username does not exist", "username", handle, "fault", fault.Kind)
			return unknownResult(handle, domain.InvalidUsernameStatus(fault.Kind)), nil
		}
		s.log.DebugContext(ctx, "Username resolution returned a modeled fault", "username", handle, "fault", fault.Kind)
		res := unknownResult(handle, domain.ErrorStatus(fault.Kind))
		if fault.Message != "" {
			res.Extra = ptr(fault.Message)
		}
		return res, nil
	}

	kind, visibility, verified := Classify(entity)
	res := domain.CheckResult{
		Input:      handle,
		Status:     domain.StatusResolved,
		Kind:       kind,
		Visibility: visibility,
		Verified:   verified,
	}

	if title := entityTitle(entity); title != "" {
		res.Title = ptr(title)
	}

	switch entity.(type) {
	case *domain.Group:
		// У групп нет публичного юзернейма, подставляем запрошенный.
		res.Username = ptr(handle)
	default:
		if username := entityUsername(entity); username != "" {
			res.Username = ptr(username)
		}
	}

	if ch, ok := entity.(*domain.Channel); ok {
		full, fullErr := s.resolver.GetFullChannelInfo(ctx, ch)
		if fullErr != nil {
			// Сбой вторичного запроса не меняет статус, поля остаются неопределенными.
			s.log.DebugContext(ctx, "Full channel info lookup failed, leaving fields unset", "username", handle, "error", fullErr)
		} else if full != nil {
			res.MemberCount = full.ParticipantsCount
			if full.RequestsPending != nil && *full.RequestsPending > 0 {
				res.RequiresApproval = ptr(true)
			}
		}
	}

	return res, nil
}

// resolveFirstEntity выбирает первую чатоподобную сущность, иначе первую
// пользовательскую; пустой ответ трактуется как сбой "юзернейм не занят".
func (s *CheckService) resolveFirstEntity(ctx context.Context, handle string) (domain.RemoteEntity, error) {
	peer, err := s.resolver.ResolveUsername(ctx, handle)
	if err != nil {
		return nil, err
	}
	if peer != nil && len(peer.Chats) > 0 {
		return peer.Chats[0], nil
	}
	if peer != nil && len(peer.Users) > 0 {
		return peer.Users[0], nil
	}
	return nil, &domain.RemoteFault{Kind: "UsernameNotOccupied", Message: "no entity matches the username"}
}

// unknownResult строит результат, у которого осмыслены только вход и статус.
func unknownResult(input, status string) domain.CheckResult {
	return domain.CheckResult{
		Input:      input,
		Status:     status,
		Kind:       domain.KindUnknown,
		Visibility: domain.VisibilityUnknown,
	}
}

func ptr[T any](v T) *T {
	return &v
}
