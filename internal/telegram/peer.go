package telegram

import (
	"github.com/gotd/td/tg"

	"telegram-bulk-checker/internal/domain"
)

// entityFromChat сворачивает чатоподобную сущность API в доменную форму.
// Пустые варианты дают nil; forbidden-варианты сохраняют доступные поля.
func entityFromChat(chat tg.ChatClass) domain.RemoteEntity {
	switch v := chat.(type) {
	case *tg.Channel:
		username, _ := v.GetUsername()
		accessHash, _ := v.GetAccessHash()
		return &domain.Channel{
			ID:         v.ID,
			AccessHash: accessHash,
			Title:      v.Title,
			Username:   username,
			Megagroup:  v.Megagroup,
			Verified:   v.Verified,
		}
	case *tg.ChannelForbidden:
		return &domain.Channel{
			ID:         v.ID,
			AccessHash: v.AccessHash,
			Title:      v.Title,
			Megagroup:  v.Megagroup,
		}
	case *tg.Chat:
		// У обычных групп нет ни юзернейма, ни флага верификации.
		return &domain.Group{ID: v.ID, Title: v.Title}
	case *tg.ChatForbidden:
		return &domain.Group{ID: v.ID, Title: v.Title}
	default:
		return nil
	}
}

// entityFromUser сворачивает пользовательскую сущность API в доменную форму.
func entityFromUser(user tg.UserClass) domain.RemoteEntity {
	v, ok := user.(*tg.User)
	if !ok {
		return nil
	}
	username, _ := v.GetUsername()
	accessHash, _ := v.GetAccessHash()
	return &domain.User{
		ID:         v.ID,
		AccessHash: accessHash,
		Username:   username,
		Verified:   v.Verified,
	}
}

// inviteInfoFrom сворачивает ответ проверки инвайта в доменную форму.
// Неизвестные формы ответа (включая peek-предпросмотр) дают nil.
func inviteInfoFrom(invite tg.ChatInviteClass) domain.InviteInfo {
	switch v := invite.(type) {
	case *tg.ChatInvite:
		return &domain.InvitePreview{
			Title:             v.Title,
			Channel:           v.Channel,
			Megagroup:         v.Megagroup,
			RequestNeeded:     v.RequestNeeded,
			Verified:          v.Verified,
			ParticipantsCount: v.ParticipantsCount,
		}
	case *tg.ChatInviteAlready:
		return &domain.InviteMembership{Entity: entityFromChat(v.Chat)}
	default:
		return nil
	}
}

// resolvedPeerFrom сворачивает ответ разрешения юзернейма в доменную форму.
// Сущности, не представимые в домене, пропускаются.
func resolvedPeerFrom(peer *tg.ContactsResolvedPeer) *domain.ResolvedPeer {
	if peer == nil {
		return nil
	}
	resolved := &domain.ResolvedPeer{}
	for _, chat := range peer.Chats {
		if entity := entityFromChat(chat); entity != nil {
			resolved.Chats = append(resolved.Chats, entity)
		}
	}
	for _, user := range peer.Users {
		if entity := entityFromUser(user); entity != nil {
			resolved.Users = append(resolved.Users, entity)
		}
	}
	return resolved
}

// channelFullFrom извлекает опциональные счетчики из полной информации о канале.
func channelFullFrom(full *tg.MessagesChatFull) *domain.ChannelFullInfo {
	if full == nil {
		return nil
	}
	channelFull, ok := full.FullChat.(*tg.ChannelFull)
	if !ok {
		return &domain.ChannelFullInfo{}
	}
	info := &domain.ChannelFullInfo{}
	if count, ok := channelFull.GetParticipantsCount(); ok {
		info.ParticipantsCount = &count
	}
	if pending, ok := channelFull.GetRequestsPending(); ok {
		info.RequestsPending = &pending
	}
	return info
}
