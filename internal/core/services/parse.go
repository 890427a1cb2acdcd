package services

import (
	"regexp"
	"strings"

	"telegram-bulk-checker/internal/domain"
)

// inviteRegexp распознает инвайт-ссылки: веб-форму t.me/joinchat/<код> или
// t.me/+<код>, а также deep link tg://join?invite=<код>. Код — не менее
// 16 символов из [A-Za-z0-9_-]. Совпадение ищется в любом месте строки.
var inviteRegexp = regexp.MustCompile(`(?i)(?:https?://)?t\.me/(?:joinchat/|\+)([A-Za-z0-9_-]{16,})|tg://join\?invite=([A-Za-z0-9_-]{16,})`)

// usernameRegexp распознает публичные юзернеймы: t.me/<имя> или @<имя>,
// где имя — от 5 до 32 символов из [A-Za-z0-9_].
var usernameRegexp = regexp.MustCompile(`(?i)(?:https?://)?t\.me/([A-Za-z0-9_]{5,32})|@([A-Za-z0-9_]{5,32})`)

// ParseInput разбирает свободную строку в типизированный идентификатор.
// Инвайт-шаблон имеет приоритет над шаблоном юзернейма. Функция чистая и
// детерминированная, сетевой доступ не требуется.
func ParseInput(value string) domain.Identifier {
	value = strings.TrimSpace(value)
	if value == "" {
		return domain.Identifier{Kind: domain.IdentifierUnknown}
	}

	if m := inviteRegexp.FindStringSubmatch(value); m != nil {
		code := m[1]
		if code == "" {
			code = m[2]
		}
		return domain.Identifier{Kind: domain.IdentifierInvite, Payload: code}
	}

	if m := usernameRegexp.FindStringSubmatch(value); m != nil {
		username := m[1]
		if username == "" {
			username = m[2]
		}
		return domain.Identifier{Kind: domain.IdentifierUsername, Payload: username}
	}

	return domain.Identifier{Kind: domain.IdentifierUnknown}
}
