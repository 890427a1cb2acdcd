// Package format содержит чистые функции отображения нормализованного
// результата проверки в текстовые формы. Функции не имеют побочных
// эффектов и детерминированы.
package format

import (
	"fmt"
	"strings"

	"telegram-bulk-checker/internal/domain"
)

// KindLabel возвращает английскую метку вида сущности.
func KindLabel(kind string) string {
	switch kind {
	case domain.KindSupergroup:
		return "Supergroup"
	case domain.KindChannel:
		return "Channel"
	case domain.KindGroup:
		return "Group"
	case domain.KindUser:
		return "User"
	default:
		return "Unknown"
	}
}

// VisibilityLabel возвращает английскую метку видимости.
func VisibilityLabel(visibility string) string {
	switch visibility {
	case domain.VisibilityPublic:
		return "Public"
	case domain.VisibilityPrivate:
		return "Private"
	default:
		return "Unknown"
	}
}

// Compact отображает результат в компактную человекочитаемую строку.
// Присутствующие поля соединяются через " | "; отсутствующие опускаются
// целиком, а не выводятся пустыми.
func Compact(res domain.CheckResult) string {
	parts := []string{
		"type: " + KindLabel(res.Kind),
		"visibility: " + VisibilityLabel(res.Visibility),
	}
	if res.MemberCount != nil {
		parts = append(parts, fmt.Sprintf("members: %d", *res.MemberCount))
	}
	if res.RequiresApproval != nil {
		parts = append(parts, "approval: "+yesNo(*res.RequiresApproval))
	}
	if res.Verified != nil {
		parts = append(parts, "verified: "+yesNo(*res.Verified))
	}
	if res.Username != nil && *res.Username != "" {
		parts = append(parts, "username: @"+*res.Username)
	}
	return strings.Join(parts, " | ")
}

// Minimal отображает результат в минимальную строку вида
// "<Kind> <Visibility>" с опциональными токенами через пробел.
// Токены +verified и +approval выводятся только для явного true.
func Minimal(res domain.CheckResult) string {
	base := KindLabel(res.Kind) + " " + VisibilityLabel(res.Visibility)

	var tokens []string
	if res.Verified != nil && *res.Verified {
		tokens = append(tokens, "+verified")
	}
	if res.RequiresApproval != nil && *res.RequiresApproval {
		tokens = append(tokens, "+approval")
	}
	if res.Username != nil && *res.Username != "" {
		tokens = append(tokens, "+@"+*res.Username)
	}
	if res.MemberCount != nil {
		tokens = append(tokens, fmt.Sprintf("m=%d", *res.MemberCount))
	}

	if len(tokens) == 0 {
		return base
	}
	return base + " " + strings.Join(tokens, " ")
}

// reasonEntry — одна строка упорядоченной таблицы причин.
type reasonEntry struct {
	needle string
	reason string
}

// reasonTable просматривается по порядку, выигрывает первое совпадение.
var reasonTable = []reasonEntry{
	{"invitehashexpired", "invite expired"},
	{"invitehashinvalid", "invalid invite"},
	{"invitehashempty", "invalid invite"},
	{"usernamenotoccupied", "username not found"},
	{"usernameinvalid", "invalid username"},
	{"channelprivate", "private chat"},
	{"chatadminrequired", "admin rights required"},
	{"floodwait", "rate limit, try later"},
	{"authkeypermanentlyinvalid", "invalid session, sign in again"},
}

// Reason сводит статус и диагностический текст к короткой человекочитаемой
// причине. Текст приводится к нижнему регистру и сканируется по таблице
// подстрок; без совпадения возвращается "error".
func Reason(status string, extra *string) string {
	text := status
	if extra != nil {
		text += " " + *extra
	}
	text = strings.ToLower(text)

	for _, entry := range reasonTable {
		if strings.Contains(text, entry.needle) {
			return entry.reason
		}
	}
	return "error"
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
