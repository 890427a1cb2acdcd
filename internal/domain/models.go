package domain

import "fmt"

// IdentifierKind описывает тип распознанного идентификатора.
type IdentifierKind string

const (
	IdentifierInvite   IdentifierKind = "invite"
	IdentifierUsername IdentifierKind = "username"
	IdentifierUnknown  IdentifierKind = "unknown"
)

// Identifier представляет разобранную форму одной входной строки.
// Payload содержит инвайт-код или юзернейм; для IdentifierUnknown он пуст.
type Identifier struct {
	Kind    IdentifierKind
	Payload string
}

// Статусы результата проверки. Статусы с подпричиной формируются
// через InvalidStatus / InvalidUsernameStatus / ErrorStatus.
const (
	StatusValid        = "valid"
	StatusResolved     = "resolved"
	StatusUnrecognized = "unrecognized"
)

// InvalidStatus формирует статус для отклоненного инвайта.
func InvalidStatus(faultKind string) string {
	return "invalid: " + faultKind
}

// InvalidUsernameStatus формирует статус для несуществующего или некорректного юзернейма.
func InvalidUsernameStatus(faultKind string) string {
	return "invalid_username: " + faultKind
}

// ErrorStatus формирует статус для прочих ошибок удаленного сервиса.
func ErrorStatus(faultKind string) string {
	return "error: " + faultKind
}

// IsOK сообщает, относится ли статус к успешным ("valid" или "resolved").
func IsOK(status string) bool {
	return status == StatusValid || status == StatusResolved
}

// Виды сущностей и их видимость в нормализованном результате.
const (
	KindSupergroup = "supergroup"
	KindChannel    = "channel"
	KindGroup      = "group"
	KindUser       = "user"
	KindUnknown    = "unknown"

	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
	VisibilityUnknown = "unknown"
)

// RemoteEntity — сущность, возвращаемая удаленным сервисом.
// Это закрытый тип-сумма из трех вариантов: Channel, Group и User.
// Ядро никогда не интерпретирует транспортные поля (ID, AccessHash),
// они нужны только для вторичного запроса полной информации о канале.
type RemoteEntity interface {
	remoteEntity()
}

// Channel представляет канал или супергруппу.
type Channel struct {
	ID         int64
	AccessHash int64
	Title      string
	Username   string
	Megagroup  bool
	Verified   bool
}

func (*Channel) remoteEntity() {}

// Group представляет обычную (малую) группу. У групп нет публичного юзернейма.
type Group struct {
	ID       int64
	Title    string
	Verified bool
}

func (*Group) remoteEntity() {}

// User представляет пользователя.
type User struct {
	ID         int64
	AccessHash int64
	Username   string
	Verified   bool
}

func (*User) remoteEntity() {}

// InviteInfo — результат проверки инвайта, один из двух вариантов:
// InvitePreview (предпросмотр, мы еще не участник) или
// InviteMembership (мы уже участник, инвайт развернут в полную сущность).
type InviteInfo interface {
	inviteInfo()
}

// InvitePreview — предпросмотр инвайта. Публичный юзернейм в предпросмотре
// не раскрывается, поэтому видимость по умолчанию считается приватной.
type InvitePreview struct {
	Title             string
	Channel           bool
	Megagroup         bool
	RequestNeeded     bool
	Verified          bool
	ParticipantsCount int
}

func (*InvitePreview) inviteInfo() {}

// InviteMembership — инвайт уже развернут в сущность, участником которой мы являемся.
type InviteMembership struct {
	Entity RemoteEntity
}

func (*InviteMembership) inviteInfo() {}

// ResolvedPeer — результат разрешения юзернейма: параллельные списки
// чатоподобных и пользовательских сущностей.
type ResolvedPeer struct {
	Chats []RemoteEntity
	Users []RemoteEntity
}

// ChannelFullInfo — полная информация о канале, полученная вторичным запросом.
// Оба поля опциональны: отсутствие значения не означает ноль.
type ChannelFullInfo struct {
	ParticipantsCount *int
	RequestsPending   *int
}

// RemoteFault — смоделированная ошибка удаленного сервиса.
// Kind содержит имя ошибки в CamelCase (например, "InviteHashExpired"),
// Message — диагностический текст, используемый только для отображения.
type RemoteFault struct {
	Kind    string
	Message string
}

func (f *RemoteFault) Error() string {
	if f.Message == "" {
		return f.Kind
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// CheckResult — канонический результат проверки одного идентификатора.
// Статус полностью определяет, какие поля осмыслены; остальные остаются
// nil, а не наследуют значения от предыдущего элемента.
// Указатели кодируют тройственность: nil означает "не определено", не "false".
type CheckResult struct {
	Input            string  `json:"input"`
	Status           string  `json:"status"`
	Kind             string  `json:"kind"`
	Visibility       string  `json:"visibility"`
	Verified         *bool   `json:"verified"`
	RequiresApproval *bool   `json:"requires_approval"`
	MemberCount      *int    `json:"member_count"`
	Title            *string `json:"title"`
	Username         *string `json:"username"`
	Extra            *string `json:"extra"`
}

// BatchSummary — сводка по пакету, вычисляемая разбиением списка результатов по статусу.
// Errors считается отдельно драйвером и не пересекается со счетчиком Invalid.
type BatchSummary struct {
	Processed int
	OK        int
	Unknown   int
	Errors    int
	Invalid   int
}

// Summarize строит сводку по списку результатов.
// driverErrors — количество ошибок уровня драйвера (не смоделированных сбоев).
func Summarize(results []CheckResult, driverErrors int) BatchSummary {
	s := BatchSummary{Processed: len(results), Errors: driverErrors}
	for _, r := range results {
		switch {
		case IsOK(r.Status):
			s.OK++
		case r.Status == StatusUnrecognized:
			s.Unknown++
		}
	}
	s.Invalid = s.Processed - s.OK - s.Unknown
	return s
}

// String возвращает итоговую строку сводки.
func (s BatchSummary) String() string {
	return fmt.Sprintf("processed=%d ok=%d unknown=%d errors=%d invalid=%d",
		s.Processed, s.OK, s.Unknown, s.Errors, s.Invalid)
}
