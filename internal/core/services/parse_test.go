package services

import (
	"strings"
	"testing"

	"telegram-bulk-checker/internal/domain"
)

func TestParseInput(t *testing.T) {
	t.Run("Инвайт-ссылки распознаются во всех поверхностных формах", func(t *testing.T) {
		cases := map[string]string{
			"https://t.me/joinchat/AAAAAAAAAAAAAAAAAA":               "AAAAAAAAAAAAAAAAAA",
			"http://t.me/joinchat/AAAAAAAAAAAAAAAAAA":                "AAAAAAAAAAAAAAAAAA",
			"t.me/joinchat/AAAAAAAAAAAAAAAAAA":                       "AAAAAAAAAAAAAAAAAA",
			"https://t.me/+AbCdEf0123456789_-":                       "AbCdEf0123456789_-",
			"t.me/+AbCdEf0123456789_-":                               "AbCdEf0123456789_-",
			"tg://join?invite=AAAAAAAAAAAAAAAAAA":                    "AAAAAAAAAAAAAAAAAA",
			"  https://t.me/joinchat/AAAAAAAAAAAAAAAAAA  ":           "AAAAAAAAAAAAAAAAAA",
			"посмотри вот это t.me/joinchat/AAAAAAAAAAAAAAAAAA чат":  "AAAAAAAAAAAAAAAAAA",
			"HTTPS://T.ME/JOINCHAT/AAAAAAAAAAAAAAAAAA":               "AAAAAAAAAAAAAAAAAA",
		}

		for input, code := range cases {
			id := ParseInput(input)
			if id.Kind != domain.IdentifierInvite {
				t.Errorf("Ожидался kind=invite для %q, получено %q", input, id.Kind)
			}
			if id.Payload != code {
				t.Errorf("Ожидался код %q для %q, получено %q", code, input, id.Payload)
			}
		}
	})

	t.Run("Юзернеймы распознаются в обеих формах с одинаковым payload", func(t *testing.T) {
		link := ParseInput("https://t.me/telegram")
		bare := ParseInput("@telegram")

		if link.Kind != domain.IdentifierUsername || bare.Kind != domain.IdentifierUsername {
			t.Fatalf("Ожидался kind=username, получено %q и %q", link.Kind, bare.Kind)
		}
		if link.Payload != bare.Payload {
			t.Errorf("Ожидался одинаковый payload, получено %q и %q", link.Payload, bare.Payload)
		}
		if link.Payload != "telegram" {
			t.Errorf("Ожидался payload 'telegram', получено %q", link.Payload)
		}
	})

	t.Run("Инвайт имеет приоритет над юзернеймом", func(t *testing.T) {
		// Строка содержит и инвайт-ссылку, и упоминание юзернейма.
		id := ParseInput("@somebody https://t.me/joinchat/AAAAAAAAAAAAAAAAAA")
		if id.Kind != domain.IdentifierInvite {
			t.Errorf("Ожидался kind=invite, получено %q", id.Kind)
		}
		if id.Payload != "AAAAAAAAAAAAAAAAAA" {
			t.Errorf("Ожидался инвайт-код, получено %q", id.Payload)
		}
	})

	t.Run("Слишком короткий юзернейм не распознается", func(t *testing.T) {
		id := ParseInput("@abc")
		if id.Kind != domain.IdentifierUnknown {
			t.Errorf("Ожидался kind=unknown для короткого юзернейма, получено %q", id.Kind)
		}
		if id.Payload != "" {
			t.Errorf("Ожидался пустой payload, получено %q", id.Payload)
		}
	})

	t.Run("Слишком короткий инвайт-код откатывается к юзернейму", func(t *testing.T) {
		// Код короче 16 символов не проходит инвайт-шаблон, но t.me/joinchat
		// совпадает с шаблоном юзернейма.
		id := ParseInput("t.me/joinchat/short")
		if id.Kind != domain.IdentifierUsername {
			t.Errorf("Ожидался kind=username, получено %q", id.Kind)
		}
	})

	t.Run("Пустая строка и мусор дают unknown", func(t *testing.T) {
		for _, input := range []string{"", "   ", "not a telegram link at all", "https://example.com/foo"} {
			id := ParseInput(input)
			if id.Kind != domain.IdentifierUnknown {
				t.Errorf("Ожидался kind=unknown для %q, получено %q", input, id.Kind)
			}
			if id.Payload != "" {
				t.Errorf("Ожидался пустой payload для %q, получено %q", input, id.Payload)
			}
		}
	})
}

// FuzzParseInput проверяет инварианты разбора на произвольном вводе:
// функция не паникует, kind=unknown тогда и только тогда, когда payload пуст.
func FuzzParseInput(f *testing.F) {
	f.Add("https://t.me/joinchat/AAAAAAAAAAAAAAAAAA")
	f.Add("@telegram")
	f.Add("tg://join?invite=AbCdEf0123456789_-")
	f.Add("")
	f.Add("随机文本 t.me/+x")

	f.Fuzz(func(t *testing.T, value string) {
		id := ParseInput(value)
		if (id.Kind == domain.IdentifierUnknown) != (id.Payload == "") {
			t.Errorf("Нарушен инвариант: kind=%q, payload=%q", id.Kind, id.Payload)
		}
		if id.Kind == domain.IdentifierInvite && len(id.Payload) < 16 {
			t.Errorf("Инвайт-код короче 16 символов: %q", id.Payload)
		}
		if id.Kind == domain.IdentifierUsername {
			if len(id.Payload) < 5 || len(id.Payload) > 32 {
				t.Errorf("Юзернейм вне диапазона 5-32: %q", id.Payload)
			}
			if strings.ContainsAny(id.Payload, "-+/:@ ") {
				t.Errorf("Юзернейм содержит недопустимые символы: %q", id.Payload)
			}
		}
	})
}
