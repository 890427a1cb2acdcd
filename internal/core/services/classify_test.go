package services

import (
	"testing"

	"telegram-bulk-checker/internal/domain"
)

func TestClassify(t *testing.T) {
	t.Run("Канал с megagroup классифицируется как супергруппа", func(t *testing.T) {
		kind, visibility, verified := Classify(&domain.Channel{Megagroup: true, Username: "chat", Verified: true})
		if kind != domain.KindSupergroup {
			t.Errorf("Ожидался kind=supergroup, получено %q", kind)
		}
		if visibility != domain.VisibilityPublic {
			t.Errorf("Ожидалась видимость public, получено %q", visibility)
		}
		if verified == nil || !*verified {
			t.Error("Ожидалось verified=true")
		}
	})

	t.Run("Канал без юзернейма приватен", func(t *testing.T) {
		kind, visibility, verified := Classify(&domain.Channel{Megagroup: false})
		if kind != domain.KindChannel {
			t.Errorf("Ожидался kind=channel, получено %q", kind)
		}
		if visibility != domain.VisibilityPrivate {
			t.Errorf("Ожидалась видимость private, получено %q", visibility)
		}
		if verified == nil || *verified {
			t.Error("Ожидалось verified=false (присутствующее, не nil)")
		}
	})

	t.Run("Группа всегда приватна", func(t *testing.T) {
		kind, visibility, verified := Classify(&domain.Group{Title: "friends", Verified: false})
		if kind != domain.KindGroup {
			t.Errorf("Ожидался kind=group, получено %q", kind)
		}
		if visibility != domain.VisibilityPrivate {
			t.Errorf("Ожидалась видимость private, получено %q", visibility)
		}
		if verified == nil {
			t.Error("Ожидалось присутствующее verified")
		}
	})

	t.Run("Пользователь публичен только с юзернеймом", func(t *testing.T) {
		kind, visibility, _ := Classify(&domain.User{Username: "durov"})
		if kind != domain.KindUser || visibility != domain.VisibilityPublic {
			t.Errorf("Ожидалось (user, public), получено (%q, %q)", kind, visibility)
		}

		_, visibility, _ = Classify(&domain.User{})
		if visibility != domain.VisibilityPrivate {
			t.Errorf("Ожидалась видимость private, получено %q", visibility)
		}
	})

	t.Run("Неизвестная форма дает (unknown, unknown, nil)", func(t *testing.T) {
		kind, visibility, verified := Classify(nil)
		if kind != domain.KindUnknown || visibility != domain.VisibilityUnknown {
			t.Errorf("Ожидалось (unknown, unknown), получено (%q, %q)", kind, visibility)
		}
		if verified != nil {
			t.Error("Ожидалось отсутствующее verified")
		}
	})
}
