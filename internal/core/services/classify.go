package services

import "telegram-bulk-checker/internal/domain"

// Classify выводит тройку {вид, видимость, верификация} из сущности
// удаленного сервиса. Функция тотальна: каждый из трех вариантов
// RemoteEntity имеет определенное отображение, любая другая форма
// (включая nil) дает (unknown, unknown, nil).
func Classify(entity domain.RemoteEntity) (kind, visibility string, verified *bool) {
	switch e := entity.(type) {
	case *domain.Channel:
		kind = domain.KindChannel
		if e.Megagroup {
			kind = domain.KindSupergroup
		}
		visibility = domain.VisibilityPrivate
		if e.Username != "" {
			visibility = domain.VisibilityPublic
		}
		v := e.Verified
		return kind, visibility, &v
	case *domain.Group:
		v := e.Verified
		return domain.KindGroup, domain.VisibilityPrivate, &v
	case *domain.User:
		visibility = domain.VisibilityPrivate
		if e.Username != "" {
			visibility = domain.VisibilityPublic
		}
		v := e.Verified
		return domain.KindUser, visibility, &v
	default:
		return domain.KindUnknown, domain.VisibilityUnknown, nil
	}
}

// entityUsername возвращает публичный юзернейм сущности, если он есть.
func entityUsername(entity domain.RemoteEntity) string {
	switch e := entity.(type) {
	case *domain.Channel:
		return e.Username
	case *domain.User:
		return e.Username
	default:
		return ""
	}
}

// entityTitle возвращает отображаемое имя сущности, если оно есть.
// У пользователей заголовка нет.
func entityTitle(entity domain.RemoteEntity) string {
	switch e := entity.(type) {
	case *domain.Channel:
		return e.Title
	case *domain.Group:
		return e.Title
	default:
		return ""
	}
}
