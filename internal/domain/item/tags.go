package item

import "strings"

// Tags - упорядоченное множество тегов. Порядок вставки сохраняется, дубликаты
// (с учётом регистра) не добавляются.
type Tags []string

// NewTags строит множество из списка, отбрасывая повторы и пустые значения.
func NewTags(tags ...string) Tags {
	t := make(Tags, 0, len(tags))
	for _, tag := range tags {
		t.Add(tag)
	}
	return t
}

// Add добавляет тег, если его ещё нет. Возвращает true, если множество изменилось.
func (t *Tags) Add(tag string) bool {
	if strings.TrimSpace(tag) == "" || t.Contains(tag) {
		return false
	}
	*t = append(*t, tag)
	return true
}

// Remove удаляет тег. Отсутствующий тег - не ошибка.
func (t *Tags) Remove(tag string) bool {
	for i, existing := range *t {
		if existing == tag {
			*t = append((*t)[:i:i], (*t)[i+1:]...)
			return true
		}
	}
	return false
}

func (t Tags) Contains(tag string) bool {
	for _, existing := range t {
		if existing == tag {
			return true
		}
	}
	return false
}

// Slice возвращает копию тегов в порядке вставки.
func (t Tags) Slice() []string {
	out := make([]string, len(t))
	copy(out, t)
	return out
}
