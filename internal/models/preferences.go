package models

// Preferences представляет настройки пользователя: один вложенный объект
// на пользователя, без натурального ключа и без per-record timestamps.
// В отличие от остальных доменов merge для preferences не по LWW,
// а shallow overlay: локальный ключ всегда перекрывает удаленный.
type Preferences map[string]any

// Clone создает неглубокую копию preferences.
// Вложенные объекты разделяются - merge работает только по верхнему уровню.
func (p Preferences) Clone() Preferences {
	if p == nil {
		return Preferences{}
	}
	out := make(Preferences, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
