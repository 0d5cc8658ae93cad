package models

// Record общий контракт для записей, которые клиент держит в локальном
// состоянии и согласует с сервером (статьи, комментарии, реакции, закладки).
type Record interface {
	// RecordID возвращает идентификатор, назначенный сервером.
	// Пустая строка означает, что запись еще не подтверждена.
	RecordID() string

	// RecordVersion возвращает монотонно растущую версию строки.
	// 0 означает, что запись не версионируется.
	RecordVersion() int64
}

// IsNewer определяет, должна ли incoming заменить existing.
// Правило Last-Write-Wins по версии строки: запись с большей версией побеждает,
// при равных версиях побеждает входящая (повторная доставка того же состояния).
// Неверсионированные записи всегда принимаются.
func IsNewer(incoming, existing Record) bool {
	in, ex := incoming.RecordVersion(), existing.RecordVersion()
	if in == 0 || ex == 0 {
		return true
	}
	return in >= ex
}
