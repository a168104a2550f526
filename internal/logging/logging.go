package logging

//go:generate mockgen -destination ../mocks/logger.go -package mocks . Logger

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// SequenceInsertSkipped вставка op не выполнена из-за невалидного курсора.
	SequenceInsertSkipped(op string)
	// SequenceRemoveSkipped удаление не выполнено из-за невалидного курсора.
	SequenceRemoveSkipped()
	SequenceCleared(removed uint64)
}
