package dllist

import "github.com/sirkon/errors"

const (
	// ErrorInvalidCursor ошибка операции над курсором, который нельзя
	// разыменовать или сдвинуть в нужную сторону.
	ErrorInvalidCursor errors.Const = "invalid cursor"
)

// Значения контекста position у ErrorInvalidCursor.
const (
	positionNone    = "none"
	positionRemoved = "removed"
	positionEnd     = "end"
	positionFirst   = "first"
)

func invalidCursor(action, position string) error {
	return errors.Wrap(ErrorInvalidCursor, action).Str("position", position)
}
