package dllist

// Cursor позиция в последовательности. Не владеет узлом, на который указывает.
//
// Курсор на стража означает конец последовательности. Нулевое значение
// курсора невалидно. Курсоры сравниваются обычным ==.
type Cursor[T any] struct {
	node *node[T]
}

// Valid сообщает, можно ли разыменовать курсор: он указывает на реальный
// узел, который всё ещё находится в последовательности.
func (c Cursor[T]) Valid() bool {
	return c.position() == ""
}

// IsEnd сообщает, указывает ли курсор на конец последовательности.
func (c Cursor[T]) IsEnd() bool {
	return c.position() == positionEnd
}

// Value возвращает значение под курсором.
func (c Cursor[T]) Value() (T, error) {
	if pos := c.position(); pos != "" {
		var zero T
		return zero, invalidCursor("dereference cursor", pos)
	}

	return c.node.value, nil
}

// Ref возвращает указатель на значение под курсором для изменения на месте.
func (c Cursor[T]) Ref() (*T, error) {
	if pos := c.position(); pos != "" {
		return nil, invalidCursor("take value reference", pos)
	}

	return &c.node.value, nil
}

// Next сдвигает курсор на следующую позицию. С последнего элемента
// курсор переходит на конец, дальше конца сдвинуть нельзя.
func (c *Cursor[T]) Next() error {
	if pos := c.position(); pos != "" {
		return invalidCursor("advance cursor", pos)
	}

	c.node = c.node.next
	return nil
}

// Prev сдвигает курсор на предыдущую позицию. С конца курсор переходит
// на последний элемент, перед первым элементом сдвинуть нельзя.
func (c *Cursor[T]) Prev() error {
	switch pos := c.position(); pos {
	case "":
	case positionEnd:
		last := c.node.prev
		if last == nil {
			// пустая последовательность, конец совпадает с началом
			return invalidCursor("retreat cursor", positionEnd)
		}
		c.node = last
		return nil
	default:
		return invalidCursor("retreat cursor", pos)
	}

	if c.node.prev == c.node.owner.root {
		return invalidCursor("retreat cursor", positionFirst)
	}

	c.node = c.node.prev
	return nil
}

// position возвращает пустую строку для разыменовываемого курсора
// и имя позиции в остальных случаях.
func (c Cursor[T]) position() string {
	switch {
	case c.node == nil:
		return positionNone
	case c.node.owner == nil:
		return positionRemoved
	case c.node == c.node.owner.root:
		return positionEnd
	default:
		return ""
	}
}

// belongs проверяет, что курсор разыменовывается и принадлежит данной последовательности.
func (c Cursor[T]) belongs(s *Sequence[T]) bool {
	return c.Valid() && c.node.owner == s
}
