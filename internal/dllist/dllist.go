package dllist

import "github.com/sirkon/dllist/internal/logging"

// New конструктор пустой последовательности.
func New[T any](opts ...Option) *Sequence[T] {
	c := newConfig(opts)
	s := &Sequence[T]{
		logger: c.logger,
	}
	s.root = s.newSentinel()

	return s
}

// From конструктор последовательности из данных значений с сохранением их порядка.
func From[T any](values []T, opts ...Option) *Sequence[T] {
	s := New[T](opts...)
	if len(values) == 0 {
		return s
	}

	prev := s.root
	for _, v := range values {
		n := &node[T]{
			prev:  prev,
			owner: s,
			value: v,
		}
		prev.next = n
		prev = n
	}
	prev.next = s.root
	s.root.prev = prev
	s.size = uint64(len(values))

	return s
}

// Sequence двусвязная последовательность значений со стражем, который
// служит и началом, и концом.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Sequence[T any] struct {
	root   *node[T]
	size   uint64
	logger logging.Logger
}

// Len возвращает количество элементов.
func (s *Sequence[T]) Len() uint64 {
	return s.size
}

// Empty проверка на пустоту.
func (s *Sequence[T]) Empty() bool {
	return s.size == 0
}

// Begin курсор на первый элемент или End для пустой последовательности.
func (s *Sequence[T]) Begin() Cursor[T] {
	if s.root.next == nil {
		return s.End()
	}

	return Cursor[T]{node: s.root.next}
}

// End курсор на конец последовательности. Не меняется до вызова Release.
func (s *Sequence[T]) End() Cursor[T] {
	return Cursor[T]{node: s.root}
}

// FindFunc возвращает курсор на первый элемент, для которого pred(элемент, value)
// истинно, либо End, если такого нет.
func (s *Sequence[T]) FindFunc(value T, pred func(candidate, value T) bool) Cursor[T] {
	for n := s.root.next; n != nil && n != s.root; n = n.next {
		if pred(n.value, value) {
			return Cursor[T]{node: n}
		}
	}

	return s.End()
}

// Find возвращает курсор на первый элемент равный value, либо End, если такого нет.
func Find[T comparable](s *Sequence[T], value T) Cursor[T] {
	return s.FindFunc(value, func(candidate, value T) bool {
		return candidate == value
	})
}

// InsertAfter вставляет значение сразу после элемента под курсором и
// возвращает курсор на новый элемент.
// Если курсор нельзя разыменовать или он от другой последовательности,
// ничего не делает и возвращает End.
func (s *Sequence[T]) InsertAfter(c Cursor[T], v T) Cursor[T] {
	if !c.belongs(s) {
		s.logger.SequenceInsertSkipped("insert-after")
		return s.End()
	}

	return s.insert(c.node, c.node.next, v)
}

// InsertBefore вставляет значение сразу перед элементом под курсором и
// возвращает курсор на новый элемент.
// Поведение на невалидном курсоре такое же, как и у InsertAfter.
func (s *Sequence[T]) InsertBefore(c Cursor[T], v T) Cursor[T] {
	if !c.belongs(s) {
		s.logger.SequenceInsertSkipped("insert-before")
		return s.End()
	}

	return s.insert(c.node.prev, c.node, v)
}

// PushBack добавление нового значения в конец с возвратом курсора на него.
func (s *Sequence[T]) PushBack(v T) Cursor[T] {
	prev := s.root.prev
	if prev == nil {
		prev = s.root
	}

	return s.insert(prev, s.root, v)
}

// PushFront добавление нового значения в начало с возвратом курсора на него.
func (s *Sequence[T]) PushFront(v T) Cursor[T] {
	next := s.root.next
	if next == nil {
		next = s.root
	}

	return s.insert(s.root, next, v)
}

// Remove удаляет элемент под курсором и делает курсор невалидным.
// Для невалидного курсора и конца ничего не делает.
func (s *Sequence[T]) Remove(c *Cursor[T]) {
	if c == nil || !c.belongs(s) {
		s.logger.SequenceRemoveSkipped()
		return
	}

	n := c.node
	n.prev.next = n.next
	n.next.prev = n.prev
	if s.root.next == s.root {
		// удалён единственный элемент
		s.root.next = nil
		s.root.prev = nil
	}

	n.detach()
	s.size--
	*c = Cursor[T]{}
}

// Clear удаляет все элементы. Курсоры на удалённые элементы становятся
// невалидными, Begin после очистки равен End.
func (s *Sequence[T]) Clear() {
	removed := s.size
	n := s.root.next
	for n != nil && n != s.root {
		next := n.next
		n.detach()
		n = next
	}

	s.root.next = nil
	s.root.prev = nil
	s.size = 0
	s.logger.SequenceCleared(removed)
}

// Release удаляет все элементы и заменяет стража. Все курсоры, полученные
// до вызова, включая End, становятся невалидными. Последовательность после
// этого остаётся пригодной к работе как пустая.
func (s *Sequence[T]) Release() {
	s.Clear()
	s.root.detach()
	s.root = s.newSentinel()
}

// Values возвращает копию значений в порядке следования, nil для пустой последовательности.
func (s *Sequence[T]) Values() []T {
	if s.size == 0 {
		return nil
	}

	res := make([]T, 0, s.size)
	for n := s.root.next; n != nil && n != s.root; n = n.next {
		res = append(res, n.value)
	}

	return res
}

// insert вставляет узел между соседними prev и next.
func (s *Sequence[T]) insert(prev, next *node[T], v T) Cursor[T] {
	n := &node[T]{
		prev:  prev,
		next:  next,
		owner: s,
		value: v,
	}
	prev.next = n
	next.prev = n
	s.size++

	return Cursor[T]{node: n}
}

func (s *Sequence[T]) newSentinel() *node[T] {
	return &node[T]{
		owner: s,
	}
}
