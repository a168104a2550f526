package dllist

import "github.com/sirkon/errors"

// check проходит последовательность в обе стороны и сверяет связи,
// владельца узлов и размер. Нарушение означает ошибку в самом контейнере.
func (s *Sequence[T]) check() error {
	if s.root == nil || s.root.owner != s {
		return errors.New("sentinel is not owned by the sequence")
	}

	if (s.root.next == nil) != (s.root.prev == nil) {
		return errors.New("sentinel links are inconsistent").
			Bool("next-is-nil", s.root.next == nil).
			Bool("prev-is-nil", s.root.prev == nil)
	}

	if s.root.next == nil {
		if s.size != 0 {
			return errors.New("empty sentinel with non-zero size").Uint64("size", s.size)
		}
		return nil
	}

	var forward uint64
	for n := s.root.next; n != s.root; n = n.next {
		if n == nil {
			return errors.New("forward chain is broken").Uint64("position", forward)
		}
		if n.owner != s {
			return errors.New("node is not owned by the sequence").Uint64("position", forward)
		}
		if n.prev == nil || n.prev.next != n {
			return errors.New("prev.next does not point back").Uint64("position", forward)
		}
		if n.next == nil || n.next.prev != n {
			return errors.New("next.prev does not point back").Uint64("position", forward)
		}

		forward++
		if forward > s.size {
			return errors.New("forward walk exceeds size").Uint64("size", s.size)
		}
	}

	var backward uint64
	for n := s.root.prev; n != s.root; n = n.prev {
		if n == nil {
			return errors.New("backward chain is broken").Uint64("position", backward)
		}

		backward++
		if backward > s.size {
			return errors.New("backward walk exceeds size").Uint64("size", s.size)
		}
	}

	if forward != s.size || backward != s.size {
		return errors.New("walk length does not match size").
			Uint64("size", s.size).
			Uint64("forward", forward).
			Uint64("backward", backward)
	}

	return nil
}
