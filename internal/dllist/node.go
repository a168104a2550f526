package dllist

// node узел последовательности.
// Для стража value не используется, owner указывает на последовательность
// всё время жизни стража. У удалённого узла owner == nil.
type node[T any] struct {
	prev *node[T]
	next *node[T]

	owner *Sequence[T]
	value T
}

// detach разрывает связи узла и лишает его владельца, после чего курсоры
// на узел перестают быть валидными.
func (n *node[T]) detach() {
	n.prev = nil
	n.next = nil
	n.owner = nil
}
