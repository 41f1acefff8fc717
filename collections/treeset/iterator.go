package treeset

// Iterator TreeSet 的只读双向迭代器.
//
// 迭代器只能通过 Begin/End/Find/LowerBound 或对已有迭代器步进获得，
// 零值等价于 end 迭代器. 对集合执行 Insert/Erase/Clear 后，
// 之前获得的迭代器全部失效，继续使用的行为未定义.
//
// end 迭代器锚定在最大元素上，因此 End().Prev() 无需再次查找.
//
// 示例:
//
//	for it := ts.Begin(); !it.IsEnd(); it = it.Next() {
//	    fmt.Println(it.Value())
//	}
type Iterator[T any] struct {
	node *node[T]
	end  bool
}

// newIterator 创建迭代器，哨兵位置总是 end.
func newIterator[T any](n *node[T], end bool) Iterator[T] {
	return Iterator[T]{node: n, end: end || n.isSentinel()}
}

// IsEnd 判断是否为 end 迭代器.
func (it Iterator[T]) IsEnd() bool {
	return it.end || it.node == nil
}

// Value 返回当前元素.
// 在 end 迭代器上调用会 panic(ErrEndIterator).
func (it Iterator[T]) Value() T {
	if it.IsEnd() {
		panic(ErrEndIterator)
	}
	return it.node.value
}

// Next 返回指向后继元素的迭代器，最大元素的后继是 end.
// 在 end 迭代器上调用会 panic(ErrEndIterator).
func (it Iterator[T]) Next() Iterator[T] {
	if it.IsEnd() {
		panic(ErrEndIterator)
	}
	next := it.node.next()
	if next.isSentinel() {
		return Iterator[T]{node: it.node, end: true}
	}
	return Iterator[T]{node: next}
}

// HasPrev 判断是否存在前驱元素.
func (it Iterator[T]) HasPrev() bool {
	if it.node == nil || it.node.isSentinel() {
		return false
	}
	if it.end {
		return true
	}
	return !it.node.prev().isSentinel()
}

// Prev 返回指向前驱元素的迭代器.
// end 迭代器的前驱是最大元素. 没有前驱时会 panic(ErrBeginIterator).
func (it Iterator[T]) Prev() Iterator[T] {
	if it.node == nil || it.node.isSentinel() {
		panic(ErrBeginIterator)
	}
	if it.end {
		return Iterator[T]{node: it.node}
	}
	prev := it.node.prev()
	if prev.isSentinel() {
		panic(ErrBeginIterator)
	}
	return Iterator[T]{node: prev}
}

// Equal 判断两个迭代器是否指向同一位置.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.node == other.node && it.IsEnd() == other.IsEnd()
}
