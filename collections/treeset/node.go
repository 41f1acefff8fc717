package treeset

// node AA 树节点.
//
// left/right 持有子树，parent 只用于遍历时回溯.
// 缺失的子节点与父节点都指向所属集合的哨兵节点，而不是 nil.
type node[T any] struct {
	value  T
	left   *node[T]
	right  *node[T]
	parent *node[T]
	level  int
}

// newSentinel 创建哨兵节点: level 为 0，三个链接都指向自身.
func newSentinel[T any]() *node[T] {
	n := &node[T]{}
	n.left = n
	n.right = n
	n.parent = n
	return n
}

// isSentinel 判断是否为哨兵.
func (n *node[T]) isSentinel() bool {
	return n.level == 0
}

// leftmost 返回子树中最小的节点，对哨兵返回哨兵.
func (n *node[T]) leftmost() *node[T] {
	for n.left.level > 0 {
		n = n.left
	}
	return n
}

// rightmost 返回子树中最大的节点，对哨兵返回哨兵.
func (n *node[T]) rightmost() *node[T] {
	for n.right.level > 0 {
		n = n.right
	}
	return n
}

// next 返回中序后继，没有后继时返回哨兵.
func (n *node[T]) next() *node[T] {
	if n.right.level > 0 {
		return n.right.leftmost()
	}
	cur := n
	for cur.level > 0 {
		if cur.parent.left == cur {
			return cur.parent
		}
		cur = cur.parent
	}
	return cur
}

// prev 返回中序前驱，没有前驱时返回哨兵.
func (n *node[T]) prev() *node[T] {
	if n.left.level > 0 {
		return n.left.rightmost()
	}
	cur := n
	for cur.level > 0 {
		if cur.parent.right == cur {
			return cur.parent
		}
		cur = cur.parent
	}
	return cur
}
