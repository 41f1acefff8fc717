package treeset

// AA 树实现，参见 Arne Andersson, "Balanced Search Trees Made Simple".
//
// 平衡条件:
//   - 左子节点的 level 严格小于父节点
//   - 右子节点的 level 不大于父节点
//   - 右孙节点的 level 严格小于祖父节点
//   - level > 1 的节点必有两个子节点

// RebalanceOp 重平衡操作类型.
type RebalanceOp string

// 重平衡操作.
const (
	OpSkew      RebalanceOp = "skew"
	OpSplit     RebalanceOp = "split"
	OpLevelDown RebalanceOp = "level_down"
)

// rotateLeft 以 v 为轴左旋，返回新的子树根.
func (s *TreeSet[T]) rotateLeft(v *node[T]) *node[T] {
	parent := v.parent
	r := v.right
	v.right = r.left
	if v.right != s.bottom {
		v.right.parent = v
	}
	r.left = v
	v.parent = r
	r.parent = parent
	s.replaceChild(parent, v, r)
	return r
}

// rotateRight 以 v 为轴右旋，返回新的子树根.
func (s *TreeSet[T]) rotateRight(v *node[T]) *node[T] {
	parent := v.parent
	l := v.left
	v.left = l.right
	if v.left != s.bottom {
		v.left.parent = v
	}
	l.right = v
	v.parent = l
	l.parent = parent
	s.replaceChild(parent, v, l)
	return l
}

// replaceChild 将 parent 指向 old 的链接改为 repl.
// parent 为哨兵时其链接恒指向自身，不会匹配.
func (s *TreeSet[T]) replaceChild(parent, old, repl *node[T]) {
	if parent.left == old {
		parent.left = repl
	} else if parent.right == old {
		parent.right = repl
	}
}

// skew 消除水平左链接.
func (s *TreeSet[T]) skew(n *node[T]) *node[T] {
	if n == s.bottom {
		return n
	}
	if n.level == n.left.level {
		s.notifyRebalance(OpSkew)
		return s.rotateRight(n)
	}
	return n
}

// split 消除连续两条水平右链接，中间节点提升一层.
func (s *TreeSet[T]) split(n *node[T]) *node[T] {
	if n == s.bottom {
		return n
	}
	if n.level == n.right.level && n.level == n.right.right.level {
		n.right.level++
		s.notifyRebalance(OpSplit)
		return s.rotateLeft(n)
	}
	return n
}

// link 将 child 挂到 n 的 left 或 right 并维护 parent.
func (s *TreeSet[T]) link(n, child *node[T], left bool) {
	if left {
		n.left = child
	} else {
		n.right = child
	}
	if child != s.bottom {
		child.parent = n
	}
}

// insert 在子树 n 中插入 value，返回新的子树根以及是否插入了新值.
func (s *TreeSet[T]) insert(n *node[T], value T) (*node[T], bool) {
	if n == s.bottom {
		return &node[T]{
			value:  value,
			left:   s.bottom,
			right:  s.bottom,
			parent: s.bottom,
			level:  1,
		}, true
	}

	var added bool
	switch {
	case s.less(value, n.value):
		var child *node[T]
		child, added = s.insert(n.left, value)
		s.link(n, child, true)
	case s.less(n.value, value):
		var child *node[T]
		child, added = s.insert(n.right, value)
		s.link(n, child, false)
	default:
		return n, false
	}

	if !added {
		return n, false
	}
	n = s.skew(n)
	n = s.split(n)
	return n, true
}

// erase 在子树 n 中删除 value，返回新的子树根以及是否删除.
//
// target 是下降路径上最后一个满足 !(value < n.value) 的节点，即删除候选.
// 路径在下一步会走到哨兵的节点是实际摘除的节点: 它的值写入 target，
// 然后由它唯一可能存在的子节点顶替.
func (s *TreeSet[T]) erase(n *node[T], value T, target *node[T]) (*node[T], bool) {
	if n == s.bottom {
		return n, false
	}

	goLeft := s.less(value, n.value)
	next := n.right
	if goLeft {
		next = n.left
	} else {
		target = n
	}

	if next == s.bottom {
		if target == s.bottom || s.less(target.value, value) {
			return n, false
		}
		target.value = n.value
		repl := n.left
		if goLeft {
			repl = n.right
		}
		s.release(n)
		return repl, true
	}

	child, erased := s.erase(next, value, target)
	s.link(n, child, goLeft)
	if !erased {
		return n, false
	}
	return s.rebalanceAfterErase(n), true
}

// rebalanceAfterErase 子节点 level 下降后修复 n 所在子树.
func (s *TreeSet[T]) rebalanceAfterErase(n *node[T]) *node[T] {
	if n.left.level+1 >= n.level && n.right.level+1 >= n.level {
		return n
	}

	n.level--
	if n.right.level > n.level {
		n.right.level = n.level
	}
	s.notifyRebalance(OpLevelDown)

	n = s.skew(n)
	s.skew(n.right)
	s.skew(n.right.right)
	n = s.split(n)
	s.split(n.right)
	return n
}

// lowerBound 返回最小的不小于 value 的节点，不存在时返回哨兵.
func (s *TreeSet[T]) lowerBound(value T) *node[T] {
	cur := s.root
	last := s.bottom
	for cur != s.bottom {
		switch {
		case s.less(value, cur.value):
			last = cur
			cur = cur.left
		case s.less(cur.value, value):
			cur = cur.right
		default:
			return cur
		}
	}
	return last
}

// find 返回与 value 相等的节点，不存在时返回哨兵.
func (s *TreeSet[T]) find(value T) *node[T] {
	n := s.lowerBound(value)
	if n == s.bottom || s.less(value, n.value) {
		return s.bottom
	}
	return n
}

// releaseTree 后序释放子树中的所有节点，返回释放数量.
// 只沿 left/right 递归，遇到哨兵即停止.
func (s *TreeSet[T]) releaseTree(n *node[T]) int {
	if n == s.bottom {
		return 0
	}
	released := s.releaseTree(n.left)
	released += s.releaseTree(n.right)
	s.release(n)
	return released + 1
}

// release 断开节点的所有引用.
func (s *TreeSet[T]) release(n *node[T]) {
	*n = node[T]{}
}
