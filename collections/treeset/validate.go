package treeset

import "fmt"

// Validate 检查树结构是否满足全部不变量.
//
// 检查项:
//   - 中序严格递增（有序且无重复）
//   - AA 树 level 约束
//   - 哨兵 level 为 0 且链接指向自身
//   - 每个节点的 parent 指回自身
//   - 节点数等于 Len()
//
// 返回的错误为 *InvariantError，可用 errors.Is(err, ErrCorrupted) 判断.
func (s *TreeSet[T]) Validate() error {
	b := s.bottom
	if b.level != 0 || b.left != b || b.right != b || b.parent != b {
		return &InvariantError{Invariant: InvariantSentinel, Message: "sentinel links or level modified"}
	}
	if s.root != b && s.root.parent != b {
		return &InvariantError{Invariant: InvariantParent, Message: "root parent is not the sentinel"}
	}

	count, err := s.validateNode(s.root)
	if err != nil {
		return err
	}
	if count != s.size {
		return &InvariantError{
			Invariant: InvariantSize,
			Message:   fmt.Sprintf("counted %d nodes, size is %d", count, s.size),
		}
	}

	var prev *node[T]
	for n := s.root.leftmost(); n != b; n = n.next() {
		if prev != nil {
			if !s.less(prev.value, n.value) {
				if !s.less(n.value, prev.value) {
					return &InvariantError{Invariant: InvariantUnique, Message: fmt.Sprintf("duplicate value %v", n.value)}
				}
				return &InvariantError{
					Invariant: InvariantOrder,
					Message:   fmt.Sprintf("%v appears before %v", prev.value, n.value),
				}
			}
		}
		prev = n
	}
	return nil
}

// validateNode 校验子树的结构不变量，返回节点数.
func (s *TreeSet[T]) validateNode(n *node[T]) (int, error) {
	if n == s.bottom {
		return 0, nil
	}
	if n.level < 1 {
		return 0, &InvariantError{Invariant: InvariantLevel, Message: fmt.Sprintf("node %v has level %d", n.value, n.level)}
	}
	if n.left != s.bottom && n.left.parent != n {
		return 0, &InvariantError{Invariant: InvariantParent, Message: fmt.Sprintf("left child of %v has wrong parent", n.value)}
	}
	if n.right != s.bottom && n.right.parent != n {
		return 0, &InvariantError{Invariant: InvariantParent, Message: fmt.Sprintf("right child of %v has wrong parent", n.value)}
	}
	if n.left.level >= n.level {
		return 0, &InvariantError{Invariant: InvariantLevel, Message: fmt.Sprintf("left child of %v is not below it", n.value)}
	}
	if n.right.level > n.level {
		return 0, &InvariantError{Invariant: InvariantLevel, Message: fmt.Sprintf("right child of %v is above it", n.value)}
	}
	if n.right.right.level >= n.level {
		return 0, &InvariantError{Invariant: InvariantLevel, Message: fmt.Sprintf("two horizontal right links below %v", n.value)}
	}
	if n.level > 1 && (n.left == s.bottom || n.right == s.bottom) {
		return 0, &InvariantError{Invariant: InvariantLevel, Message: fmt.Sprintf("node %v at level %d is missing a child", n.value, n.level)}
	}
	if n.left != s.bottom && !s.less(n.left.value, n.value) {
		return 0, &InvariantError{Invariant: InvariantOrder, Message: fmt.Sprintf("left child of %v is not smaller", n.value)}
	}
	if n.right != s.bottom && !s.less(n.value, n.right.value) {
		return 0, &InvariantError{Invariant: InvariantOrder, Message: fmt.Sprintf("right child of %v is not larger", n.value)}
	}

	left, err := s.validateNode(n.left)
	if err != nil {
		return 0, err
	}
	right, err := s.validateNode(n.right)
	if err != nil {
		return 0, err
	}
	return left + right + 1, nil
}
