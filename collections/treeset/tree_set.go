// Package treeset 提供基于 AA 树实现的有序集合.
package treeset

import (
	"cmp"
	"iter"
)

// TreeSet 基于 AA 树的有序集合.
//
// 特性:
//   - 元素按排序顺序存储，不允许重复元素
//   - Insert/Erase/Find/LowerBound 操作时间复杂度 O(log n)
//   - 支持自定义比较器
//   - 支持双向迭代器
//
// TreeSet 不是并发安全的. 没有写操作时可以并发读.
// 任何 Insert/Erase/Clear 都会使之前获得的迭代器失效.
//
// 示例:
//
//	ts := treeset.NewOrdered[int]()
//	ts.Add(3, 1, 2)
//	ts.ToSlice() // [1, 2, 3]
//
//	for it := ts.LowerBound(2); !it.IsEnd(); it = it.Next() {
//	    fmt.Println(it.Value()) // 2, 3
//	}
type TreeSet[T any] struct {
	root     *node[T]
	bottom   *node[T]
	size     int
	less     LessFunc[T]
	observer Observer
}

// New 创建 TreeSet，需要提供比较器.
func New[T any](less LessFunc[T], opts ...Option) *TreeSet[T] {
	o := applyOptions(opts)
	bottom := newSentinel[T]()
	return &TreeSet[T]{
		root:     bottom,
		bottom:   bottom,
		less:     less,
		observer: o.observer,
	}
}

// NewOrdered 创建 TreeSet，使用内置类型的默认比较.
func NewOrdered[T cmp.Ordered](opts ...Option) *TreeSet[T] {
	return New[T](OrderedLess[T], opts...)
}

// FromSlice 从切片创建 TreeSet，重复元素只保留一个.
func FromSlice[T cmp.Ordered](items []T) *TreeSet[T] {
	s := NewOrdered[T]()
	s.Add(items...)
	return s
}

// FromSliceFunc 使用指定比较器从切片创建 TreeSet.
func FromSliceFunc[T any](less LessFunc[T], items []T) *TreeSet[T] {
	s := New(less)
	s.Add(items...)
	return s
}

// Of 从字面量列表创建 TreeSet.
//
//	treeset.Of(1, 1, 2).Len() // 2
func Of[T cmp.Ordered](items ...T) *TreeSet[T] {
	return FromSlice(items)
}

// Collect 从迭代序列创建 TreeSet.
func Collect[T cmp.Ordered](seq iter.Seq[T]) *TreeSet[T] {
	s := NewOrdered[T]()
	for item := range seq {
		s.Insert(item)
	}
	return s
}

// Insert 插入元素，返回是否新增.
// 已存在相等元素时不做任何修改.
func (s *TreeSet[T]) Insert(item T) bool {
	root, added := s.insert(s.root, item)
	s.root = root
	s.root.parent = s.bottom
	if added {
		s.size++
	}
	if s.observer != nil {
		s.observer.Inserted(added, s.size)
	}
	return added
}

// Add 添加元素.
func (s *TreeSet[T]) Add(items ...T) {
	for _, item := range items {
		s.Insert(item)
	}
}

// Erase 删除元素，返回是否删除.
// 元素不存在时不做任何修改.
func (s *TreeSet[T]) Erase(item T) bool {
	root, erased := s.erase(s.root, item, s.bottom)
	s.root = root
	// 集合变空时 root 即哨兵，这里同时恢复哨兵的自引用
	s.root.parent = s.bottom
	if erased {
		s.size--
	}
	if s.observer != nil {
		s.observer.Erased(erased, s.size)
	}
	return erased
}

// Remove 移除元素.
func (s *TreeSet[T]) Remove(items ...T) {
	for _, item := range items {
		s.Erase(item)
	}
}

// Contains 判断元素是否存在.
func (s *TreeSet[T]) Contains(item T) bool {
	return s.find(item) != s.bottom
}

// Find 返回指向 item 的迭代器，不存在时返回 End().
func (s *TreeSet[T]) Find(item T) Iterator[T] {
	n := s.find(item)
	if n == s.bottom {
		return s.End()
	}
	return newIterator(n, false)
}

// LowerBound 返回指向最小的不小于 item 的元素的迭代器，不存在时返回 End().
func (s *TreeSet[T]) LowerBound(item T) Iterator[T] {
	n := s.lowerBound(item)
	if n == s.bottom {
		return s.End()
	}
	return newIterator(n, false)
}

// Begin 返回指向最小元素的迭代器，空集合时等于 End().
func (s *TreeSet[T]) Begin() Iterator[T] {
	return newIterator(s.root.leftmost(), false)
}

// End 返回越过最大元素的迭代器.
func (s *TreeSet[T]) End() Iterator[T] {
	return newIterator(s.root.rightmost(), true)
}

// Len 返回元素数量.
func (s *TreeSet[T]) Len() int {
	return s.size
}

// IsEmpty 判断是否为空.
func (s *TreeSet[T]) IsEmpty() bool {
	return s.size == 0
}

// Clear 清空所有元素.
func (s *TreeSet[T]) Clear() {
	released := s.releaseTree(s.root)
	s.root = s.bottom
	s.size = 0
	if s.observer != nil {
		s.observer.Cleared(released)
	}
}

// First 返回最小元素.
func (s *TreeSet[T]) First() (T, bool) {
	if s.root == s.bottom {
		var zero T
		return zero, false
	}
	return s.root.leftmost().value, true
}

// Last 返回最大元素.
func (s *TreeSet[T]) Last() (T, bool) {
	if s.root == s.bottom {
		var zero T
		return zero, false
	}
	return s.root.rightmost().value, true
}

// ToSlice 返回所有元素（按排序顺序）.
func (s *TreeSet[T]) ToSlice() []T {
	items := make([]T, 0, s.size)
	s.Range(func(item T) bool {
		items = append(items, item)
		return true
	})
	return items
}

// Range 按顺序遍历所有元素.
// fn 返回 false 时停止遍历.
func (s *TreeSet[T]) Range(fn func(item T) bool) {
	for n := s.root.leftmost(); n != s.bottom; n = n.next() {
		if !fn(n.value) {
			return
		}
	}
}

// All 返回升序迭代序列.
func (s *TreeSet[T]) All() iter.Seq[T] {
	return s.Range
}

// Backward 返回降序迭代序列.
func (s *TreeSet[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.root.rightmost(); n != s.bottom; n = n.prev() {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Clone 克隆 TreeSet，结果与原集合不共享任何节点.
// 克隆使用相同的比较器与观察者，复制过程不产生观察事件.
func (s *TreeSet[T]) Clone() *TreeSet[T] {
	clone := s.copyTree()
	clone.observer = s.observer
	return clone
}

// copyTree 返回不带观察者的副本.
func (s *TreeSet[T]) copyTree() *TreeSet[T] {
	clone := New(s.less)
	s.Range(func(item T) bool {
		clone.Insert(item)
		return true
	})
	return clone
}

// Assign 清空当前集合后按顺序插入 other 的所有元素.
// 保留当前集合的比较器与观察者.
func (s *TreeSet[T]) Assign(other *TreeSet[T]) {
	if s == other {
		return
	}
	s.Clear()
	other.Range(func(item T) bool {
		s.Insert(item)
		return true
	})
}

// Less 返回比较器.
func (s *TreeSet[T]) Less() LessFunc[T] {
	return s.less
}

// Union 返回与另一个集合的并集.
// 集合运算的结果使用 s 的比较器，不带观察者.
func (s *TreeSet[T]) Union(other *TreeSet[T]) *TreeSet[T] {
	result := s.copyTree()
	other.Range(func(item T) bool {
		result.Insert(item)
		return true
	})
	return result
}

// Intersection 返回与另一个集合的交集.
func (s *TreeSet[T]) Intersection(other *TreeSet[T]) *TreeSet[T] {
	result := New(s.less)

	// 遍历较小的集合
	smaller, larger := s, other
	if s.Len() > other.Len() {
		smaller, larger = other, s
	}

	smaller.Range(func(item T) bool {
		if larger.Contains(item) {
			result.Insert(item)
		}
		return true
	})
	return result
}

// Difference 返回差集（s - other）.
func (s *TreeSet[T]) Difference(other *TreeSet[T]) *TreeSet[T] {
	result := New(s.less)
	s.Range(func(item T) bool {
		if !other.Contains(item) {
			result.Insert(item)
		}
		return true
	})
	return result
}

// IsSubset 判断是否为另一个集合的子集.
func (s *TreeSet[T]) IsSubset(other *TreeSet[T]) bool {
	if s.Len() > other.Len() {
		return false
	}
	isSubset := true
	s.Range(func(item T) bool {
		if !other.Contains(item) {
			isSubset = false
			return false
		}
		return true
	})
	return isSubset
}

// IsSuperset 判断是否为另一个集合的超集.
func (s *TreeSet[T]) IsSuperset(other *TreeSet[T]) bool {
	return other.IsSubset(s)
}

// Equal 判断两个集合是否相等.
func (s *TreeSet[T]) Equal(other *TreeSet[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	return s.IsSubset(other)
}

// notifyRebalance 向观察者报告一次重平衡.
func (s *TreeSet[T]) notifyRebalance(op RebalanceOp) {
	if s.observer != nil {
		s.observer.Rebalanced(op)
	}
}
