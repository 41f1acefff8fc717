package treeset

import (
	"errors"
	"fmt"
)

var (
	// ErrEndIterator 在 end 迭代器上取值或继续前进.
	ErrEndIterator = errors.New("treeset: iterator is at end")

	// ErrBeginIterator 在首元素处继续后退.
	ErrBeginIterator = errors.New("treeset: iterator has no predecessor")

	// ErrCorrupted 树结构不满足不变量.
	ErrCorrupted = errors.New("treeset: tree invariant violated")
)

// 不变量名称.
const (
	InvariantOrder    = "order"
	InvariantLevel    = "level"
	InvariantUnique   = "unique"
	InvariantSentinel = "sentinel"
	InvariantParent   = "parent"
	InvariantSize     = "size"
)

// InvariantError 不变量校验错误.
type InvariantError struct {
	Invariant string
	Message   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("treeset invariant violated [%s]: %s", e.Invariant, e.Message)
}

// Unwrap 使 errors.Is(err, ErrCorrupted) 成立.
func (e *InvariantError) Unwrap() error {
	return ErrCorrupted
}
