package treeset

import (
	"cmp"
	"time"
)

// LessFunc 严格弱序比较函数.
// a < b 时返回 true；a 与 b 互不小于对方时视为相等.
type LessFunc[T any] func(a, b T) bool

// OrderedLess 用于 cmp.Ordered 类型的比较器.
// 支持 int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
// float32, float64, string, uintptr 等类型.
func OrderedLess[T cmp.Ordered](a, b T) bool {
	return cmp.Less(a, b)
}

// ReverseLess 用于 cmp.Ordered 类型的逆序比较器.
func ReverseLess[T cmp.Ordered](a, b T) bool {
	return cmp.Less(b, a)
}

// TimeLess 时间比较器.
func TimeLess(a, b time.Time) bool {
	return a.Before(b)
}

// ReverseTimeLess 时间逆序比较器.
func ReverseTimeLess(a, b time.Time) bool {
	return b.Before(a)
}

// Reverse 返回逆序比较器.
func Reverse[T any](less LessFunc[T]) LessFunc[T] {
	return func(a, b T) bool {
		return less(b, a)
	}
}

// LessFromCompare 将三路比较函数转换为 LessFunc.
// compare 返回值: 负数(a<b), 0(a==b), 正数(a>b).
func LessFromCompare[T any](compare func(a, b T) int) LessFunc[T] {
	return func(a, b T) bool {
		return compare(a, b) < 0
	}
}
