package treeset

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type IteratorTestSuite struct {
	suite.Suite
	set *TreeSet[int]
}

func TestIteratorSuite(t *testing.T) {
	suite.Run(t, new(IteratorTestSuite))
}

func (s *IteratorTestSuite) SetupTest() {
	s.set = FromSlice([]int{5, 3, 8, 1, 4, 9, 7})
}

func (s *IteratorTestSuite) TestForward() {
	var items []int
	for it := s.set.Begin(); !it.IsEnd(); it = it.Next() {
		items = append(items, it.Value())
	}
	s.Equal([]int{1, 3, 4, 5, 7, 8, 9}, items)
	s.Equal(s.set.Len(), len(items))
}

func (s *IteratorTestSuite) TestBackward() {
	var items []int
	for it := s.set.End(); it.HasPrev(); {
		it = it.Prev()
		items = append(items, it.Value())
	}
	s.Equal([]int{9, 8, 7, 5, 4, 3, 1}, items)
}

func (s *IteratorTestSuite) TestEndPrevIsLast() {
	end := s.set.End()
	s.True(end.IsEnd())

	last := end.Prev()
	s.False(last.IsEnd())
	s.Equal(9, last.Value())
	s.True(last.Next().Equal(end))
}

func (s *IteratorTestSuite) TestNextPrevRoundTrip() {
	it := s.set.Find(5)
	s.Equal(7, it.Next().Value())
	s.Equal(4, it.Prev().Value())
	s.True(it.Next().Prev().Equal(it))
	s.True(it.Prev().Next().Equal(it))
}

func (s *IteratorTestSuite) TestEqual() {
	s.True(s.set.Find(4).Equal(s.set.LowerBound(4)))
	s.True(s.set.Find(4).Equal(s.set.LowerBound(2).Next()))
	s.False(s.set.Find(4).Equal(s.set.Find(5)))
	s.False(s.set.Find(9).Equal(s.set.End()))
	s.True(s.set.Begin().Equal(s.set.Find(1)))
}

func (s *IteratorTestSuite) TestEmptySet() {
	empty := NewOrdered[int]()

	s.True(empty.Begin().IsEnd())
	s.True(empty.Begin().Equal(empty.End()))
	s.False(empty.End().HasPrev())
	s.PanicsWithValue(ErrBeginIterator, func() { empty.End().Prev() })
}

func (s *IteratorTestSuite) TestSingleElement() {
	one := Of(42)

	it := one.Begin()
	s.Equal(42, it.Value())
	s.False(it.HasPrev())
	s.True(it.Next().IsEnd())
	s.True(one.End().HasPrev())
	s.True(one.End().Prev().Equal(it))
}

func (s *IteratorTestSuite) TestMisuse() {
	s.PanicsWithValue(ErrEndIterator, func() { s.set.End().Value() })
	s.PanicsWithValue(ErrEndIterator, func() { s.set.End().Next() })
	s.PanicsWithValue(ErrBeginIterator, func() { s.set.Begin().Prev() })
}

func (s *IteratorTestSuite) TestZeroIterator() {
	var it Iterator[int]

	s.True(it.IsEnd())
	s.False(it.HasPrev())
	s.PanicsWithValue(ErrEndIterator, func() { it.Value() })
	s.PanicsWithValue(ErrBeginIterator, func() { it.Prev() })
}

func (s *IteratorTestSuite) TestIteratesLargeSet() {
	set := NewOrdered[int]()
	for i := 999; i >= 0; i-- {
		set.Insert(i)
	}

	want := 0
	for it := set.Begin(); !it.IsEnd(); it = it.Next() {
		s.Require().Equal(want, it.Value())
		want++
	}
	s.Equal(1000, want)

	for it := set.End(); it.HasPrev(); {
		it = it.Prev()
		want--
		s.Require().Equal(want, it.Value())
	}
	s.Equal(0, want)
}
