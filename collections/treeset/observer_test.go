package treeset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tsukikage7/collections-kit/logger"
)

// recordingObserver 记录收到的事件.
type recordingObserver struct {
	events []string
}

func (r *recordingObserver) Inserted(added bool, size int) {
	r.events = append(r.events, fmt.Sprintf("insert %t %d", added, size))
}

func (r *recordingObserver) Erased(removed bool, size int) {
	r.events = append(r.events, fmt.Sprintf("erase %t %d", removed, size))
}

func (r *recordingObserver) Rebalanced(op RebalanceOp) {
	r.events = append(r.events, string(op))
}

func (r *recordingObserver) Cleared(released int) {
	r.events = append(r.events, fmt.Sprintf("clear %d", released))
}

// testLogger 用于测试的日志器，记录 Debug 消息及其字段.
type testLogger struct {
	fields  []logger.Field
	entries *[]string
	withs   *int
}

func newTestLogger() *testLogger {
	return &testLogger{entries: &[]string{}, withs: new(int)}
}

func (m *testLogger) Debug(args ...any) {
	msg := fmt.Sprint(args...)
	for _, f := range m.fields {
		msg += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	*m.entries = append(*m.entries, msg)
}
func (m *testLogger) Debugf(format string, args ...any) { m.Debug(fmt.Sprintf(format, args...)) }
func (m *testLogger) Info(args ...any)                  {}
func (m *testLogger) Infof(format string, args ...any)  {}
func (m *testLogger) Warn(args ...any)                  {}
func (m *testLogger) Warnf(format string, args ...any)  {}
func (m *testLogger) Error(args ...any)                 {}
func (m *testLogger) Errorf(format string, args ...any) {}
func (m *testLogger) With(fields ...logger.Field) logger.Logger {
	*m.withs++
	return &testLogger{
		fields:  append(append([]logger.Field{}, m.fields...), fields...),
		entries: m.entries,
		withs:   m.withs,
	}
}
func (m *testLogger) Sync() error  { return nil }
func (m *testLogger) Close() error { return nil }

func TestObserverEvents(t *testing.T) {
	rec := &recordingObserver{}
	s := NewOrdered[int](WithObserver(rec))

	s.Add(1, 2, 3, 3)
	s.Erase(9)
	s.Clear()

	assert.Equal(t, []string{
		"insert true 1",
		"insert true 2",
		string(OpSplit),
		"insert true 3",
		"insert false 3",
		"erase false 3",
		"clear 3",
	}, rec.events)
}

func TestObserverSeesLevelDown(t *testing.T) {
	rec := &recordingObserver{}
	s := FromSlice([]int{1, 2, 3})
	s.observer = rec

	s.Erase(2)
	assert.Equal(t, []string{string(OpLevelDown), string(OpSkew), "erase true 2"}, rec.events)
	assert.Equal(t, []int{1, 3}, s.ToSlice())
}

func TestObservers(t *testing.T) {
	assert.Nil(t, Observers())
	assert.Nil(t, Observers(nil, nil))

	a := &recordingObserver{}
	assert.Same(t, a, Observers(nil, a))

	b := &recordingObserver{}
	s := NewOrdered[int](WithObserver(Observers(a, b)))
	s.Insert(1)
	assert.Equal(t, []string{"insert true 1"}, a.events[len(a.events)-1:])
	assert.Equal(t, []string{"insert true 1"}, b.events)
}

func TestCloneSharesObserver(t *testing.T) {
	rec := &recordingObserver{}
	s := NewOrdered[int](WithObserver(rec))
	s.Insert(1)

	before := len(rec.events)
	clone := s.Clone()
	assert.Len(t, rec.events, before, "copying must not emit events")

	clone.Insert(2)
	assert.Equal(t, "insert true 2", rec.events[len(rec.events)-1])
}

func TestSetAlgebraIsSilent(t *testing.T) {
	rec := &recordingObserver{}
	s := NewOrdered[int](WithObserver(rec))
	s.Add(1, 2, 3, 4, 5)
	before := append([]string(nil), rec.events...)

	union := s.Union(Of(6, 7))
	inter := s.Intersection(Of(4, 5))
	diff := s.Difference(Of(1))

	assert.Equal(t, before, rec.events)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, union.ToSlice())
	assert.Equal(t, []int{4, 5}, inter.ToSlice())
	assert.Equal(t, []int{2, 3, 4, 5}, diff.ToSlice())

	union.Insert(8)
	assert.Equal(t, before, rec.events, "results carry no observer")
}

func TestLogObserver(t *testing.T) {
	log := newTestLogger()
	s := NewOrdered[int](WithObserver(NewLogObserver(log)))

	s.Insert(1)
	s.Insert(1)
	s.Erase(5)
	s.Erase(1)
	s.Clear()

	assert.Equal(t, []string{
		"treeset insert size=1 component=treeset",
		"treeset erase size=0 component=treeset",
		"treeset clear released=0 component=treeset",
	}, *log.entries)
}

func TestLogObserverReusesChildLoggers(t *testing.T) {
	log := newTestLogger()
	s := NewOrdered[int](WithObserver(NewLogObserver(log)))
	built := *log.withs

	for i := range 100 {
		s.Insert(i)
	}
	s.Erase(50)

	assert.Equal(t, built, *log.withs)
	assert.Contains(t, *log.entries, "treeset rebalance component=treeset op=split")
	assert.Contains(t, *log.entries, "treeset insert size=100 component=treeset")
}

func TestLogObserverWithZap(t *testing.T) {
	s := NewOrdered[int](WithObserver(NewLogObserver(logger.NewNop())))
	assert.NotPanics(t, func() {
		s.Add(3, 2, 1)
		s.Erase(2)
		s.Clear()
	})
}
