package treeset

import (
	"github.com/Tsukikage7/collections-kit/logger"
)

// Observer 接收 TreeSet 的结构变更事件.
//
// 回调在调用方 goroutine 中同步执行，实现不应阻塞，也不应修改触发事件的集合.
type Observer interface {
	// Inserted 在每次 Insert 后调用，added 表示是否新增了元素.
	Inserted(added bool, size int)
	// Erased 在每次 Erase 后调用，removed 表示是否删除了元素.
	Erased(removed bool, size int)
	// Rebalanced 在每次旋转或降级时调用.
	Rebalanced(op RebalanceOp)
	// Cleared 在 Clear 后调用，released 为释放的节点数.
	Cleared(released int)
}

// multiObserver 将事件分发给多个观察者.
type multiObserver []Observer

// Observers 组合多个观察者，nil 会被忽略.
func Observers(observers ...Observer) Observer {
	var m multiObserver
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	switch len(m) {
	case 0:
		return nil
	case 1:
		return m[0]
	}
	return m
}

func (m multiObserver) Inserted(added bool, size int) {
	for _, o := range m {
		o.Inserted(added, size)
	}
}

func (m multiObserver) Erased(removed bool, size int) {
	for _, o := range m {
		o.Erased(removed, size)
	}
}

func (m multiObserver) Rebalanced(op RebalanceOp) {
	for _, o := range m {
		o.Rebalanced(op)
	}
}

func (m multiObserver) Cleared(released int) {
	for _, o := range m {
		o.Cleared(released)
	}
}

// logObserver 以 debug 级别记录结构变更.
// 每种 RebalanceOp 的子日志器在创建时构建一次.
type logObserver struct {
	log       logger.Logger
	rebalance map[RebalanceOp]logger.Logger
}

// NewLogObserver 创建日志观察者.
// 重复插入与删除不存在的元素不产生日志.
func NewLogObserver(log logger.Logger) Observer {
	base := log.With(logger.String("component", "treeset"))
	o := &logObserver{
		log:       base,
		rebalance: make(map[RebalanceOp]logger.Logger, 3),
	}
	for _, op := range []RebalanceOp{OpSkew, OpSplit, OpLevelDown} {
		o.rebalance[op] = base.With(logger.String("op", string(op)))
	}
	return o
}

func (o *logObserver) Inserted(added bool, size int) {
	if added {
		o.log.Debugf("treeset insert size=%d", size)
	}
}

func (o *logObserver) Erased(removed bool, size int) {
	if removed {
		o.log.Debugf("treeset erase size=%d", size)
	}
}

func (o *logObserver) Rebalanced(op RebalanceOp) {
	if log, ok := o.rebalance[op]; ok {
		log.Debug("treeset rebalance")
		return
	}
	o.log.Debugf("treeset rebalance op=%s", op)
}

func (o *logObserver) Cleared(released int) {
	o.log.Debugf("treeset clear released=%d", released)
}
