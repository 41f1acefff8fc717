package treeset

// options TreeSet 可选配置.
type options struct {
	observer Observer
}

// Option 配置选项函数.
type Option func(*options)

// WithObserver 设置结构变更观察者.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}

func applyOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
