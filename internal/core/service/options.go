package service

import "sync"

// Option configures AccountService and SchedulingService.
type Option func(*options)

type options struct {
	lock *sync.Mutex
}

// WithLock makes the service serialize its mutations on mu. Passing the same
// mutex to both services stops an account delete from landing between the
// account checks and the ledger write of CreateAppointment.
func WithLock(mu *sync.Mutex) Option {
	return func(o *options) { o.lock = mu }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.lock == nil {
		o.lock = &sync.Mutex{}
	}
	return o
}
