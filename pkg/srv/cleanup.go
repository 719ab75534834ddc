package srv

import "context"

// funcService adapts plain functions to Service. Nil functions are no-ops.
type funcService struct {
	start func(ctx context.Context) error
	stop  func(ctx context.Context) error
}

func (f funcService) Start(ctx context.Context) error {
	if f.start == nil {
		return nil
	}
	return f.start(ctx)
}

func (f funcService) Shutdown(ctx context.Context) error {
	if f.stop == nil {
		return nil
	}
	return f.stop(ctx)
}

// NewCleanup runs fn during shutdown, for closers such as *sql.DB.Close.
func NewCleanup(fn func() error) Service {
	if fn == nil {
		return funcService{}
	}
	return funcService{stop: func(context.Context) error { return fn() }}
}
