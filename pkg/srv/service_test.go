package srv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStopServices_ReverseOrder(t *testing.T) {
	var order []string
	services := []Service{
		NewCleanup(func() error { order = append(order, "db"); return nil }),
		NewCleanup(func() error { order = append(order, "http"); return errors.New("already closed") }),
		NewCleanup(nil),
	}

	StopServices(context.Background(), services)

	assert.Equal(t, []string{"http", "db"}, order)
}

func TestShutdownServices_WaitsForCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	closed := make(chan struct{})
	services := []Service{NewCleanup(func() error { close(closed); return nil })}

	done := make(chan struct{})
	go func() {
		ShutdownServices(ctx, services)
		close(done)
	}()

	select {
	case <-closed:
		t.Fatal("shutdown ran before cancel")
	default:
	}

	cancel()
	<-done
	_, open := <-closed
	assert.False(t, open)
}
