package serve

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"tableflip.dev/todo/pkg/log"
	"tableflip.dev/todo/pkg/todo"
)

// Serve runs the HTML front end until ctx is cancelled.
type Serve struct {
	Store       *todo.Store
	Addr        string
	Title       string
	OnListening func(net.Addr)
}

func (r Serve) Do(ctx context.Context) error {
	if r.Store == nil {
		return errors.New("serve runner requires a store")
	}
	addr := r.Addr
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	srv := NewServer(r.Store, r.Title)
	httpSrv := &http.Server{
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          log.StdErrorLogger(),
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	log.Info().Str("addr", ln.Addr().String()).Msg("serve: listening")
	if r.OnListening != nil {
		r.OnListening(ln.Addr())
	}

	stop, _ := shutdownOnCancel(ctx, httpSrv)
	defer stop()

	err = httpSrv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// shutdownOnCancel shuts srv down once ctx is done. Calling stop releases
// the watcher without touching srv; stopped closes when the watcher exits.
func shutdownOnCancel(ctx context.Context, srv *http.Server) (stop func(), stopped <-chan struct{}) {
	done := make(chan struct{})
	exited := make(chan struct{})
	if ctx == nil {
		ctx = context.Background()
	}
	go func() {
		defer close(exited)
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		case <-done:
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }, exited
}
