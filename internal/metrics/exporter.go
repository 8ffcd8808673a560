package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	heapAlloc = promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "mulbench_heap_alloc_bytes",
		Help: "Bytes of allocated heap objects at scrape time",
	}, func() float64 {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		return float64(m.HeapAlloc)
	})
	scrapes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mulbench_metrics_scrapes_total",
		Help: "Number of /metrics requests served",
	})
)

// Exporter serves /metrics for the lifetime of a run.
type Exporter struct {
	server   *http.Server
	listener net.Listener
	errCh    chan error
}

// NewExporter prepares an exporter for addr (e.g. ":9090", "127.0.0.1:0")
// serving the default Prometheus registry.
func NewExporter(addr string) *Exporter {
	mux := http.NewServeMux()
	mux.Handle("/metrics", countScrapes(promhttp.Handler()))
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return &Exporter{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       30 * time.Second,
		},
		errCh: make(chan error, 1),
	}
}

func countScrapes(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		scrapes.Inc()
		next.ServeHTTP(w, r)
	})
}

// Start binds the listener and serves in the background. It returns the
// bound address, which differs from the configured one for port 0.
func (e *Exporter) Start() (string, error) {
	ln, err := net.Listen("tcp", e.server.Addr)
	if err != nil {
		return "", err
	}
	e.listener = ln
	go func() {
		if err := e.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.errCh <- err
		}
		close(e.errCh)
	}()
	return ln.Addr().String(), nil
}

// Shutdown stops the server gracefully and reports any serve error.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e.listener == nil {
		return nil
	}
	if err := e.server.Shutdown(ctx); err != nil {
		return err
	}
	return <-e.errCh
}
