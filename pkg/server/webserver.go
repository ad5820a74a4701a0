package server

import (
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/matst80/slask-storefront/pkg/common"
	"github.com/matst80/slask-storefront/pkg/config"
	"github.com/matst80/slask-storefront/pkg/shop"
	"github.com/matst80/slask-storefront/pkg/tracking"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type WebServer struct {
	Shop          *shop.Shop
	Grid          config.GridSettings
	Cache         ResponseCache
	Tracking      tracking.Tracking
	Logger        *zap.Logger
	CacheDuration time.Duration
}

func NewWebServer(s *shop.Shop, grid config.GridSettings, logger *zap.Logger) *WebServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebServer{
		Shop:          s,
		Grid:          grid,
		Logger:        logger,
		CacheDuration: 5 * time.Minute,
	}
}

func (ws *WebServer) handle(fn func(w http.ResponseWriter, r *http.Request, sessionId string, enc common.Encoder) error) http.HandlerFunc {
	return common.JsonHandler(ws.Tracking, ws.Logger, fn)
}

// ClientHandler returns the public api routes.
func (ws *WebServer) ClientHandler() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("OPTIONS /api/", common.RespondToOptions)
	mux.HandleFunc("GET /api/products", ws.handle(ws.Products))
	mux.HandleFunc("GET /api/products/{id}", ws.handle(ws.GetProduct))
	mux.HandleFunc("GET /api/options", ws.handle(ws.Options))
	mux.HandleFunc("GET /api/facets", ws.handle(ws.Facets))
	mux.HandleFunc("GET /api/layout", ws.handle(ws.Layout))
	return mux
}

// DebugHandler serves health, metrics and optionally pprof.
func DebugHandler(enableProfiling bool) *http.ServeMux {
	debugMux := http.NewServeMux()
	debugMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	debugMux.Handle("/metrics", promhttp.Handler())
	if enableProfiling {
		debugMux.HandleFunc("/debug/pprof/", pprof.Index)
		debugMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		debugMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		debugMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		debugMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
	return debugMux
}
