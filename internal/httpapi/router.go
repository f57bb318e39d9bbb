package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router 使用标准库 http.ServeMux（避免引入第三方路由依赖）
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// only responds to the given method; everything else is 405
func method(m string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != m {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h(w, req)
	}
}

// RegisterDemoRoutes 注册与 BrewOS 前端对齐的路由
func (r *Router) RegisterDemoRoutes(h *Handler) {
	r.Handle("/app/api/v1/demo/state", method(http.MethodGet, h.DemoState))
	r.Handle("/app/api/v1/demo/activate", method(http.MethodPost, h.Activate))
	r.Handle("/app/api/v1/demo/deactivate", method(http.MethodPost, h.Deactivate))
	r.Handle("/app/api/v1/demo/logs", method(http.MethodGet, h.DemoLogs))

	r.Handle("/app/api/v1/telemetry/dataset", method(http.MethodGet, h.Dataset))
	r.Handle("/app/api/v1/telemetry/brews", method(http.MethodGet, h.Brews))
	r.Handle("/app/api/v1/telemetry/power", method(http.MethodGet, h.Power))
	r.Handle("/app/api/v1/telemetry/daily", method(http.MethodGet, h.Daily))
	r.Handle("/app/api/v1/telemetry/stats", method(http.MethodGet, h.Stats))

	r.Handle("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}
