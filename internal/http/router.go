package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router 使用标准库 http.ServeMux
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

// RegisterWebhookRoutes LINE webhook 与健康检查
func (r *Router) RegisterWebhookRoutes(h *WebhookHandler) {
	r.Handle("/callback", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Callback(w, req)
	})

	// "/" 在 ServeMux 中匹配所有路径，只对根路径回应
	r.Handle("/", func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/" {
			http.NotFound(w, req)
			return
		}
		if req.Method != http.MethodGet && req.Method != http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Report bot!"))
	})
}

// RegisterReportRoutes 管理端汇总 / 汇出（需 Api-Key）
func (r *Router) RegisterReportRoutes(h *ReportHandler, apiKeys []string) {
	guard := func(next http.HandlerFunc) http.HandlerFunc {
		return requireAPIKey(apiKeys, r.logger, func(w http.ResponseWriter, req *http.Request) {
			if req.Method != http.MethodGet {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			next(w, req)
		})
	}
	r.Handle("/api/v1/reports/summary", guard(h.Summary))
	r.Handle("/api/v1/reports/export", guard(h.Export))
	r.Handle("/api/v1/report-types", guard(h.ListReportTypes))
}
