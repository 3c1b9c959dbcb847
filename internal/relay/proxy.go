// Package relay реализует HTTP-поверхность relay-сервиса: пересылку
// вызовов gRPC-web на внутренний эндпоинт, приём отчётов о сбоях клиента
// и раздачу статики страницы.
package relay

import (
	"encoding/json"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// Префикс пути, под которым смонтирована пересылка
const ProxyPrefix = "/grpc"

// Заголовки, разрешённые к пересылке на внутренний эндпоинт.
// Все остальные входящие заголовки отбрасываются
var forwardedHeaders = []string{
	"Content-Type",
	"X-Grpc-Web",
	"X-User-Agent",
}

type proxyError struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// NewProxy создает обработчик пересылки: срезает префикс пути, переносит
// метод и тело на внутренний эндпоинт и пропускает только разрешённые
// заголовки. Сбой пересылки даёт 502 со структурированным телом, повторы
// не выполняются
func NewProxy(target *url.URL, logger *zap.Logger) http.Handler {
	proxy := &httputil.ReverseProxy{
		Director: func(req *http.Request) {
			originalPath := req.URL.Path

			req.URL.Scheme = target.Scheme
			req.URL.Host = target.Host
			req.URL.Path = strings.TrimPrefix(req.URL.Path, ProxyPrefix)
			if req.URL.Path == "" {
				req.URL.Path = "/"
			}
			req.Host = target.Host

			filtered := make(http.Header, len(forwardedHeaders))
			for _, name := range forwardedHeaders {
				if values, ok := req.Header[http.CanonicalHeaderKey(name)]; ok {
					filtered[http.CanonicalHeaderKey(name)] = values
				}
			}
			req.Header = filtered

			logger.Info("forwarding request",
				zap.String("method", req.Method),
				zap.String("from", originalPath),
				zap.String("to", req.URL.String()),
			)
		},
		ModifyResponse: func(resp *http.Response) error {
			logger.Info("forwarded response",
				zap.Int("status", resp.StatusCode),
				zap.String("path", resp.Request.URL.Path),
			)
			return nil
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Error("proxy error",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			if encErr := json.NewEncoder(w).Encode(proxyError{
				Error:   "Proxy error",
				Details: err.Error(),
			}); encErr != nil {
				logger.Error("failed to encode proxy error response", zap.Error(encErr))
			}
		},
	}

	return proxy
}
