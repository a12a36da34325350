package middleware

import (
	"crypto/subtle"
	"lavender/shared/constant"
	"lavender/shared/failure"
	"lavender/transport/http/response"
	"net/http"
)

// APIKey guards mutating requests with the X-API-Key header when an API key is configured.
// Reads stay open, and so does everything when no key is set.
func (a *appMiddleware) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if a.config.App.APIKey == "" || isReadOnly(request.Method) {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := a.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(a.config.App.APIKey)) != 1 {
			err := failure.ForbiddenError

			scope.SetAttribute("http.source", "client")
			scope.TraceError(err)
			scope.End()

			response.WithError(writer, err)

			return
		}

		scope.SetAttribute("http.source", "internal")
		scope.End()

		next.ServeHTTP(writer, request)
	})
}

func isReadOnly(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}
