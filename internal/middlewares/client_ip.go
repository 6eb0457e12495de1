package middlewares

import (
	"net"
	"net/http"
	"strings"
)

// ClientIPMiddleware rewrites RemoteAddr to "IP:port" for the visitor's
// address. Forwarding headers are only read when trustProxy is set, since
// anyone can send them.
func ClientIPMiddleware(trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if clientIP := extractClientIP(r, trustProxy); clientIP != "" {
				port := "0"
				if _, p, err := net.SplitHostPort(r.RemoteAddr); err == nil && p != "" {
					port = p
				}
				r.RemoteAddr = net.JoinHostPort(clientIP, port)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP returns the host part of RemoteAddr, or RemoteAddr itself when it
// has no port.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

var proxyHeaders = []string{"True-Client-IP", "X-Real-IP", "X-Forwarded-For"}

func extractClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		for _, header := range proxyHeaders {
			value := r.Header.Get(header)
			if value == "" {
				continue
			}
			// X-Forwarded-For lists the original client first.
			first, _, _ := strings.Cut(value, ",")
			if ip := parseIP(first); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	if parsed := net.ParseIP(strings.TrimSpace(s)); parsed != nil {
		return parsed.String()
	}
	return ""
}
