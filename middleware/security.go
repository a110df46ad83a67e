package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// HeadersConfig cabeçalhos de segurança
type HeadersConfig struct {
	CSP                   string
	HSTSMaxAge            int
	HSTSIncludeSubdomains bool
	XFrameOptions         string
	XContentTypeOptions   string
	ReferrerPolicy        string
	CrossOriginOpener     string
	CrossOriginResource   string
}

// DefaultHeadersConfig mesmos padrões do helmet
func DefaultHeadersConfig() HeadersConfig {
	return HeadersConfig{
		// a UI do swagger usa scripts e estilos inline
		CSP: "default-src 'self'; " +
			"script-src 'self' 'unsafe-inline'; " +
			"style-src 'self' https: 'unsafe-inline'; " +
			"img-src 'self' data:; " +
			"font-src 'self' https: data:; " +
			"object-src 'none'; " +
			"frame-ancestors 'self'; " +
			"base-uri 'self'; " +
			"form-action 'self'",
		HSTSMaxAge:            15552000, // 180 dias
		HSTSIncludeSubdomains: true,
		XFrameOptions:         "SAMEORIGIN",
		XContentTypeOptions:   "nosniff",
		ReferrerPolicy:        "no-referrer",
		CrossOriginOpener:     "same-origin",
		CrossOriginResource:   "same-origin",
	}
}

// SecurityHeaders aplica os cabeçalhos em todas as respostas
func SecurityHeaders(cfg HeadersConfig) gin.HandlerFunc {
	hsts := ""
	if cfg.HSTSMaxAge > 0 {
		hsts = fmt.Sprintf("max-age=%d", cfg.HSTSMaxAge)
		if cfg.HSTSIncludeSubdomains {
			hsts += "; includeSubDomains"
		}
	}

	return func(c *gin.Context) {
		h := c.Writer.Header()
		if cfg.CSP != "" {
			h.Set("Content-Security-Policy", cfg.CSP)
		}
		h.Set("X-Content-Type-Options", cfg.XContentTypeOptions)
		h.Set("X-Frame-Options", cfg.XFrameOptions)
		h.Set("X-DNS-Prefetch-Control", "off")
		h.Set("X-Download-Options", "noopen")
		h.Set("X-Permitted-Cross-Domain-Policies", "none")
		h.Set("X-XSS-Protection", "0")
		h.Set("Referrer-Policy", cfg.ReferrerPolicy)
		h.Set("Cross-Origin-Opener-Policy", cfg.CrossOriginOpener)
		h.Set("Cross-Origin-Resource-Policy", cfg.CrossOriginResource)
		h.Set("Origin-Agent-Cluster", "?1")
		if hsts != "" {
			h.Set("Strict-Transport-Security", hsts)
		}
		c.Next()
	}
}
