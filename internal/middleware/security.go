package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

type SecurityConfig struct {
	// HSTSMaxAge in seconds; zero omits Strict-Transport-Security.
	HSTSMaxAge            int
	HSTSIncludeSubdomains bool
	FrameOptions          string
	ContentTypeOptions    string
	XSSProtection         string
	ReferrerPolicy        string
	CacheControl          string
	CSPDirectives         []string
}

// DefaultSecurityConfig suits a JSON API serving patient data: nothing is
// cacheable and nothing may be framed or executed.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		HSTSMaxAge:            31536000,
		HSTSIncludeSubdomains: true,
		FrameOptions:          "DENY",
		ContentTypeOptions:    "nosniff",
		XSSProtection:         "0",
		ReferrerPolicy:        "no-referrer",
		CacheControl:          "no-store",
		CSPDirectives:         []string{"default-src 'none'", "frame-ancestors 'none'"},
	}
}

// headers renders the config once; empty values are skipped.
func (c SecurityConfig) headers() [][2]string {
	var hsts string
	if c.HSTSMaxAge > 0 {
		hsts = fmt.Sprintf("max-age=%d", c.HSTSMaxAge)
		if c.HSTSIncludeSubdomains {
			hsts += "; includeSubDomains"
		}
	}

	all := [][2]string{
		{"Strict-Transport-Security", hsts},
		{"X-Frame-Options", c.FrameOptions},
		{"X-Content-Type-Options", c.ContentTypeOptions},
		{"X-XSS-Protection", c.XSSProtection},
		{"Referrer-Policy", c.ReferrerPolicy},
		{"Cache-Control", c.CacheControl},
		{"Content-Security-Policy", strings.Join(c.CSPDirectives, "; ")},
	}

	out := all[:0]
	for _, h := range all {
		if h[1] != "" {
			out = append(out, h)
		}
	}
	return out
}

func SecurityHeaders(config SecurityConfig) gin.HandlerFunc {
	headers := config.headers()
	return func(c *gin.Context) {
		for _, h := range headers {
			c.Header(h[0], h[1])
		}
		c.Next()
	}
}
