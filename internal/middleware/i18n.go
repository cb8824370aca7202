// internal/middleware/i18n.go
package middleware

import (
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/i18n"
)

// I18nMiddleware stores the request language under "lang". A default
// without a locale file falls back to "en".
func I18nMiddleware(defaultLang string) gin.HandlerFunc {
	if supported := i18n.GetSupportedLanguages(); !slices.Contains(supported, defaultLang) {
		if defaultLang != "" {
			logrus.WithFields(logrus.Fields{
				"locale":    defaultLang,
				"supported": supported,
			}).Warn("Default locale has no translations, using en")
		}
		defaultLang = "en"
	}
	return func(c *gin.Context) {
		c.Set("lang", resolveLanguage(c.GetHeader("Accept-Language"), defaultLang))
		c.Next()
	}
}

// resolveLanguage picks the first supported tag, e.g. "hi-IN,hi;q=0.9,en;q=0.8" -> "hi".
func resolveLanguage(header, fallback string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.Split(part, ";")[0])
		base := strings.ToLower(strings.SplitN(strings.ReplaceAll(tag, "_", "-"), "-", 2)[0])
		if base != "" && i18n.IsSupported(base) {
			return base
		}
	}
	return fallback
}
