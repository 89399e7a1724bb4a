// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func I18nMiddleware(defaultLang string) gin.HandlerFunc {
	if defaultLang == "" {
		defaultLang = "en"
	}
	return func(c *gin.Context) {
		lang := defaultLang

		// Handle cases like "zh-TW,zh;q=0.9,en;q=0.8"
		if header := c.GetHeader("Accept-Language"); header != "" {
			first := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])
			switch first {
			case "zh-TW", "zh-Hant", "zh_TW", "zh":
				lang = "zh_TW"
			case "en", "en-US", "en-GB":
				lang = "en"
			}
		}

		c.Set("lang", lang)
		c.Next()
	}
}
