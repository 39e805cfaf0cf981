// Package web serves the embedded guest form and admin panel. Both
// pages are static and talk to the JSON API from the browser.
package web

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var files embed.FS

func RegisterRoutes(r *gin.Engine) {
	r.GET("/", servePage("static/index.html"))
	r.GET("/admin", servePage("static/admin.html"))
}

func servePage(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := files.ReadFile(path)
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	}
}
