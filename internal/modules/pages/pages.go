// Package pages serves the server-rendered HTML shell: the public
// landing and login pages, and the session-gated dashboard.
package pages

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soez-labs/blogforge/internal/middleware"
)

type Handler struct {
	validator middleware.SessionValidator
}

func NewHandler(v middleware.SessionValidator) *Handler {
	return &Handler{validator: v}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.landing)
	r.GET("/login", middleware.LoginRedirect(h.validator, "/dashboard"), h.login)

	guard := middleware.PageGuard(h.validator, "/login")
	r.GET("/dashboard", guard, h.dashboard)
	r.GET("/dashboard/blog-generator", guard, h.dashboard)
	r.GET("/dashboard/blogs", guard, h.dashboard)
	r.GET("/dashboard/test-email", guard, h.dashboard)
}

func (h *Handler) landing(c *gin.Context) {
	renderPage(c, "BlogForge", landingBody)
}

func (h *Handler) login(c *gin.Context) {
	renderPage(c, "Log in - BlogForge", loginBody)
}

func (h *Handler) dashboard(c *gin.Context) {
	renderPage(c, "Dashboard - BlogForge", dashboardBody)
}

const pageShell = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 24px; font: 16px/1.7 -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; color: #222; background: #fff; }
    main { max-width: 860px; margin: 0 auto; }
    h1 { margin: 0 0 20px; font-size: 28px; }
    a { color: #4f46e5; }
    nav a { margin-right: 16px; }
  </style>
</head>
<body>
  <main>{{.Body}}</main>
</body>
</html>`

const landingBody = `<h1>BlogForge</h1>
<p>Generate SEO-optimized blog articles and manage them from one place.</p>
<nav><a href="/login">Log in</a><a href="/dashboard">Dashboard</a></nav>`

const loginBody = `<h1>Log in</h1>
<form method="post" action="/api/auth/login" id="login-form">
  <p><input name="username" placeholder="Username" autocomplete="username" /></p>
  <p><input name="password" type="password" placeholder="Password" autocomplete="current-password" /></p>
  <p><button type="submit">Log in</button></p>
</form>`

const dashboardBody = `<h1>Dashboard</h1>
<nav>
  <a href="/dashboard/blog-generator">Blog generator</a>
  <a href="/dashboard/blogs">Saved blogs</a>
  <a href="/dashboard/test-email">Test email</a>
</nav>`

var shellTemplate = template.Must(template.New("shell").Parse(pageShell))

func renderPage(c *gin.Context, title, body string) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	_ = shellTemplate.Execute(c.Writer, map[string]interface{}{
		"Title": title,
		"Body":  template.HTML(body),
	})
}
