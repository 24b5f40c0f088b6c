package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/levelup-marketers/client-dashboard-service/api"
	"github.com/levelup-marketers/client-dashboard-service/internal/handler"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathHealth  = "/health"
	PathReady   = "/ready"
	PathSwagger = "/swagger"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Client    *handler.ClientHandler
	Project   *handler.ProjectHandler
	Ticket    *handler.TicketHandler
	Extras    *handler.ExtrasHandler
	Dashboard *handler.DashboardHandler
}

func New(h Handlers) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET(PathHealth, gin.WrapF(handler.Health))
	r.GET(PathReady, gin.WrapF(handler.Ready))
	r.GET(PathSwagger, func(c *gin.Context) { c.Redirect(http.StatusFound, PathSwagger+"/") })
	r.GET(PathSwagger+"/*any", func(c *gin.Context) {
		if strings.TrimPrefix(c.Param("any"), "/") == "openapi.json" {
			c.Data(http.StatusOK, "application/json", api.OpenAPISpec)
			return
		}
		if strings.TrimPrefix(c.Param("any"), "/") == "" {
			c.Request.URL.Path = PathSwagger + "/index.html"
			c.Request.RequestURI = PathSwagger + "/index.html"
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/openapi.json"))(c)
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/clients", h.Client.Create)
		v1.GET("/clients", h.Client.List)
		v1.GET("/clients/:id", h.Client.Get)
		v1.PUT("/clients/:id", h.Client.Update)
		v1.POST("/clients/:id/archive", h.Client.Archive)
		v1.DELETE("/clients/:id", h.Client.Delete)

		v1.POST("/projects", h.Project.Create)
		v1.GET("/projects", h.Project.List)
		v1.GET("/projects/:id", h.Project.Get)
		v1.PUT("/projects/:id", h.Project.Update)
		v1.POST("/projects/:id/archive", h.Project.Archive)
		v1.DELETE("/projects/:id", h.Project.Delete)

		v1.POST("/tickets", h.Ticket.Create)
		v1.GET("/tickets", h.Ticket.List)
		v1.GET("/tickets/:id", h.Ticket.Get)
		v1.PUT("/tickets/:id", h.Ticket.Update)
		v1.POST("/tickets/:id/archive", h.Ticket.Archive)
		v1.DELETE("/tickets/:id", h.Ticket.Delete)

		v1.POST("/billing", h.Extras.CreateBilling)
		v1.GET("/billing", h.Extras.ListBilling)
		v1.POST("/plugins", h.Extras.CreatePlugin)
		v1.GET("/plugins", h.Extras.ListPlugins)

		v1.GET("/dashboard/:clientID/overview", h.Dashboard.Overview)
		v1.GET("/dashboard/:clientID/sections/:section", h.Dashboard.Section)
	}

	return r
}
