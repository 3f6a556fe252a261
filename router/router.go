// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SAHAYOGESHWARAN/guries-sub010/auth"
	"github.com/SAHAYOGESHWARAN/guries-sub010/controller"
	"github.com/SAHAYOGESHWARAN/guries-sub010/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	permissions *auth.Registry,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))
	router.Use(middleware.Identity())

	// Every known role carries view_assets; this keeps unknown roles
	// out before any handler runs. Write permissions are re-checked in
	// the service layer per operation.
	api := router.Group("/api/v1")
	api.Use(middleware.RequirePermission(permissions, auth.PermViewAssets))

	controllers.Asset.RegisterRoutes(api)
	controllers.Link.RegisterRoutes(api)
	controllers.Service.RegisterRoutes(api)
	controllers.Master.RegisterRoutes(api)

	return router
}
