package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup is implemented by the per-resource route bundles that
// mount themselves on the /api group.
type PublicRouteGroup interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}
