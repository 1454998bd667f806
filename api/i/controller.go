package i

import "github.com/gin-gonic/gin"

// Controller registers its routes under the API base group.
type Controller interface {
	Register(*gin.RouterGroup)
}
