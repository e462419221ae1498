package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the id AuthMiddleware stored on the context. The
// middleware stores a uint; float64 covers values coming straight out
// of JWT map claims.
func CurrentUserID(c *gin.Context) uint {
	v, ok := c.Get("userId")
	if !ok {
		return 0
	}
	switch id := v.(type) {
	case uint:
		return id
	case float64:
		return uint(id)
	}
	return 0
}

func CurrentRole(c *gin.Context) string {
	v, _ := c.Get("role")
	s, _ := v.(string)
	return s
}
