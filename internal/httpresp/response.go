package httpresp

import "github.com/gin-gonic/gin"

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(201, data)
}

func Success(c *gin.Context, message string) {
	c.JSON(200, gin.H{"success": true, "message": message})
}
