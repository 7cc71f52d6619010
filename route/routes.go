package route

import (
	"github.com/gin-gonic/gin"

	"github.com/jvk36/cafes-with-wifi/controller"
)

func CafeRoutes(router *gin.Engine, cafes *controller.CafeController) {
	router.GET("/cafes", cafes.GetCafes)
	router.GET("/cafe/:name", cafes.GetCafeByName)
	router.POST("/add_cafe", cafes.AddCafe)
}
