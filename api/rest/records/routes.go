package records

import (
	"codeberg.org/leveltrack/server/internal/token"
	"codeberg.org/leveltrack/server/leveltrack/records"
	"github.com/gin-gonic/gin"
)

// registers all record routes; every endpoint requires authentication
func RegisterRoutes(router *gin.RouterGroup, recordRepo *records.Repository, issuer *token.Issuer) {
	recordsGroup := router.Group("/records")
	recordsGroup.Use(token.AuthMiddleware(issuer))
	{
		recordsGroup.GET("", ListRecordsHandler(recordRepo))
		recordsGroup.POST("", CreateRecordHandler(recordRepo))
	}
}
