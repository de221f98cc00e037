package records

import (
	"net/http"

	"codeberg.org/leveltrack/server/internal/token"
	"codeberg.org/leveltrack/server/leveltrack/records"
	"github.com/gin-gonic/gin"
)

// CreateRecordHandler creates a new record for the authenticated user
func CreateRecordHandler(recordRepo *records.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := token.GetUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		var req records.CreateRecordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		record, err := recordRepo.Create(c.Request.Context(), userID, *req.Level, req.Time)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create record"})
			return
		}

		c.JSON(http.StatusCreated, record)
	}
}

// ListRecordsHandler lists all records for the authenticated user
func ListRecordsHandler(recordRepo *records.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := token.GetUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		recordsList, err := recordRepo.ListByUser(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list records"})
			return
		}

		c.JSON(http.StatusOK, RecordsListResponse{Records: recordsList})
	}
}
