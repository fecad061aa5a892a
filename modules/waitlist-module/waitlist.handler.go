package waitlist_module

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/commons/apierrors"
	"backend/commons/enums"
)

func RegisterRoutes(api *gin.RouterGroup, svc *Service, rateLimit gin.HandlerFunc) {
	api.POST("/waitlist", rateLimit, submitHandler(svc))
	api.GET("/waitlist/count", countHandler(svc))
}

func submitHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.Abort(c, apierrors.BadRequest(enums.MISSING_FIELD, "invalid request body"))
			return
		}
		id, err := svc.Submit(req, RequestMeta{
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		})
		if err != nil {
			apierrors.Abort(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "you're on the waitlist, check your inbox",
			"id":      id,
		})
	}
}

func countHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := svc.Count()
		if err != nil {
			apierrors.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": n})
	}
}
