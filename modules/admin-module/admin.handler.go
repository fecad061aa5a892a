package admin_module

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"backend/commons/apierrors"
)

func RegisterRoutes(api *gin.RouterGroup, svc *Service, adminKey gin.HandlerFunc) {
	admin := api.Group("/admin", adminKey)
	admin.GET("/waitlist", listHandler(svc))
	admin.GET("/stats", statsHandler(svc))
	admin.GET("/export", exportHandler(svc))
}

func listHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		leads, err := svc.ListAll()
		if err != nil {
			apierrors.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, leads)
	}
}

func statsHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Stats()
		if err != nil {
			apierrors.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func exportHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		csv, err := svc.ExportCSV()
		if err != nil {
			apierrors.Abort(c, err)
			return
		}
		filename := fmt.Sprintf("waitlist-%s.csv", time.Now().UTC().Format("20060102"))
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "text/csv", []byte(csv))
	}
}
