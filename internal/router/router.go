package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/config"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/handler"
)

// SetupRouter configures the Gin engine and routes.
func SetupRouter(api *handler.API, cfg config.AppConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(corsMiddleware(cfg.CORSAllowedOrigins))

	r.GET("/healthz", api.Health)

	if media := api.Media(); media != nil {
		r.Static(media.URLPath(), media.Root())
	}

	base := r.Group(cfg.APIPrefix)

	authGroup := base.Group("/auth")
	{
		authGroup.POST("/login/", api.Login)
		authGroup.POST("/refresh/", api.Refresh)
	}

	// public content and submission endpoints
	for _, res := range api.PublicResources() {
		path := "/" + res.Resource().Path
		base.GET(path+"/", res.PublicList)
		base.GET(path+"/:key/", res.PublicRetrieve)
	}
	base.GET("/seo/:page_name/", api.SEOByPage)
	base.POST("/enquiry/", api.SubmitEnquiry)
	base.POST("/appointment/", api.SubmitAppointment)
	base.POST("/newsletter/subscribe/", api.Subscribe)
	base.POST("/careers/apply/", api.ApplyForCareer)

	admin := base.Group("/admin")
	admin.Use(api.AuthRequired())
	{
		admin.GET("/dashboard/stats/", api.DashboardStats)
		admin.POST("/uploads/", api.UploadImage)
		admin.PATCH("/enquiries/:id/update_status/", api.UpdateEnquiryStatus)
		admin.PATCH("/appointments/:id/update_status/", api.UpdateAppointmentStatus)

		for _, res := range api.AdminResources() {
			path := "/" + res.Resource().Path
			admin.GET(path+"/", res.AdminList)
			admin.GET(path+"/:id/", res.AdminRetrieve)
			if res.ReadOnly() {
				continue
			}
			admin.POST(path+"/", res.Create)
			admin.PUT(path+"/:id/", res.Update)
			admin.PATCH(path+"/:id/", res.Update)
			admin.DELETE(path+"/:id/", res.Delete)
		}
	}

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
