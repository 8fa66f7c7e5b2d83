package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/oguzhan/uniregistry/internal/app/services"
	"github.com/oguzhan/uniregistry/internal/pkg/respond"
)

// ReportController serves the fifteen canned reports. Routes are generated
// from the report catalog so the HTTP surface and the desktop bridge stay
// in sync.
type ReportController struct {
	service *services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{service: service}
}

// Register mounts one GET route per catalog entry.
func (c *ReportController) Register(rg *gin.RouterGroup) {
	for _, def := range services.ReportCatalog() {
		rg.GET("/"+def.Slug, c.handler(def))
	}
}

func (c *ReportController) handler(def services.ReportDefinition) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		data, err := def.Run(ctx, c.service)
		if err != nil {
			respond.HandleError(ctx, err, "Resource", def.FailureMessage)
			return
		}
		respond.Success(ctx, data, def.Message)
	}
}
