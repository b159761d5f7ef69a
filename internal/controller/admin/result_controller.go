package admin

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/courseboard/internal/controller"
	"github.com/lshigami/courseboard/internal/report"
	"github.com/lshigami/courseboard/internal/service"
)

type AdminResultController struct {
	reportService service.ReportService
}

func NewAdminResultController(rs service.ReportService) *AdminResultController {
	return &AdminResultController{reportService: rs}
}

// Dashboard godoc
// @Summary (Admin) Quiz results dashboard
// @Description Results joined with departments, newest first, filtered by the query parameters. Empty or "any" means no constraint. Option lists ignore the filters.
// @Tags Admin - Results
// @Produce json
// @Security BearerAuth
// @Param username query string false "Username"
// @Param course query string false "Course title"
// @Param score query string false "Score"
// @Param date query string false "Calendar date in the configured layout"
// @Param department query string false "Department"
// @Success 200 {object} report.Aggregation
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/results [get]
func (c *AdminResultController) Dashboard(ctx *gin.Context) {
	var filters report.Filters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	agg, err := c.reportService.Dashboard(ctx.Request.Context(), filters)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to load results")
		return
	}
	ctx.JSON(http.StatusOK, agg)
}

// Export godoc
// @Summary (Admin) Export filtered results as CSV
// @Tags Admin - Results
// @Produce text/csv
// @Security BearerAuth
// @Param username query string false "Username"
// @Param course query string false "Course title"
// @Param score query string false "Score"
// @Param date query string false "Calendar date in the configured layout"
// @Param department query string false "Department"
// @Success 200 {file} file "quiz_results.csv"
// @Failure 400 {object} dto.ErrorResponse "No data to export"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/results/export [get]
func (c *AdminResultController) Export(ctx *gin.Context) {
	var filters report.Filters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	body, err := c.reportService.ExportCSV(ctx.Request.Context(), filters)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to export results")
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
}
