package v1

import (
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	healthUC     usecase.HealthUsecase
	diagnosticUC domain.DiagnosticUsecase
}

// NewSystemHandler registers the root and diagnostic routes
func NewSystemHandler(r gin.IRoutes, healthUC usecase.HealthUsecase, diagnosticUC domain.DiagnosticUsecase) {
	handler := &SystemHandler{
		healthUC:     healthUC,
		diagnosticUC: diagnosticUC,
	}

	r.GET("/", handler.Root)
	r.GET("/test", handler.Diagnostic)
}

// Root godoc
// @Summary      Health Check
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.MessageBody
// @Router       / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	response.Success(c, http.StatusOK, h.healthUC.Check(c.Request.Context()))
}

// Diagnostic godoc
// @Summary      Diagnostic Check
// @Description  Reports database reachability and whether settings are present. Always 200.
// @Tags         system
// @Produce      json
// @Success      200  {object}  domain.DiagnosticReport
// @Router       /test [get]
func (h *SystemHandler) Diagnostic(c *gin.Context) {
	response.Success(c, http.StatusOK, h.diagnosticUC.Run(c.Request.Context()))
}
