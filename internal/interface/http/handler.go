package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/travel-wellness/internal/domain/exposure"
	"github.com/yanqian/travel-wellness/internal/domain/hydration"
	"github.com/yanqian/travel-wellness/internal/domain/jetlag"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	jetLagSvc    jetlag.Service
	exposureSvc  exposure.Service
	hydrationSvc hydration.Service
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(jetLagSvc jetlag.Service, exposureSvc exposure.Service, hydrationSvc hydration.Service, logger *slog.Logger) *Handler {
	return &Handler{
		jetLagSvc:    jetLagSvc,
		exposureSvc:  exposureSvc,
		hydrationSvc: hydrationSvc,
		logger:       logger.With("component", "http.handler"),
	}
}

// PlanJetLag handles the jet-lag plan endpoint.
func (h *Handler) PlanJetLag(c *gin.Context) {
	var req jetlag.Request
	if !bindJSON(c, &req) {
		return
	}
	plan, err := h.jetLagSvc.Plan(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, plan)
}

// CompareTimeZones handles the timezone difference lookup.
func (h *Handler) CompareTimeZones(c *gin.Context) {
	var req jetlag.CompareRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	diff, err := h.jetLagSvc.Compare(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, diff)
}

// HeatIndex handles the heat index endpoint.
func (h *Handler) HeatIndex(c *gin.Context) {
	var req exposure.HeatIndexRequest
	if !bindJSON(c, &req) {
		return
	}
	data, err := h.exposureSvc.HeatIndex(req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, data)
}

// ExtremeHeat handles the combined UV and heat warning endpoint.
func (h *Handler) ExtremeHeat(c *gin.Context) {
	var req exposure.ExtremeHeatRequest
	if !bindJSON(c, &req) {
		return
	}
	warning, err := h.exposureSvc.ExtremeHeat(req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, warning)
}

// ActivityRisk handles the outdoor activity decision endpoint.
func (h *Handler) ActivityRisk(c *gin.Context) {
	var req exposure.ActivityRequest
	if !bindJSON(c, &req) {
		return
	}
	assessment, err := h.exposureSvc.Activity(req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// Hydration handles the daily intake endpoint.
func (h *Handler) Hydration(c *gin.Context) {
	var req hydration.Request
	if !bindJSON(c, &req) {
		return
	}
	rec, err := h.hydrationSvc.Recommend(req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return false
	}
	return true
}
