package controllers

import (
	"net/http"

	"richmondtech/internal/delivery/http/helpers"
	"richmondtech/internal/domain"
)

// HealthSuccessResponse is the success response envelope for GET /health (200).
type HealthSuccessResponse struct {
	Data  *domain.Health    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type HealthController struct {
	Service domain.HealthService
}

func NewHealthController(svc domain.HealthService) *HealthController {
	return &HealthController{Service: svc}
}

// Health godoc
// @Summary Component health
// @Description Reports record store and model service health. A degraded status still responds 200; callers inspect the body.
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthSuccessResponse "data contains status and per-component detail"
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	h := c.Service.Check(r.Context())
	helpers.WriteJSONSuccess(w, http.StatusOK, h)
}
