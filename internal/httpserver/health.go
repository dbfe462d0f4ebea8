package httpserver

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "productivity-assistant"
)

type healthResp struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	Version       string `json:"version"`
	Authenticated *bool  `json:"authenticated,omitempty"`
	Voice         string `json:"voice,omitempty"`
}

func newHealthResp(status string) healthResp {
	return healthResp{Status: status, Service: ServiceName, Version: HealthVersion}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the companion is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "companion is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newHealthResp("healthy"))
}

// readyCheck also reports the backend session and the voice capture strategy.
// @Summary Readiness Check
// @Description Reports session and voice readiness
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "companion is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	resp := newHealthResp("ready")
	_, authenticated := srv.authUC.Status()
	resp.Authenticated = &authenticated
	resp.Voice = "none"
	if srv.voiceUC != nil {
		resp.Voice = string(srv.voiceUC.Status().Strategy)
	}
	response.OK(c, resp)
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "companion is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newHealthResp("alive"))
}
