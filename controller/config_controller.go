package controller

import (
	"net/http"

	"rimashaar/model"
	"rimashaar/service"

	"github.com/gin-gonic/gin"
)

type ConfigController struct {
	cfgSvc service.ConfigService
}

func NewConfigController(cfgSvc service.ConfigService) *ConfigController {
	return &ConfigController{cfgSvc: cfgSvc}
}

func (ctrl *ConfigController) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/config")
	{
		group.GET("/active", ctrl.getActiveConfig)
		group.PATCH("/update", ctrl.updateConfig)
		group.POST("/reload", ctrl.reloadConfig)
	}
}

func (ctrl *ConfigController) getActiveConfig(c *gin.Context) {
	c.JSON(http.StatusOK, NewResponse(ctrl.cfgSvc.GetActiveConfig(), ""))
}

// updateConfig godoc
// @Summary      Update System Configuration
// @Description  Merges the JSON body into the live configuration
// @Tags         Config
// @Accept       json
// @Produce      json
// @Success      200  {object}  model.Response
// @Failure      400  {object}  model.Response
// @Router       /config/update [patch]
func (ctrl *ConfigController) updateConfig(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, model.Response{Success: false, Message: "Invalid request payload", Error: "bad_request"})
		return
	}

	cfg, err := ctrl.cfgSvc.UpdateConfig(patch)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.Response{Success: false, Message: "Error Updating Configs: " + err.Error(), Error: "invalid_config"})
		return
	}
	c.JSON(http.StatusOK, NewResponse(cfg, "Configs Updated Successfully"))
}

func (ctrl *ConfigController) reloadConfig(c *gin.Context) {
	cfg, err := ctrl.cfgSvc.ReloadConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.Response{Success: false, Message: "Error Loading Configs: " + err.Error(), Error: "invalid_config"})
		return
	}
	c.JSON(http.StatusOK, NewResponse(cfg, "Configs Loaded Successfully"))
}
