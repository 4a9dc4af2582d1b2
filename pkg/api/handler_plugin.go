package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agentloop/pkg/plugin"
)

// PluginListResponse lists loaded plugins in load order.
type PluginListResponse struct {
	Plugins []plugin.Summary `json:"plugins"`
}

// PluginTabsResponse lists the frontend tabs contributed by plugins.
type PluginTabsResponse struct {
	Tabs []plugin.TabInfo `json:"tabs"`
}

// GET /api/v1/plugins
func (s *Server) handleListPlugins(c *gin.Context) {
	if s.plugins == nil {
		c.JSON(http.StatusOK, PluginListResponse{Plugins: []plugin.Summary{}})
		return
	}
	c.JSON(http.StatusOK, PluginListResponse{Plugins: s.plugins.List()})
}

// GET /api/v1/plugins/tabs
func (s *Server) handleListPluginTabs(c *gin.Context) {
	if s.plugins == nil {
		c.JSON(http.StatusOK, PluginTabsResponse{Tabs: []plugin.TabInfo{}})
		return
	}
	c.JSON(http.StatusOK, PluginTabsResponse{Tabs: s.plugins.FrontendTabs()})
}
