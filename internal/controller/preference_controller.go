package controller

import (
	"luminax_client/internal/notify"
	"luminax_client/internal/service"
	"luminax_client/internal/util"

	"github.com/gin-gonic/gin"
)

type PreferenceController struct {
	Preferences *service.PreferenceService
	Feed        *notify.Feed
}

func NewPreferenceController(preferences *service.PreferenceService, feed *notify.Feed) *PreferenceController {
	return &PreferenceController{Preferences: preferences, Feed: feed}
}

func (c *PreferenceController) GetPreferences(ctx *gin.Context) {
	util.Success(ctx, gin.H{"darkMode": c.Preferences.DarkMode()})
}

func (c *PreferenceController) ToggleDarkMode(ctx *gin.Context) {
	util.Success(ctx, gin.H{"darkMode": c.Preferences.ToggleDarkMode()})
}

// Notifications 取走待展示的提示消息，peek=true 时只查看
func (c *PreferenceController) Notifications(ctx *gin.Context) {
	var items []notify.Notification
	if ctx.Query("peek") == "true" {
		items = c.Feed.Pending()
	} else {
		items = c.Feed.Drain()
	}
	if items == nil {
		items = []notify.Notification{}
	}
	util.Success(ctx, items)
}
