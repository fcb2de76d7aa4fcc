package controller

import (
	"context"
	"net/http"
	"time"

	"luminax_client/internal/repository"
	"luminax_client/internal/state"
	"luminax_client/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Store *state.Store
	KV    repository.KVRepository
}

func NewHealthController(store *state.Store, kv repository.KVRepository) *HealthController {
	return &HealthController{Store: store, KV: kv}
}

func (c *HealthController) HealthCheck(ctx *gin.Context) {
	probeCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	// 探测持久化存储
	if _, _, err := c.KV.Get(probeCtx, util.DarkModeStorageKey); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Persistence unavailable")
		return
	}

	snap := c.Store.State()
	util.Success(ctx, gin.H{
		"status":  "ok",
		"version": c.Store.Version(),
		"components": gin.H{
			"persistence": "up",
			"courses":     len(snap.Courses),
		},
	})
}
