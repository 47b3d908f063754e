package handler

import (
	"context"
	"database/sql"
	"errors"
	"runtime"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"docqa/internal/database"
	"docqa/internal/model"
	"docqa/internal/service"
)

// Health godoc
// @Summary Service health
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/health [get]
func Health(env Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(HealthResponse{
			Status:      "healthy",
			Timestamp:   timestamp(time.Now()),
			Uptime:      time.Since(env.StartedAt).Seconds(),
			Environment: env.Name,
		})
	}
}

// Stats godoc
// @Summary Process statistics and activity totals
// @Tags system
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /api/stats [get]
func Stats(svc service.DocumentService, env Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)

		res := StatsResponse{
			Uptime: time.Since(env.StartedAt).Seconds(),
			Memory: MemoryStats{
				Alloc:      ms.Alloc,
				TotalAlloc: ms.TotalAlloc,
				Sys:        ms.Sys,
				HeapInuse:  ms.HeapInuse,
				NumGC:      ms.NumGC,
			},
			Goroutines: runtime.NumGoroutine(),
			NumCPU:     runtime.NumCPU(),
			Platform:   runtime.GOOS + "/" + runtime.GOARCH,
			GoVersion:  runtime.Version(),
			Timestamp:  timestamp(time.Now()),
		}

		sum, err := svc.ActivitySummary(c.UserContext())
		switch {
		case err == nil:
			res.Activity = sum
		case errors.Is(err, service.ErrActivityDisabled):
		default:
			// stats stay available when the ledger is down
			env.logger().Warn("activity summary unavailable", zap.Error(err))
		}

		return c.JSON(res)
	}
}

// ListActivity godoc
// @Summary List recorded request activity
// @Tags system
// @Produce json
// @Param limit query int false "page size (max 100)" default(10)
// @Param offset query int false "offset" default(0)
// @Success 200 {object} ActivityListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/activity [get]
func ListActivity(svc service.DocumentService, env Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return env.writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "Bad request", "invalid limit", nil)
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return env.writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "Bad request", "invalid offset", nil)
		}

		res, err := svc.ListActivity(c.UserContext(), limit, offset)
		if errors.Is(err, service.ErrActivityDisabled) {
			return env.writeError(c, fiber.StatusServiceUnavailable, "ACTIVITY_DISABLED",
				"Service unavailable", "activity log is not configured", nil)
		}
		if err != nil {
			env.logger().Error("list activity", zap.Error(err))
			return env.writeError(c, fiber.StatusInternalServerError, service.OutcomeInternal,
				"Internal server error", unexpectedMessage, err)
		}
		if res.Items == nil {
			res.Items = []model.Activity{}
		}
		return c.JSON(res)
	}
}

// LivenessProbe answers 200 while the process is up.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// Readiness checks the activity database when one is configured.
func Readiness(db *sql.DB, env Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db == nil {
			return c.JSON(fiber.Map{"status": "ready"})
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := database.Ping(ctx, db); err != nil {
			return env.writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE",
				"Service unavailable", "dependency unavailable", err)
		}
		return c.JSON(fiber.Map{"status": "ready"})
	}
}
