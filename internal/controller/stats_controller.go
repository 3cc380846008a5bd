package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"courtier_backend/internal/model"
	"courtier_backend/pkg/logger"
)

// DashboardStats feeds the admin dashboard counters.
type DashboardStats struct {
	TotalProperties   int64 `json:"totalProperties"`
	ActiveProperties  int64 `json:"activeProperties"`
	PendingProperties int64 `json:"pendingProperties"`
	SoldProperties    int64 `json:"soldProperties"`
	TotalLeads        int64 `json:"totalLeads"`
	NewLeads          int64 `json:"newLeads"`
	TotalViewings     int64 `json:"totalViewings"`
	PendingViewings   int64 `json:"pendingViewings"`
}

type StatsController struct {
	db *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

func (h *StatsController) RegisterRoutes(api fiber.Router, auth fiber.Handler) {
	api.Get("/dashboard/stats", auth, h.GetDashboardStats)
}

func (h *StatsController) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.collect()
	if err != nil {
		logger.Log.Errorf("Error computing dashboard stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch stats",
		})
	}
	return c.JSON(stats)
}

func (h *StatsController) collect() (*DashboardStats, error) {
	var stats DashboardStats

	queries := []struct {
		dest *int64
		db   *gorm.DB
	}{
		{&stats.TotalProperties, h.db.Model(&model.Property{})},
		{&stats.ActiveProperties, h.db.Model(&model.Property{}).Where("status = ?", model.PropertyStatusActive)},
		{&stats.PendingProperties, h.db.Model(&model.Property{}).Where("status = ?", model.PropertyStatusPending)},
		{&stats.SoldProperties, h.db.Model(&model.Property{}).Where("status = ?", model.PropertyStatusSold)},
		{&stats.TotalLeads, h.db.Model(&model.Lead{})},
		{&stats.NewLeads, h.db.Model(&model.Lead{}).Where("status = ?", model.LeadStatusNew)},
		{&stats.TotalViewings, h.db.Model(&model.Viewing{})},
		{&stats.PendingViewings, h.db.Model(&model.Viewing{}).Where("status = ?", model.ViewingStatusPending)},
	}

	for _, q := range queries {
		if err := q.db.Count(q.dest).Error; err != nil {
			return nil, err
		}
	}

	return &stats, nil
}
