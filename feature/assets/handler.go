package assets

import (
	"game-catalog/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for asset integrity.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the asset routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/assets")
	group.Get("/integrity", h.HandleCheck)
	group.Post("/integrity/invalidate", h.HandleInvalidate)
}

// HandleCheck runs the integrity check.
// @Summary Check asset integrity
// @Description Compare the catalog's asset references (logos, screenshots, developer logos) against the objects present in storage.
// @Tags assets
// @Produce json
// @Param missing_only query bool false "Return only assets missing from storage"
// @Success 200 {object} assets.Report "Integrity report"
// @Failure 500 {object} map[string]string "Check failed"
// @Router /assets/integrity [get]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	if c.QueryBool("missing_only") {
		missing, err := h.service.CheckMissing(c.Context())
		if err != nil {
			l.Error("Asset integrity check failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"missing": missing})
	}

	report, err := h.service.Check(c.Context())
	if err != nil {
		l.Error("Asset integrity check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleInvalidate drops the cached comparison indices.
// @Summary Invalidate integrity cache
// @Tags assets
// @Success 204 "Cache dropped"
// @Router /assets/integrity/invalidate [post]
func (h *Handler) HandleInvalidate(c *fiber.Ctx) error {
	h.service.Invalidate()
	return c.SendStatus(fiber.StatusNoContent)
}
