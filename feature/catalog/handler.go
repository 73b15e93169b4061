package catalog

import (
	"sync"

	"game-catalog/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	repo   *Repository
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(repo *Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/videogames")
	// Static paths before the :id parameter so "favorites" and "search"
	// are not captured as titles.
	group.Get("/favorites", h.HandleGetFavorites)
	group.Get("/search", h.HandleSearch)
	group.Get("/", h.HandleGetAll)
	group.Post("/", h.HandleSave)
	group.Get("/:id", h.HandleGetByID)
	group.Delete("/:id", h.HandleDelete)
	group.Put("/:id/favorite", h.HandleUpdateFavorite)

	app.Get("/developers", h.HandleGetDevelopers)
}

// statusForError maps error kinds onto HTTP status codes.
func statusForError(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindNetwork, KindDecoding:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// fail writes the taxonomy-derived error response.
func fail(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"error":   Message(err),
		"kind":    KindOf(err).String(),
		"details": err.Error(),
	})
}

// HandleGetAll returns the catalog.
// @Summary List videogames
// @Description Fetch the full catalog under the configured or requested fetch strategy. Only the first emission is returned over HTTP; a local_then_remote background refresh completes server-side.
// @Tags videogames
// @Produce json
// @Param strategy query string false "Fetch strategy override (local_only, remote_only, local_then_remote, remote_else_local)"
// @Success 200 {array} catalog.VideogameEntity "Videogames"
// @Failure 502 {object} map[string]string "Remote feed failure"
// @Router /videogames [get]
func (h *Handler) HandleGetAll(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	strategy := h.repo.strategy
	if raw := c.Query("strategy"); raw != "" {
		parsed, err := ParseFetchStrategy(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		strategy = parsed
	}

	// HTTP has single-response semantics, so only the first emission is
	// delivered; a second (background refresh) emission updates the local
	// store and is dropped here.
	var once sync.Once
	var entities []VideogameEntity
	var fetchErr error
	err := h.repo.GetAllWithStrategy(c.Context(), strategy, func(result []VideogameEntity, err error) {
		once.Do(func() {
			entities = result
			fetchErr = err
		})
	})
	if err != nil {
		l.Error("Catalog fetch did not run", zap.Error(err))
		return fail(c, err)
	}
	if fetchErr != nil {
		l.Error("Catalog fetch failed", zap.String("strategy", strategy.String()), zap.Error(fetchErr))
		return fail(c, fetchErr)
	}

	return c.JSON(entities)
}

// HandleGetByID returns a single videogame by title.
// @Summary Get videogame
// @Tags videogames
// @Produce json
// @Param id path string true "Videogame title (business key)"
// @Success 200 {object} catalog.VideogameEntity "Videogame"
// @Failure 404 {object} map[string]string "Unknown title"
// @Router /videogames/{id} [get]
func (h *Handler) HandleGetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	entity, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		if !IsNotFound(err) {
			logger.WithRayID(h.logger, c).Error("Videogame lookup failed", zap.Error(err))
		}
		return fail(c, err)
	}

	return c.JSON(entity)
}

// HandleSave stores a videogame locally.
// @Summary Save videogame
// @Tags videogames
// @Accept json
// @Produce json
// @Param videogame body catalog.VideogameEntity true "Videogame"
// @Success 200 {object} catalog.VideogameEntity "Stored videogame"
// @Failure 400 {object} map[string]string "Malformed body"
// @Router /videogames [post]
func (h *Handler) HandleSave(c *fiber.Ctx) error {
	var entity VideogameEntity
	if err := c.BodyParser(&entity); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed videogame payload"})
	}
	if entity.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}
	entity.ID = entity.Title
	if entity.Developer.ID == "" {
		entity.Developer.ID = entity.Developer.Name
	}

	saved, err := h.repo.Save(c.Context(), entity)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Videogame save failed", zap.Error(err))
		return fail(c, err)
	}

	return c.JSON(saved)
}

// HandleDelete removes a videogame by title.
// @Summary Delete videogame
// @Tags videogames
// @Param id path string true "Videogame title (business key)"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Unknown title"
// @Router /videogames/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetFavorites lists favorite videogames.
// @Summary List favorites
// @Tags videogames
// @Produce json
// @Success 200 {array} catalog.VideogameEntity "Favorites"
// @Router /videogames/favorites [get]
func (h *Handler) HandleGetFavorites(c *fiber.Ctx) error {
	entities, err := h.repo.GetFavorites(c.Context())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Favorites fetch failed", zap.Error(err))
		return fail(c, err)
	}
	return c.JSON(entities)
}

// FavoriteRequest is the body for the favorite update endpoint.
type FavoriteRequest struct {
	IsFavorite bool `json:"is_favorite"`
}

// HandleUpdateFavorite sets the favorite flag for a videogame.
// @Summary Update favorite flag
// @Tags videogames
// @Accept json
// @Produce json
// @Param id path string true "Videogame title (business key)"
// @Param body body catalog.FavoriteRequest true "Favorite flag"
// @Success 200 {object} catalog.VideogameEntity "Updated videogame"
// @Failure 404 {object} map[string]string "Unknown title"
// @Router /videogames/{id}/favorite [put]
func (h *Handler) HandleUpdateFavorite(c *fiber.Ctx) error {
	var body FavoriteRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed favorite payload"})
	}

	entity, err := h.repo.UpdateFavorite(c.Context(), c.Params("id"), body.IsFavorite)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(entity)
}

// HandleSearch filters the local catalog by developer or release year.
// @Summary Search videogames
// @Description Case-insensitive substring match on developer, or prefix match on release year. Exactly one query parameter must be set.
// @Tags videogames
// @Produce json
// @Param developer query string false "Developer name fragment"
// @Param year query string false "Release year"
// @Success 200 {array} catalog.VideogameEntity "Matches"
// @Failure 400 {object} map[string]string "Missing query"
// @Router /videogames/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	developer := c.Query("developer")
	year := c.Query("year")

	var entities []VideogameEntity
	var err error
	switch {
	case developer != "":
		entities, err = h.repo.SearchByDeveloper(c.Context(), developer)
	case year != "":
		entities, err = h.repo.SearchByReleaseYear(c.Context(), year)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "developer or year query parameter required"})
	}
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Catalog search failed", zap.Error(err))
		return fail(c, err)
	}

	if entities == nil {
		entities = []VideogameEntity{}
	}
	return c.JSON(entities)
}

// HandleGetDevelopers lists all stored developers.
// @Summary List developers
// @Tags developers
// @Produce json
// @Success 200 {array} catalog.DeveloperEntity "Developers"
// @Router /developers [get]
func (h *Handler) HandleGetDevelopers(c *fiber.Ctx) error {
	entities, err := h.repo.Developers(c.Context())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Developer fetch failed", zap.Error(err))
		return fail(c, err)
	}
	return c.JSON(entities)
}
