package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/weathercard/backend/internal/domain"
	"github.com/weathercard/backend/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	baseCtx context.Context
	search  *service.SearchController
	theme   *service.ThemeService
	store   domain.PreferenceStore
}

// NewHandler creates a new handler. baseCtx bounds lookups that outlive
// the request that started them.
func NewHandler(baseCtx context.Context, search *service.SearchController, theme *service.ThemeService, store domain.PreferenceStore) *Handler {
	return &Handler{
		baseCtx: baseCtx,
		search:  search,
		theme:   theme,
		store:   store,
	}
}

type queryRequest struct {
	Query *string `json:"query"`
}

type themeRequest struct {
	Dark *bool `json:"dark"`
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	if err := h.store.Health(c.UserContext()); err != nil {
		log.Warn().Err(err).Msg("preference store unhealthy")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "degraded",
			"service": "weathercard",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "weathercard",
		"version": "1.0.0",
	})
}

// GetWidget returns the search state, card and theme
func (h *Handler) GetWidget(c *fiber.Ctx) error {
	return h.widget(c, fiber.StatusOK, h.search.State())
}

// SetQuery updates the query text
func (h *Handler) SetQuery(c *fiber.Ctx) error {
	var req queryRequest
	if err := c.BodyParser(&req); err != nil || req.Query == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	return h.widget(c, fiber.StatusOK, h.search.SetQuery(*req.Query))
}

// Search submits the current query, optionally replacing it first.
// With ?wait=true the response carries the resolved state; otherwise it
// returns 202 while the lookup runs in the background.
func (h *Handler) Search(c *fiber.Ctx) error {
	if len(c.Body()) > 0 {
		var req queryRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if req.Query != nil {
			h.search.SetQuery(*req.Query)
		}
	}

	if c.QueryBool("wait", false) {
		state, err := h.search.Submit(c.UserContext())
		if err != nil {
			return submitError(err)
		}
		return h.widget(c, fiber.StatusOK, state)
	}

	state, _, err := h.search.SubmitAsync(h.baseCtx)
	if err != nil {
		return submitError(err)
	}

	status := fiber.StatusOK
	if state.Loading() {
		status = fiber.StatusAccepted
	}
	return h.widget(c, status, state)
}

// DismissSearch clears the result or error and returns to idle
func (h *Handler) DismissSearch(c *fiber.Ctx) error {
	return h.widget(c, fiber.StatusOK, h.search.Dismiss())
}

// GetTheme returns the active theme
func (h *Handler) GetTheme(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"dark": h.theme.Dark()},
	})
}

// SetTheme assigns the theme explicitly
func (h *Handler) SetTheme(c *fiber.Ctx) error {
	var req themeRequest
	if err := c.BodyParser(&req); err != nil || req.Dark == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	dark, err := h.theme.Set(c.UserContext(), *req.Dark)
	return themeResponse(c, dark, err)
}

// ToggleTheme flips the theme
func (h *Handler) ToggleTheme(c *fiber.Ctx) error {
	dark, err := h.theme.Toggle(c.UserContext())
	return themeResponse(c, dark, err)
}

func (h *Handler) widget(c *fiber.Ctx, status int, state domain.SearchState) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    domain.NewWidgetView(state, h.theme.Dark()),
	})
}

// themeResponse reports the new theme; a failed write still changed the
// session theme, so it is surfaced as persisted=false rather than an error
func themeResponse(c *fiber.Ctx, dark bool, err error) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"dark":      dark,
			"persisted": err == nil,
		},
	})
}

func submitError(err error) error {
	if errors.Is(err, domain.ErrLookupInFlight) {
		return fiber.NewError(fiber.StatusConflict, "A lookup is already in progress")
	}
	return fiber.NewError(fiber.StatusInternalServerError, strings.TrimSpace(err.Error()))
}

// ErrorHandler renders errors as JSON
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
