package router

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/brainfeed/internal/apperr"
)

type addBookmarkRequest struct {
	Slug string `json:"slug"`
}

// bookmarksHandler godoc
// @Summary Bookmarks page
// @Description Saved articles of the session
// @Tags bookmarks
// @Produce json
// @Success 200 {object} page.Bookmarks
// @Router /bookmarks [get]
func (r *PageRouter) bookmarksHandler(c echo.Context) error {
	ctx := c.Request().Context()

	store, err := r.sessions.For(ctx, sessionID(c))
	if err != nil {
		return err
	}
	bookmarks, err := r.composer.Bookmarks(ctx, store)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookmarks)
}

// addBookmarkHandler godoc
// @Summary Add bookmark
// @Description Saves an article for the session; saving it again changes nothing
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param request body addBookmarkRequest true "Article to save"
// @Success 201 {object} domain.Bookmark
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /bookmarks [post]
func (r *PageRouter) addBookmarkHandler(c echo.Context) error {
	var req addBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid bookmark request", err)
	}
	req.Slug = strings.TrimSpace(req.Slug)
	if req.Slug == "" {
		return apperr.NewValidationFields("invalid bookmark request", map[string]string{"slug": "is required"})
	}

	ctx := c.Request().Context()
	article, err := r.composer.Article(ctx, req.Slug)
	if err != nil {
		return err
	}

	store, err := r.sessions.For(ctx, sessionID(c))
	if err != nil {
		return err
	}
	b, err := store.Add(ctx, article.Article)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, b)
}

// removeBookmarkHandler godoc
// @Summary Remove bookmark
// @Description Removes one bookmark; removing a missing id is a no-op
// @Tags bookmarks
// @Produce json
// @Param id path int true "Article id"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]any
// @Router /bookmarks/{id} [delete]
func (r *PageRouter) removeBookmarkHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return apperr.NewValidationFields("invalid bookmark id", map[string]string{"id": "must be a positive integer"})
	}

	ctx := c.Request().Context()
	store, err := r.sessions.For(ctx, sessionID(c))
	if err != nil {
		return err
	}
	removed, err := store.Remove(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"removed": removed})
}


// clearBookmarksHandler godoc
// @Summary Clear bookmarks
// @Description Removes every bookmark of the session
// @Tags bookmarks
// @Param confirm query bool true "Must be true"
// @Success 204
// @Failure 400 {object} map[string]any
// @Router /bookmarks [delete]
func (r *PageRouter) clearBookmarksHandler(c echo.Context) error {
	if c.QueryParam("confirm") != "true" {
		return apperr.NewValidationFields("clearing bookmarks requires confirmation", map[string]string{"confirm": "must be true"})
	}

	ctx := c.Request().Context()
	store, err := r.sessions.For(ctx, sessionID(c))
	if err != nil {
		return err
	}
	if err := store.Clear(ctx); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
