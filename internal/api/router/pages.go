package router

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/brainfeed/internal/apperr"
	"github.com/DjordjeVuckovic/brainfeed/internal/bookmark"
	"github.com/DjordjeVuckovic/brainfeed/internal/page"
	"github.com/DjordjeVuckovic/brainfeed/pkg/pagination"
)

// Refresher drops cached content so the next request loads it again.
type Refresher interface {
	Refresh()
}

type PageRouter struct {
	e         *echo.Echo
	composer  *page.Composer
	sessions  *bookmark.Sessions
	refresher Refresher
}

type PageRouterOption func(*PageRouter)

func WithRefresher(r Refresher) PageRouterOption {
	return func(pr *PageRouter) {
		pr.refresher = r
	}
}

func NewPageRouter(e *echo.Echo, composer *page.Composer, sessions *bookmark.Sessions, opts ...PageRouterOption) *PageRouter {
	r := &PageRouter{
		e:        e,
		composer: composer,
		sessions: sessions,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *PageRouter) Bind() {
	r.e.GET("/", r.homeHandler)
	r.e.GET("/blog", r.blogHandler)
	r.e.GET("/category/:slug", r.categoryHandler)
	r.e.GET("/search", r.searchHandler)
	r.e.GET("/article/:slug", r.articleHandler)

	r.e.GET("/bookmarks", r.bookmarksHandler)
	r.e.POST("/bookmarks", r.addBookmarkHandler)
	r.e.DELETE("/bookmarks/:id", r.removeBookmarkHandler)
	r.e.DELETE("/bookmarks", r.clearBookmarksHandler)

	if r.refresher != nil {
		r.e.POST("/cache/refresh", r.refreshHandler)
	}
}

// homeHandler godoc
// @Summary Home page
// @Description Hero, featured, latest and popular articles with category navigation
// @Tags pages
// @Produce json
// @Success 200 {object} page.Home
// @Router / [get]
func (r *PageRouter) homeHandler(c echo.Context) error {
	home, err := r.composer.Home(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, home)
}


// blogHandler godoc
// @Summary Blog page
// @Description Every article with the popular sidebar; paged when page or size is given
// @Tags pages
// @Produce json
// @Param page query int false "Page number, at most 10000"
// @Param size query int false "Page size, at most 100"
// @Success 200 {object} page.Blog
// @Failure 400 {object} map[string]any
// @Router /blog [get]
func (r *PageRouter) blogHandler(c echo.Context) error {
	var req *pagination.OffsetRequest
	if c.QueryParam("page") != "" || c.QueryParam("size") != "" {
		req = &pagination.OffsetRequest{}
		if err := (&echo.DefaultBinder{}).BindQueryParams(c, req); err != nil {
			return apperr.NewValidationFields("invalid pagination", map[string]string{"page": "must be an integer", "size": "must be an integer"})
		}
		if err := req.Validate(); err != nil {
			return apperr.NewValidationFields("invalid pagination", map[string]string{"page": fmt.Sprintf("must be at most %d", pagination.PageMaxNumber)})
		}
	}

	blog, err := r.composer.Blog(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blog)
}

// categoryHandler godoc
// @Summary Category page
// @Description Articles of one category; all lists every article
// @Tags pages
// @Produce json
// @Param slug path string true "Category slug or all"
// @Success 200 {object} page.Category
// @Router /category/{slug} [get]
func (r *PageRouter) categoryHandler(c echo.Context) error {
	category, err := r.composer.Category(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// searchHandler godoc
// @Summary Search page
// @Description Articles whose title or excerpt contains q
// @Tags pages
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} page.Search
// @Failure 400 {object} map[string]any
// @Router /search [get]
func (r *PageRouter) searchHandler(c echo.Context) error {
	results, err := r.composer.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, results)
}

// articleHandler godoc
// @Summary Article page
// @Description One article with its body rendered to sanitized HTML
// @Tags pages
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} page.Article
// @Failure 404 {object} map[string]any
// @Router /article/{slug} [get]
func (r *PageRouter) articleHandler(c echo.Context) error {
	ctx := c.Request().Context()

	article, err := r.composer.Article(ctx, c.Param("slug"))
	if err != nil {
		return err
	}

	store, err := r.sessions.For(ctx, sessionID(c))
	if err != nil {
		return err
	}
	article.Bookmarked = store.Has(article.Article.ID)
	return c.JSON(http.StatusOK, article)
}

// refreshHandler godoc
// @Summary Refresh content cache
// @Description Drops cached content so the next request loads it again
// @Tags cache
// @Success 204
// @Router /cache/refresh [post]
func (r *PageRouter) refreshHandler(c echo.Context) error {
	r.refresher.Refresh()
	return c.NoContent(http.StatusNoContent)
}
