package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/vidyapath/planner-api/internal/errors"
	"github.com/vidyapath/planner-api/internal/services"
)

// ArticleHandler serves the public peer article feed.
type ArticleHandler struct {
	articleService *services.ArticleService
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articleService *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// ListArticles returns every article, newest first.
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	articles, err := h.articleService.ListArticles()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, articles)
}

// CreateArticle publishes a new article.
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	type CreateArticleRequest struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Author  string `json:"author"`
	}

	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	article, err := h.articleService.CreateArticle(req.Title, req.Content, req.Author)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrArticleTitleRequired),
			errors.Is(err, services.ErrArticleContentRequired):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, article)
}
