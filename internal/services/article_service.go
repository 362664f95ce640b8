package services

import (
	"errors"
	"fmt"

	"github.com/vidyapath/planner-api/internal/models"
	"github.com/vidyapath/planner-api/internal/repository"
)

var (
	ErrArticleTitleRequired   = errors.New("title is required")
	ErrArticleContentRequired = errors.New("content is required")
)

// ArticleService handles peer article business logic
type ArticleService struct {
	articleRepo repository.ArticleRepository
}

// NewArticleService creates a new ArticleService
func NewArticleService(articleRepo repository.ArticleRepository) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
	}
}

// CreateArticle validates and stores an article. A blank author byline is
// published as "Anonymous".
func (s *ArticleService) CreateArticle(title, content, author string) (*models.Article, error) {
	if title == "" {
		return nil, ErrArticleTitleRequired
	}
	if content == "" {
		return nil, ErrArticleContentRequired
	}
	if author == "" {
		author = "Anonymous"
	}

	article := &models.Article{
		Title:   title,
		Content: content,
		Author:  author,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	return article, nil
}

// ListArticles returns every article, newest first.
func (s *ArticleService) ListArticles() ([]models.Article, error) {
	articles, err := s.articleRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}
