package repository

import (
	"github.com/vidyapath/planner-api/internal/models"
	"gorm.io/gorm"
)

// GormArticleRepository is a GORM implementation of ArticleRepository
type GormArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &GormArticleRepository{db: db}
}

// Create stores a new article
func (r *GormArticleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

// ListAll returns every article, newest first
func (r *GormArticleRepository) ListAll() ([]models.Article, error) {
	var articles []models.Article
	if err := r.db.Order("created_at DESC").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}
