package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/vidyapath/planner-api/internal/models"
	"github.com/vidyapath/planner-api/internal/repository"
	"github.com/vidyapath/planner-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ArticleHandlerTestSuite defines the test suite for ArticleHandler
type ArticleHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *ArticleHandler
}

// SetupTest runs before each test
func (suite *ArticleHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.Article{})
	suite.Require().NoError(err)

	articleRepo := repository.NewArticleRepository(suite.db)
	suite.handler = NewArticleHandler(services.NewArticleService(articleRepo))

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *ArticleHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ArticleHandlerTestSuite) postArticle(payload map[string]any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/articles", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	suite.handler.CreateArticle(c)
	return w
}

func (suite *ArticleHandlerTestSuite) TestCreateArticle_DefaultsAuthor() {
	w := suite.postArticle(map[string]any{
		"title":   "Spaced repetition that sticks",
		"content": "Review on day 1, 3, 7.",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var article models.Article
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &article))
	assert.NotZero(suite.T(), article.ID)
	assert.Equal(suite.T(), "Anonymous", article.Author)
	assert.Zero(suite.T(), article.Upvotes)
	assert.Zero(suite.T(), article.Comments)
}

func (suite *ArticleHandlerTestSuite) TestCreateArticle_KeepsByline() {
	w := suite.postArticle(map[string]any{
		"title":   "Pomodoro for labs",
		"content": "Split write-ups into 25 minute blocks.",
		"author":  "Priya",
	})

	var article models.Article
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &article))
	assert.Equal(suite.T(), "Priya", article.Author)
}

func (suite *ArticleHandlerTestSuite) TestCreateArticle_RequiredFields() {
	w := suite.postArticle(map[string]any{"content": "body only"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.postArticle(map[string]any{"title": "title only"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ArticleHandlerTestSuite) TestListArticles_NewestFirst() {
	older := &models.Article{Title: "Old", Content: "c", Author: "A", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &models.Article{Title: "New", Content: "c", Author: "A", CreatedAt: time.Now()}
	suite.db.Create(older)
	suite.db.Create(newer)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/articles", nil)
	suite.handler.ListArticles(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var articles []models.Article
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &articles))
	suite.Require().Len(articles, 2)
	assert.Equal(suite.T(), "New", articles[0].Title)
	assert.Equal(suite.T(), "Old", articles[1].Title)
}

func TestArticleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleHandlerTestSuite))
}
