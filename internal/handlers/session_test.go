package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/vidyapath/planner-api/internal/constants"
	"github.com/vidyapath/planner-api/internal/models"
	"github.com/vidyapath/planner-api/internal/repository"
	"github.com/vidyapath/planner-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SessionHandlerTestSuite defines the test suite for SessionHandler
type SessionHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *SessionHandler
}

func (suite *SessionHandlerTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{}, &models.StudySession{})
	suite.Require().NoError(err)

	suite.handler = NewSessionHandler(services.NewStatsService(repository.NewStudySessionRepository(suite.db)))

	gin.SetMode(gin.TestMode)
}

func (suite *SessionHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *SessionHandlerTestSuite) saveSession(userID uint64, payload map[string]any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/timer/save", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(constants.ContextKeyUserID, userID)
	suite.handler.SaveSession(c)
	return w
}

func (suite *SessionHandlerTestSuite) TestSaveSession_Success() {
	w := suite.saveSession(1, map[string]any{"duration": 25})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var session models.StudySession
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &session))
	assert.NotZero(suite.T(), session.ID)
	assert.Equal(suite.T(), 25, session.Duration)
	assert.False(suite.T(), session.CompletedAt.IsZero())
}

func (suite *SessionHandlerTestSuite) TestSaveSession_InvalidDuration() {
	w := suite.saveSession(1, map[string]any{"duration": 0})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.saveSession(1, map[string]any{"duration": -5})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *SessionHandlerTestSuite) TestListSessions_MostRecentFirst() {
	suite.saveSession(1, map[string]any{"duration": 25})
	suite.saveSession(1, map[string]any{"duration": 50})
	suite.saveSession(2, map[string]any{"duration": 10})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/timer/sessions", nil)
	c.Set(constants.ContextKeyUserID, uint64(1))
	suite.handler.ListSessions(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var sessions []models.StudySession
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &sessions))
	assert.Len(suite.T(), sessions, 2)
}

func TestSessionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}
