package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"fluffyrudy-blog-api/handlers"
	"fluffyrudy-blog-api/middleware"
	"fluffyrudy-blog-api/models"
	"fluffyrudy-blog-api/repositories"
	"fluffyrudy-blog-api/services"
)

const testAPIKey = "test-secret"

type IntegrationTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *IntegrationTestSuite) SetupSuite() {
	os.Setenv("BLOG_API_KEY", testAPIKey)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		suite.T().Fatal("Failed to open test database:", err)
	}

	// One connection so every query sees the same in-memory database.
	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Post{}, &models.Tag{}); err != nil {
		suite.T().Fatal("Failed to migrate test database:", err)
	}

	suite.db = db
	suite.setupRouter()
}

func (suite *IntegrationTestSuite) setupRouter() {
	gin.SetMode(gin.TestMode)

	// Initialize repositories
	postRepo := repositories.NewPostRepository(suite.db)
	tagRepo := repositories.NewTagRepository(suite.db)

	// Initialize services
	postService := services.NewPostService(postRepo)
	tagService := services.NewTagService(tagRepo)
	statsService := services.NewStatsService(postRepo, tagRepo)

	// Initialize handlers
	postHandler := handlers.NewPostHandler(postService)
	tagHandler := handlers.NewTagHandler(tagService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Setup router
	router := gin.New()
	router.Use(middleware.CORS("self"))
	router.Use(middleware.APIKeyAuth())

	router.POST("/post", postHandler.CreatePost)
	posts := router.Group("/posts")
	{
		posts.GET("", postHandler.GetPosts)
		posts.GET("/:id", postHandler.GetPost)
		posts.GET("/slug/:slug", postHandler.GetPostBySlug)
		posts.PUT("/:id", postHandler.UpdatePost)
		posts.DELETE("/:id", postHandler.DeletePost)
	}

	tags := router.Group("/tags")
	{
		tags.GET("", tagHandler.GetTags)
		tags.POST("", tagHandler.CreateTag)
		tags.PUT("/:id", tagHandler.RenameTag)
		tags.DELETE("/:id", tagHandler.DeleteTag)
	}

	router.GET("/stats", statsHandler.GetStats)

	suite.router = router
}

func (suite *IntegrationTestSuite) SetupTest() {
	// Clean all tables before each test
	suite.db.Exec("DELETE FROM post_tags")
	suite.db.Exec("DELETE FROM posts")
	suite.db.Exec("DELETE FROM tags")
}

func (suite *IntegrationTestSuite) request(method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		suite.Require().NoError(err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", testAPIKey)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) createPost(req models.PostCreateRequest) models.Post {
	w := suite.request("POST", "/post", req)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var post models.Post
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &post))
	return post
}

func (suite *IntegrationTestSuite) getTags() []models.Tag {
	w := suite.request("GET", "/tags", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var tags []models.Tag
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &tags))
	return tags
}

func (suite *IntegrationTestSuite) TestPostLifecycle() {
	post := suite.createPost(models.PostCreateRequest{
		Title:   "My First Post!!",
		Content: "Hello from the blog.",
		Status:  models.StatusPublished,
		Tags:    []string{"web-dev", "new"},
	})

	suite.Equal("My-First-Post", post.Slug)
	suite.Len(post.Tags, 2)

	// Fetch by ID and by slug
	w := suite.request("GET", fmt.Sprintf("/posts/%d", post.ID), nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request("GET", "/posts/slug/My-First-Post", nil)
	suite.Equal(http.StatusOK, w.Code)

	var bySlug models.Post
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &bySlug))
	suite.Equal(post.ID, bySlug.ID)

	// Update replaces the tag set and regenerates the slug
	w = suite.request("PUT", fmt.Sprintf("/posts/%d", post.ID), models.PostCreateRequest{
		Title:  "Renamed Post",
		Status: models.StatusPublished,
		Tags:   []string{"web-dev"},
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var updated models.Post
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.Equal("Renamed-Post", updated.Slug)
	suite.Len(updated.Tags, 1)

	// Delete
	w = suite.request("DELETE", fmt.Sprintf("/posts/%d", post.ID), nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request("GET", fmt.Sprintf("/posts/%d", post.ID), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestTagCountsFollowPosts() {
	post := suite.createPost(models.PostCreateRequest{
		Title: "Counted Post",
		Tags:  []string{"web-dev", "new"},
	})

	counts := map[string]int64{}
	for _, tag := range suite.getTags() {
		counts[tag.Name] = tag.PostCount
	}
	suite.Equal(int64(1), counts["web-dev"])
	suite.Equal(int64(1), counts["new"])

	w := suite.request("DELETE", fmt.Sprintf("/posts/%d", post.ID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	// Tags survive the post, with counts back at zero
	for _, tag := range suite.getTags() {
		suite.Zero(tag.PostCount)

		w = suite.request("DELETE", fmt.Sprintf("/tags/%d", tag.ID), nil)
		suite.Equal(http.StatusOK, w.Code)
	}

	suite.Empty(suite.getTags())
}

func (suite *IntegrationTestSuite) TestDeleteTagInUse() {
	suite.createPost(models.PostCreateRequest{Title: "Holder One", Tags: []string{"sticky"}})
	suite.createPost(models.PostCreateRequest{Title: "Holder Two", Tags: []string{"sticky"}})

	tags := suite.getTags()
	suite.Require().Len(tags, 1)

	w := suite.request("DELETE", fmt.Sprintf("/tags/%d", tags[0].ID), nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	var resp struct {
		Error     string `json:"error"`
		PostCount int64  `json:"postCount"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(2), resp.PostCount)
	suite.NotEmpty(resp.Error)
}

func (suite *IntegrationTestSuite) TestDuplicateTitleConflict() {
	suite.createPost(models.PostCreateRequest{Title: "Unique Title"})

	w := suite.request("POST", "/post", models.PostCreateRequest{Title: "Unique Title"})
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *IntegrationTestSuite) TestInvalidTagsRejected() {
	w := suite.request("POST", "/post", models.PostCreateRequest{
		Title: "Badly Tagged",
		Tags:  []string{"golang", "123"},
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	var resp struct {
		Error   string   `json:"error"`
		Invalid []string `json:"invalid"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal([]string{"123"}, resp.Invalid)
}

func (suite *IntegrationTestSuite) TestListPagination() {
	for i := 1; i <= 5; i++ {
		suite.createPost(models.PostCreateRequest{
			Title:  fmt.Sprintf("Paged Post %d", i),
			Status: models.StatusPublished,
		})
	}

	w := suite.request("GET", "/posts?status=PUBLISHED&limit=2&offset=0", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var page models.PostListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page))

	suite.Len(page.Posts, 2)
	suite.Equal(int64(5), page.Pagination.Total)
	suite.True(page.Pagination.HasMore)

	w = suite.request("GET", "/posts?status=PUBLISHED&limit=2&offset=4", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page))
	suite.Len(page.Posts, 1)
	suite.False(page.Pagination.HasMore)
}

func (suite *IntegrationTestSuite) TestStats() {
	suite.createPost(models.PostCreateRequest{Title: "Live", Status: models.StatusPublished, Tags: []string{"golang"}})
	suite.createPost(models.PostCreateRequest{Title: "Pending", Tags: []string{"golang", "notes"}})

	w := suite.request("GET", "/stats", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var stats models.StatsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &stats))

	suite.Equal(int64(2), stats.TotalPosts)
	suite.Equal(int64(1), stats.PublishedPosts)
	suite.Equal(int64(1), stats.DraftPosts)
	suite.Equal(int64(2), stats.TotalTags)
}

func (suite *IntegrationTestSuite) TestMutationsRequireAPIKey() {
	payload, _ := json.Marshal(models.PostCreateRequest{Title: "Locked Out"})
	req := httptest.NewRequest("POST", "/post", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)

	// Wrong key is rejected too
	req = httptest.NewRequest("POST", "/post", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", "wrong")

	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)

	// Reads stay open
	req = httptest.NewRequest("GET", "/posts", nil)
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *IntegrationTestSuite) TestCORSPreflight() {
	req := httptest.NewRequest("OPTIONS", "/posts", nil)
	req.Header.Set("Origin", "http://"+req.Host)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Equal("http://"+req.Host, w.Header().Get("Access-Control-Allow-Origin"))
	suite.Contains(w.Header().Get("Access-Control-Allow-Headers"), "api-key")
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}
