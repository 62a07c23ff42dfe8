package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"reviewdb/config"
	"reviewdb/handlers"
	"reviewdb/helper"
	"reviewdb/middleware"
	"reviewdb/models"
	"reviewdb/policy"
	"reviewdb/repositories"
	"reviewdb/services"
)

const testSecret = "test-secret"

// captureMailer records the confirmation codes instead of sending mail, so
// the signup/token flow can be driven end to end.
type captureMailer struct {
	codes map[string]string
}

func (m *captureMailer) SendConfirmationCode(toEmail, username, code string) error {
	m.codes[username] = code
	return nil
}

type IntegrationTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	mailer *captureMailer
}

func (suite *IntegrationTestSuite) SetupSuite() {
	os.Setenv("DB_HOST", "localhost")
	os.Setenv("DB_PORT", "5432")
	os.Setenv("DB_USER", "myuser")
	os.Setenv("DB_PASSWORD", "mypassword")
	os.Setenv("DB_NAME", "reviewdb_test")
	os.Setenv("JWT_SECRET", testSecret)

	dsn := "host=localhost port=5432 user=myuser password=mypassword dbname=reviewdb_test sslmode=disable"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		suite.T().Fatal("Failed to connect to test database:", err)
	}

	suite.db = db

	if err := RunSQLFile(db, "../migration/init.sql"); err != nil {
		log.Fatal("Failed to run migration:", err)
	}

	suite.setupRouter()
}

func (suite *IntegrationTestSuite) setupRouter() {
	gin.SetMode(gin.TestMode)

	security := &config.SecurityConfig{
		JWTSecret:         testSecret,
		TokenTTL:          time.Hour,
		MaxUsernameLength: 150,
		CodeLength:        32,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.mailer = &captureMailer{codes: map[string]string{}}

	userRepo := repositories.NewUserRepository(suite.db)
	categoryRepo := repositories.NewCategoryRepository(suite.db)
	genreRepo := repositories.NewGenreRepository(suite.db)
	titleRepo := repositories.NewTitleRepository(suite.db)
	reviewRepo := repositories.NewReviewRepository(suite.db)
	commentRepo := repositories.NewCommentRepository(suite.db)

	authService := services.NewAuthService(userRepo, suite.mailer, security, logger)
	userService := services.NewUserService(userRepo, security)
	categoryService := services.NewCategoryService(categoryRepo)
	genreService := services.NewGenreService(genreRepo)
	titleService := services.NewTitleService(titleRepo, categoryRepo, genreRepo)
	reviewService := services.NewReviewService(reviewRepo, titleRepo)
	commentService := services.NewCommentService(commentRepo, reviewRepo)

	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	userHandler := handlers.NewUserHandler(userService, httpHelper)
	categoryHandler := handlers.NewCategoryHandler(categoryService, httpHelper)
	genreHandler := handlers.NewGenreHandler(genreService, httpHelper)
	titleHandler := handlers.NewTitleHandler(titleService, httpHelper)
	reviewHandler := handlers.NewReviewHandler(reviewService, httpHelper)
	commentHandler := handlers.NewCommentHandler(commentService, httpHelper)

	requireAuth := middleware.RequireAuth(testSecret)
	manageCatalog := middleware.RequireOperation(policy.OpManageCatalog)
	manageUsers := middleware.RequireOperation(policy.OpManageUsers)
	writeContent := middleware.RequireOperation(policy.OpWriteContent)

	router := gin.New()

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/token", authHandler.Token)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.POST("", requireAuth, manageCatalog, categoryHandler.CreateCategory)
			categories.DELETE("/:slug", requireAuth, manageCatalog, categoryHandler.DeleteCategory)
		}

		genres := v1.Group("/genres")
		{
			genres.GET("", genreHandler.GetGenres)
			genres.POST("", requireAuth, manageCatalog, genreHandler.CreateGenre)
			genres.DELETE("/:slug", requireAuth, manageCatalog, genreHandler.DeleteGenre)
		}

		titles := v1.Group("/titles")
		{
			titles.GET("", titleHandler.GetTitles)
			titles.GET("/:id", titleHandler.GetTitle)
			titles.POST("", requireAuth, manageCatalog, titleHandler.CreateTitle)
			titles.PATCH("/:id", requireAuth, manageCatalog, titleHandler.UpdateTitle)
			titles.DELETE("/:id", requireAuth, manageCatalog, titleHandler.DeleteTitle)

			titles.GET("/:id/reviews", reviewHandler.GetReviews)
			titles.GET("/:id/reviews/:review_id", reviewHandler.GetReview)
			titles.POST("/:id/reviews", requireAuth, writeContent, reviewHandler.CreateReview)
			titles.PATCH("/:id/reviews/:review_id", requireAuth, writeContent, reviewHandler.UpdateReview)
			titles.DELETE("/:id/reviews/:review_id", requireAuth, writeContent, reviewHandler.DeleteReview)

			titles.GET("/:id/reviews/:review_id/comments", commentHandler.GetComments)
			titles.GET("/:id/reviews/:review_id/comments/:comment_id", commentHandler.GetComment)
			titles.POST("/:id/reviews/:review_id/comments", requireAuth, writeContent, commentHandler.CreateComment)
			titles.PATCH("/:id/reviews/:review_id/comments/:comment_id", requireAuth, writeContent, commentHandler.UpdateComment)
			titles.DELETE("/:id/reviews/:review_id/comments/:comment_id", requireAuth, writeContent, commentHandler.DeleteComment)
		}

		users := v1.Group("/users", requireAuth)
		{
			users.GET("/me", userHandler.GetMe)
			users.PATCH("/me", userHandler.UpdateMe)

			users.GET("", manageUsers, userHandler.GetUsers)
			users.POST("", manageUsers, userHandler.CreateUser)
			users.GET("/:username", manageUsers, userHandler.GetUser)
			users.PATCH("/:username", manageUsers, userHandler.UpdateUser)
			users.DELETE("/:username", manageUsers, userHandler.DeleteUser)
		}
	}

	suite.router = router
}

func (suite *IntegrationTestSuite) TearDownSuite() {
	suite.db.Exec("DROP TABLE IF EXISTS comments")
	suite.db.Exec("DROP TABLE IF EXISTS reviews")
	suite.db.Exec("DROP TABLE IF EXISTS genre_titles")
	suite.db.Exec("DROP TABLE IF EXISTS titles")
	suite.db.Exec("DROP TABLE IF EXISTS genres")
	suite.db.Exec("DROP TABLE IF EXISTS categories")
	suite.db.Exec("DROP TABLE IF EXISTS users")
}

func (suite *IntegrationTestSuite) SetupTest() {
	suite.db.Exec("TRUNCATE TABLE comments RESTART IDENTITY CASCADE")
	suite.db.Exec("TRUNCATE TABLE reviews RESTART IDENTITY CASCADE")
	suite.db.Exec("TRUNCATE TABLE genre_titles RESTART IDENTITY CASCADE")
	suite.db.Exec("TRUNCATE TABLE titles RESTART IDENTITY CASCADE")
	suite.db.Exec("TRUNCATE TABLE genres RESTART IDENTITY CASCADE")
	suite.db.Exec("TRUNCATE TABLE categories RESTART IDENTITY CASCADE")
	suite.db.Exec("TRUNCATE TABLE users RESTART IDENTITY CASCADE")
}

// seedUser inserts a user row directly and mints a bearer token for it,
// sidestepping the email loop for role fixtures.
func (suite *IntegrationTestSuite) seedUser(username string, role models.UserRole) (models.User, string) {
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
	}
	suite.NoError(suite.db.Create(&user).Error)

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":      user.ID,
		"username":     user.Username,
		"role":         user.Role,
		"is_superuser": user.IsSuperuser,
		"exp":          now.Add(time.Hour).Unix(),
		"iat":          now.Unix(),
		"nbf":          now.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	suite.NoError(err)

	return user, token
}

func (suite *IntegrationTestSuite) do(method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		suite.NoError(err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) seedTitle(token, name string, year int) uint {
	w := suite.do("POST", "/api/v1/titles", token, gin.H{"name": name, "year": year})
	suite.Equal(http.StatusCreated, w.Code)

	var title models.Title
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &title))
	return title.ID
}

func (suite *IntegrationTestSuite) TestSignupAndTokenFlow() {
	w := suite.do("POST", "/api/v1/auth/signup", "", gin.H{
		"username": "newcomer",
		"email":    "newcomer@example.com",
	})
	suite.Equal(http.StatusOK, w.Code)

	var signupResp models.SignupResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &signupResp))
	suite.Equal("newcomer", signupResp.Username)
	suite.Equal("newcomer@example.com", signupResp.Email)

	code := suite.mailer.codes["newcomer"]
	suite.NotEmpty(code)

	w = suite.do("POST", "/api/v1/auth/token", "", gin.H{
		"username":          "newcomer",
		"confirmation_code": code,
	})
	suite.Equal(http.StatusOK, w.Code)

	var tokenResp models.TokenResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &tokenResp))
	suite.NotEmpty(tokenResp.Token)

	w = suite.do("GET", "/api/v1/users/me", tokenResp.Token, nil)
	suite.Equal(http.StatusOK, w.Code)

	var me models.UserResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &me))
	suite.Equal("newcomer", me.Username)
	suite.Equal(models.RoleUser, me.Role)
}

func (suite *IntegrationTestSuite) TestTokenErrorStatuses() {
	w := suite.do("POST", "/api/v1/auth/signup", "", gin.H{
		"username": "newcomer",
		"email":    "newcomer@example.com",
	})
	suite.Equal(http.StatusOK, w.Code)

	// Missing confirmation code and unknown username both come back 404.
	w = suite.do("POST", "/api/v1/auth/token", "", gin.H{"username": "newcomer"})
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do("POST", "/api/v1/auth/token", "", gin.H{
		"username":          "ghost",
		"confirmation_code": "anything",
	})
	suite.Equal(http.StatusNotFound, w.Code)

	// A wrong code for a known user is a 400.
	w = suite.do("POST", "/api/v1/auth/token", "", gin.H{
		"username":          "newcomer",
		"confirmation_code": "deadbeefdeadbeefdeadbeefdeadbeef",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *IntegrationTestSuite) TestSignupEmailMismatch() {
	w := suite.do("POST", "/api/v1/auth/signup", "", gin.H{
		"username": "newcomer",
		"email":    "newcomer@example.com",
	})
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do("POST", "/api/v1/auth/signup", "", gin.H{
		"username": "newcomer",
		"email":    "someone-else@example.com",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *IntegrationTestSuite) TestCategoryPermissions() {
	_, userToken := suite.seedUser("plainuser", models.RoleUser)
	_, adminToken := suite.seedUser("boss", models.RoleAdmin)

	// Reads are open to everyone.
	w := suite.do("GET", "/api/v1/categories", "", nil)
	suite.Equal(http.StatusOK, w.Code)

	payload := gin.H{"name": "Movies", "slug": "movies"}

	w = suite.do("POST", "/api/v1/categories", "", payload)
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do("POST", "/api/v1/categories", userToken, payload)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do("POST", "/api/v1/categories", adminToken, payload)
	suite.Equal(http.StatusCreated, w.Code)

	// Slug reuse is rejected.
	w = suite.do("POST", "/api/v1/categories", adminToken, gin.H{"name": "Films", "slug": "movies"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do("DELETE", "/api/v1/categories/movies", adminToken, nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do("DELETE", "/api/v1/categories/movies", adminToken, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestSuperuserOverridesRole() {
	super, _ := suite.seedUser("root", models.RoleUser)
	suite.NoError(suite.db.Model(&super).Update("is_superuser", true).Error)

	// Re-mint with the superuser flag set.
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":      super.ID,
		"username":     super.Username,
		"role":         models.RoleUser,
		"is_superuser": true,
		"exp":          now.Add(time.Hour).Unix(),
		"iat":          now.Unix(),
		"nbf":          now.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	suite.NoError(err)

	w := suite.do("POST", "/api/v1/genres", token, gin.H{"name": "Noir", "slug": "noir"})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do("GET", "/api/v1/users", token, nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *IntegrationTestSuite) TestProfileRoleImmutable() {
	_, userToken := suite.seedUser("climber", models.RoleUser)

	w := suite.do("PATCH", "/api/v1/users/me", userToken, gin.H{
		"bio":  "harmless bio edit",
		"role": "admin",
	})
	suite.Equal(http.StatusOK, w.Code)

	var me models.UserResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &me))
	suite.Equal("harmless bio edit", me.Bio)
	suite.Equal(models.RoleUser, me.Role)

	var stored models.User
	suite.NoError(suite.db.Where("username = ?", "climber").First(&stored).Error)
	suite.Equal(models.RoleUser, stored.Role)
}

func (suite *IntegrationTestSuite) TestProfileEmailValidated() {
	_, adminToken := suite.seedUser("boss", models.RoleAdmin)
	_, userToken := suite.seedUser("typo", models.RoleUser)

	w := suite.do("PATCH", "/api/v1/users/me", userToken, gin.H{"email": "not-an-address"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do("PATCH", "/api/v1/users/typo", adminToken, gin.H{"email": "also not one"})
	suite.Equal(http.StatusBadRequest, w.Code)

	// The bad payloads must not have touched the row.
	var stored models.User
	suite.NoError(suite.db.Where("username = ?", "typo").First(&stored).Error)
	suite.Equal("typo@example.com", stored.Email)

	w = suite.do("PATCH", "/api/v1/users/me", userToken, gin.H{"email": "fixed@example.com"})
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *IntegrationTestSuite) TestRatingAggregation() {
	_, adminToken := suite.seedUser("boss", models.RoleAdmin)
	titleID := suite.seedTitle(adminToken, "Blade Runner", 1982)

	// No reviews yet: rating is null.
	w := suite.do("GET", fmt.Sprintf("/api/v1/titles/%d", titleID), "", nil)
	suite.Equal(http.StatusOK, w.Code)

	var title models.Title
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &title))
	suite.Nil(title.Rating)

	for i, score := range []int{8, 6, 10} {
		_, token := suite.seedUser(fmt.Sprintf("critic%d", i), models.RoleUser)
		w := suite.do("POST", fmt.Sprintf("/api/v1/titles/%d/reviews", titleID), token, gin.H{
			"text":  "review text",
			"score": score,
		})
		suite.Equal(http.StatusCreated, w.Code)
	}

	w = suite.do("GET", fmt.Sprintf("/api/v1/titles/%d", titleID), "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &title))
	suite.NotNil(title.Rating)
	suite.InDelta(8.0, *title.Rating, 0.0001)
}

func (suite *IntegrationTestSuite) TestDuplicateReviewRejected() {
	_, adminToken := suite.seedUser("boss", models.RoleAdmin)
	_, userToken := suite.seedUser("critic", models.RoleUser)
	titleID := suite.seedTitle(adminToken, "Alien", 1979)

	w := suite.do("POST", fmt.Sprintf("/api/v1/titles/%d/reviews", titleID), userToken, gin.H{
		"text":  "first take",
		"score": 9,
	})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do("POST", fmt.Sprintf("/api/v1/titles/%d/reviews", titleID), userToken, gin.H{
		"text":  "second take",
		"score": 4,
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *IntegrationTestSuite) TestValidationFailures() {
	_, adminToken := suite.seedUser("boss", models.RoleAdmin)
	_, userToken := suite.seedUser("critic", models.RoleUser)

	// Publication year cannot be in the future.
	w := suite.do("POST", "/api/v1/titles", adminToken, gin.H{
		"name": "From The Future",
		"year": time.Now().Year() + 1,
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	titleID := suite.seedTitle(adminToken, "Alien", 1979)

	w = suite.do("POST", fmt.Sprintf("/api/v1/titles/%d/reviews", titleID), userToken, gin.H{
		"text":  "over the top",
		"score": 11,
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *IntegrationTestSuite) TestModeratorDeletesForeignReview() {
	_, adminToken := suite.seedUser("boss", models.RoleAdmin)
	_, authorToken := suite.seedUser("critic", models.RoleUser)
	_, strangerToken := suite.seedUser("stranger", models.RoleUser)
	_, modToken := suite.seedUser("mod", models.RoleModerator)
	titleID := suite.seedTitle(adminToken, "Alien", 1979)

	w := suite.do("POST", fmt.Sprintf("/api/v1/titles/%d/reviews", titleID), authorToken, gin.H{
		"text":  "great",
		"score": 9,
	})
	suite.Equal(http.StatusCreated, w.Code)

	var review models.ReviewResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &review))
	suite.Equal("critic", review.Author)

	path := fmt.Sprintf("/api/v1/titles/%d/reviews/%d", titleID, review.ID)

	w = suite.do("DELETE", path, strangerToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do("DELETE", path, modToken, nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do("GET", path, "", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestReviewDeleteCascadesComments() {
	_, adminToken := suite.seedUser("boss", models.RoleAdmin)
	_, authorToken := suite.seedUser("critic", models.RoleUser)
	_, commenterToken := suite.seedUser("peanut", models.RoleUser)
	titleID := suite.seedTitle(adminToken, "Alien", 1979)

	w := suite.do("POST", fmt.Sprintf("/api/v1/titles/%d/reviews", titleID), authorToken, gin.H{
		"text":  "great",
		"score": 9,
	})
	suite.Equal(http.StatusCreated, w.Code)

	var review models.ReviewResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &review))

	w = suite.do("POST", fmt.Sprintf("/api/v1/titles/%d/reviews/%d/comments", titleID, review.ID), commenterToken, gin.H{
		"text": "agreed",
	})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do("DELETE", fmt.Sprintf("/api/v1/titles/%d/reviews/%d", titleID, review.ID), authorToken, nil)
	suite.Equal(http.StatusNoContent, w.Code)

	var count int64
	suite.NoError(suite.db.Model(&models.Comment{}).Where("review_id = ?", review.ID).Count(&count).Error)
	suite.Zero(count)
}

func (suite *IntegrationTestSuite) TestAdminUserManagement() {
	_, adminToken := suite.seedUser("boss", models.RoleAdmin)
	_, userToken := suite.seedUser("plainuser", models.RoleUser)

	w := suite.do("GET", "/api/v1/users", userToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do("POST", "/api/v1/users", adminToken, gin.H{
		"username": "handpicked",
		"email":    "handpicked@example.com",
		"role":     "moderator",
	})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do("GET", "/api/v1/users/handpicked", adminToken, nil)
	suite.Equal(http.StatusOK, w.Code)

	var fetched models.UserResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &fetched))
	suite.Equal(models.RoleModerator, fetched.Role)

	w = suite.do("PATCH", "/api/v1/users/handpicked", adminToken, gin.H{"role": "admin"})
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do("DELETE", "/api/v1/users/handpicked", adminToken, nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do("GET", "/api/v1/users/handpicked", adminToken, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestTitleFilters() {
	_, adminToken := suite.seedUser("boss", models.RoleAdmin)

	w := suite.do("POST", "/api/v1/categories", adminToken, gin.H{"name": "Movies", "slug": "movies"})
	suite.Equal(http.StatusCreated, w.Code)
	w = suite.do("POST", "/api/v1/genres", adminToken, gin.H{"name": "Sci-Fi", "slug": "sci-fi"})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do("POST", "/api/v1/titles", adminToken, gin.H{
		"name":     "Blade Runner",
		"year":     1982,
		"category": "movies",
		"genre":    []string{"sci-fi"},
	})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do("POST", "/api/v1/titles", adminToken, gin.H{"name": "Casablanca", "year": 1942})
	suite.Equal(http.StatusCreated, w.Code)

	type listResponse struct {
		Results []models.Title `json:"results"`
	}

	w = suite.do("GET", "/api/v1/titles?genre=sci-fi", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	var byGenre listResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &byGenre))
	suite.Len(byGenre.Results, 1)
	suite.Equal("Blade Runner", byGenre.Results[0].Name)

	w = suite.do("GET", "/api/v1/titles?year=1942", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	var byYear listResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &byYear))
	suite.Len(byYear.Results, 1)
	suite.Equal("Casablanca", byYear.Results[0].Name)

	// Unknown category slug on create is rejected.
	w = suite.do("POST", "/api/v1/titles", adminToken, gin.H{
		"name":     "Orphan",
		"year":     2000,
		"category": "no-such-slug",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func RunSQLFile(db *gorm.DB, filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}
	return db.Exec(string(content)).Error
}
