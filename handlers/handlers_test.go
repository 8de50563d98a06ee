package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"warbler/handlers"
	"warbler/models"
	"warbler/repositories"
	"warbler/routes"
)

// testApp bundles a wired router with the user repository so tests can
// both drive HTTP endpoints and inspect state underneath them.
type testApp struct {
	router http.Handler
	users  repositories.UserRepository
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Message{}, &models.Follow{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	followRepo := repositories.NewFollowRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	feedRepo := repositories.NewFeedRepository(db)

	store := handlers.NewSessionStore()

	router := routes.SetupRoutes(
		handlers.NewUserHandler(userRepo, store),
		handlers.NewMessageHandler(messageRepo, feedRepo, userRepo, store),
		handlers.NewFollowHandler(followRepo, userRepo, store),
	)

	return &testApp{router: router, users: userRepo}
}

// performForm sends a form-encoded request through the router, attaching
// the session cookie when one is given.
func (app *testApp) performForm(method, path string, form url.Values, session *http.Cookie) *httptest.ResponseRecorder {
	var body string
	if form != nil {
		body = form.Encode()
	}

	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if session != nil {
		req.AddCookie(session)
	}

	rr := httptest.NewRecorder()
	app.router.ServeHTTP(rr, req)
	return rr
}

func (app *testApp) performGet(path string, session *http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	if session != nil {
		req.AddCookie(session)
	}

	rr := httptest.NewRecorder()
	app.router.ServeHTTP(rr, req)
	return rr
}

func (app *testApp) registerUser(username, password, password2, email string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Add("username", username)
	form.Add("password", password)
	form.Add("password2", password2)
	form.Add("email", email)
	return app.performForm("POST", "/register", form, nil)
}

func (app *testApp) loginUser(username, password string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Add("username", username)
	form.Add("password", password)
	return app.performForm("POST", "/login", form, nil)
}

// signupAndLogin registers a user, logs in, and returns the session cookie
// the server handed back.
func (app *testApp) signupAndLogin(t *testing.T, username, email string) *http.Cookie {
	t.Helper()

	if resp := app.registerUser(username, "password123", "password123", email); resp.Code != http.StatusFound {
		t.Fatalf("Failed to register %q: status %d, body %s", username, resp.Code, resp.Body.String())
	}

	resp := app.loginUser(username, "password123")
	if resp.Code != http.StatusFound {
		t.Fatalf("Failed to log in %q: status %d, body %s", username, resp.Code, resp.Body.String())
	}

	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == handlers.SessionName {
			return cookie
		}
	}

	t.Fatal("Session cookie not found in login response")
	return nil
}
