package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Akashnaii/Breadbox/internal/app/model"
	"github.com/Akashnaii/Breadbox/internal/app/repository"
	"github.com/Akashnaii/Breadbox/internal/app/service"
	"github.com/Akashnaii/Breadbox/internal/db"
	"github.com/Akashnaii/Breadbox/internal/mail"
	"github.com/Akashnaii/Breadbox/internal/middleware"
)

const testSecret = "test-jwt-secret"

// recordingNotifier remembers the last OTP per address so tests can
// complete the verification round trip.
type recordingNotifier struct {
	mu   sync.Mutex
	otps map[string]string
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{otps: make(map[string]string)}
}

func (n *recordingNotifier) SendOTP(to, name, code string, kind mail.OTPKind, role string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.otps[to] = code
}

func (n *recordingNotifier) SendProfileUpdated(to, name string, updatedFields map[string]string, role string) {
}
func (n *recordingNotifier) SendPasswordChanged(to, name, role string) {}
func (n *recordingNotifier) SendAccountDeleted(to, name, role string)  {}

func (n *recordingNotifier) OTPFor(email string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.otps[email]
}

type controllerFixture struct {
	router   *gin.Engine
	notifier *recordingNotifier

	userRepo       repository.UserRepository
	vendorRepo     repository.VendorRepository
	restaurantRepo repository.RestaurantRepository
	itemRepo       repository.ItemRepository
	packageRepo    repository.PackageRepository

	userAccounts   *service.AccountService[*model.User]
	vendorAccounts *service.AccountService[*model.Vendor]
}

func setupControllerTest(t *testing.T) *controllerFixture {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB(t)
	require.NoError(t, err)

	f := &controllerFixture{notifier: newRecordingNotifier()}
	f.userRepo = repository.NewUserRepository(testDB)
	f.vendorRepo = repository.NewVendorRepository(testDB)
	f.restaurantRepo = repository.NewRestaurantRepository(testDB)
	f.itemRepo = repository.NewItemRepository(testDB)
	f.packageRepo = repository.NewPackageRepository(testDB)

	f.userAccounts = service.NewAccountService[*model.User](f.userRepo, f.notifier, testSecret, 24*time.Hour, "User")
	f.vendorAccounts = service.NewAccountService[*model.Vendor](f.vendorRepo, f.notifier, testSecret, 24*time.Hour, "Vendor")

	authController := NewAuthController(f.userAccounts, f.vendorAccounts)
	vendorController := NewVendorController(f.vendorAccounts)
	restaurantController := NewRestaurantController(service.NewRestaurantService(f.restaurantRepo))
	itemController := NewItemController(service.NewItemService(f.itemRepo))
	packageController := NewPackageController(service.NewPackageService(f.packageRepo, f.itemRepo))

	authMiddleware := middleware.NewAuthMiddleware(testSecret, f.userRepo, f.vendorRepo)

	router := gin.New()
	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authController.Register)
	auth.POST("/verify-otp", authController.VerifyOTP)
	auth.POST("/resend-otp", authController.ResendOTP)
	auth.POST("/login", authController.Login)

	authedUser := auth.Group("")
	authedUser.Use(
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(model.RoleUser, model.RoleDeliveryPartner, model.RoleAdmin),
	)
	authedUser.POST("/logout", authController.Logout)
	authedUser.PUT("/update-user", authController.UpdateProfile)
	authedUser.PUT("/update-password", authController.UpdatePassword)
	authedUser.DELETE("/delete-account", authController.DeleteAccount)
	authedUser.GET("/dashboard", authController.Dashboard)
	authedUser.GET("/admin-stats",
		authMiddleware.RequireRole(model.RoleAdmin),
		authController.AdminStats)

	vendor := api.Group("/vendor")
	vendor.POST("/register", vendorController.Register)
	vendor.POST("/verify-otp", vendorController.VerifyOTP)
	vendor.POST("/login", vendorController.Login)

	authed := vendor.Group("")
	authed.Use(authMiddleware.Authenticate(), authMiddleware.RequireRole(model.RoleVendor))
	authed.POST("/logout", vendorController.Logout)
	authed.DELETE("/delete", vendorController.DeleteAccount)
	authed.GET("/dashboard", vendorController.Dashboard)
	authed.POST("/restaurant", restaurantController.Create)
	authed.GET("/restaurant", restaurantController.Get)
	authed.PUT("/restaurant/:id", restaurantController.Update)
	authed.DELETE("/restaurant/:id", restaurantController.Delete)
	authed.POST("/item", itemController.Create)
	authed.GET("/items", itemController.List)
	authed.GET("/items/search", itemController.Search)
	authed.GET("/item/:id", itemController.Get)
	authed.PUT("/item/:id", itemController.Update)
	authed.DELETE("/item/:id", itemController.Delete)
	authed.POST("/breakfast-package", packageController.Create)
	authed.GET("/breakfast-packages", packageController.List)
	authed.GET("/breakfast-package/:id", packageController.Get)
	authed.DELETE("/breakfast-package/:id", packageController.Delete)

	f.router = router
	return f
}

// do runs a JSON request against the fixture router.
func (f *controllerFixture) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(data)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func floatPtr(v float64) *float64 {
	return &v
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

// registerAndLoginVendor walks a vendor through the full onboarding
// flow and returns the session token.
func (f *controllerFixture) registerAndLoginVendor(t *testing.T, email string) string {
	t.Helper()

	w := f.do(t, http.MethodPost, "/api/vendor/register", "", RegisterRequest{
		Name:     "Test Vendor",
		Email:    email,
		Password: "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = f.do(t, http.MethodPost, "/api/vendor/verify-otp", "", VerifyOTPRequest{
		Email: email,
		OTP:   f.notifier.OTPFor(email),
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodPost, "/api/vendor/login", "", LoginRequest{
		Email:    email,
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	token, ok := decodeBody(t, w)["token"].(string)
	require.True(t, ok, "login response must carry a token")
	return token
}

// registerAndLoginUser walks a user through registration, OTP
// verification and login, returning the session token.
func (f *controllerFixture) registerAndLoginUser(t *testing.T, email string) string {
	t.Helper()

	w := f.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = f.do(t, http.MethodPost, "/api/auth/verify-otp", "", VerifyOTPRequest{
		Email: email,
		OTP:   f.notifier.OTPFor(email),
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email:    email,
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	token, ok := decodeBody(t, w)["token"].(string)
	require.True(t, ok, "login response must carry a token")
	return token
}
