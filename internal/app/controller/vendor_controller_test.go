package controller

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Akashnaii/Breadbox/internal/app/model"
)

func TestVendorController_OnboardingFlow(t *testing.T) {
	f := setupControllerTest(t)

	token := f.registerAndLoginVendor(t, "vendor@example.com")

	w := f.do(t, http.MethodGet, "/api/vendor/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	response := decodeBody(t, w)
	vendor, ok := response["vendor"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "vendor@example.com", vendor["email"])
	assert.Equal(t, true, vendor["is_verified"])
}

func TestVendorController_UserTokenRejected(t *testing.T) {
	f := setupControllerTest(t)

	// A user session may not reach the vendor surface
	w := f.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name: "Plain User", Email: "user@example.com", Password: "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = f.do(t, http.MethodPost, "/api/auth/verify-otp", "", VerifyOTPRequest{
		Email: "user@example.com", OTP: f.notifier.OTPFor("user@example.com"),
	})
	require.Equal(t, http.StatusOK, w.Code)
	w = f.do(t, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email: "user@example.com", Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	userToken := decodeBody(t, w)["token"].(string)

	w = f.do(t, http.MethodGet, "/api/vendor/dashboard", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVendorController_LogoutRequiresToken(t *testing.T) {
	f := setupControllerTest(t)

	w := f.do(t, http.MethodPost, "/api/vendor/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := f.registerAndLoginVendor(t, "vendor@example.com")
	w = f.do(t, http.MethodPost, "/api/vendor/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVendorController_DeleteCascades(t *testing.T) {
	f := setupControllerTest(t)

	token := f.registerAndLoginVendor(t, "vendor@example.com")

	w := f.do(t, http.MethodPost, "/api/vendor/restaurant", token, RestaurantRequest{
		Name: "Morning Bites", Address: "4 Brigade Road",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = f.do(t, http.MethodPost, "/api/vendor/item", token, CreateItemRequest{
		Name: "Idli", Price: floatPtr(40), Type: model.ItemTypeFood,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	itemID := uint(decodeBody(t, w)["item"].(map[string]interface{})["id"].(float64))

	w = f.do(t, http.MethodPost, "/api/vendor/breakfast-package", token, CreatePackageRequest{
		Name: "Morning Combo", Price: floatPtr(90), ItemIDs: []uint{itemID},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	vendor, err := f.vendorRepo.FindByEmail("vendor@example.com")
	require.NoError(t, err)

	// Deleting with the wrong password leaves everything in place
	w = f.do(t, http.MethodDelete, "/api/vendor/delete", token, DeleteAccountRequest{
		Email: "vendor@example.com", Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(t, http.MethodDelete, "/api/vendor/delete", token, DeleteAccountRequest{
		Email: "vendor@example.com", Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	_, err = f.vendorRepo.FindByID(vendor.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = f.restaurantRepo.FindByVendor(vendor.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	items, err := f.itemRepo.FindByVendor(vendor.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	packages, err := f.packageRepo.FindByVendor(vendor.ID)
	require.NoError(t, err)
	assert.Empty(t, packages)

	// The dead session is refused afterwards
	w = f.do(t, http.MethodGet, "/api/vendor/dashboard", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVendorController_RestaurantConflict(t *testing.T) {
	f := setupControllerTest(t)

	token := f.registerAndLoginVendor(t, "vendor@example.com")

	w := f.do(t, http.MethodPost, "/api/vendor/restaurant", token, RestaurantRequest{
		Name: "Morning Bites", Address: "4 Brigade Road",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	restaurantID := uint(decodeBody(t, w)["restaurant"].(map[string]interface{})["id"].(float64))

	w = f.do(t, http.MethodPost, "/api/vendor/restaurant", token, RestaurantRequest{
		Name: "Second Shop", Address: "Elsewhere",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "RESTAURANT_ALREADY_EXISTS")

	w = f.do(t, http.MethodPut, fmt.Sprintf("/api/vendor/restaurant/%d", restaurantID), token, UpdateRestaurantRequest{
		Name: "Morning Bites Deluxe",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Morning Bites Deluxe")

	// A foreign restaurant id reads as missing
	w = f.do(t, http.MethodDelete, fmt.Sprintf("/api/vendor/restaurant/%d", restaurantID+50), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodDelete, fmt.Sprintf("/api/vendor/restaurant/%d", restaurantID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
