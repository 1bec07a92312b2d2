package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Akashnaii/Breadbox/internal/app/service"
	apperrors "github.com/Akashnaii/Breadbox/internal/errors"
	"github.com/Akashnaii/Breadbox/internal/middleware"
)

// RestaurantController serves the vendor's restaurant profile. All
// routes sit behind vendor authentication; the vendor id always comes
// from the session, never from the request.
type RestaurantController struct {
	restaurants *service.RestaurantService
}

func NewRestaurantController(restaurants *service.RestaurantService) *RestaurantController {
	return &RestaurantController{restaurants: restaurants}
}

type RestaurantRequest struct {
	Name           string `json:"name" binding:"required"`
	Address        string `json:"address" binding:"required"`
	Phone          string `json:"phone"`
	OperatingHours string `json:"operatingHours"`
}

type UpdateRestaurantRequest struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	OperatingHours string `json:"operatingHours"`
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// Create registers the vendor's restaurant profile
// POST /api/vendor/restaurant
func (ctrl *RestaurantController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Restaurant name and address are required")
		return
	}

	vendorID, _ := middleware.GetPrincipalID(c)
	restaurant, err := ctrl.restaurants.Create(vendorID, req.Name, req.Address, req.Phone, req.OperatingHours)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantExists) {
			apperrors.BadRequest(c, apperrors.RestaurantAlreadyExists, "Restaurant already exists for this vendor")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create restaurant")
		return
	}

	log.Info("Restaurant profile created", map[string]interface{}{
		"restaurant_id": restaurant.ID,
		"vendor_id":     vendorID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Restaurant created successfully",
		"restaurant": restaurant,
	})
}

// Get returns the vendor's restaurant profile
// GET /api/vendor/restaurant
func (ctrl *RestaurantController) Get(c *gin.Context) {
	vendorID, _ := middleware.GetPrincipalID(c)

	restaurant, err := ctrl.restaurants.Get(vendorID)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "Restaurant not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant,
	})
}

// Update applies changes to the vendor's restaurant profile
// PUT /api/vendor/restaurant/:id
func (ctrl *RestaurantController) Update(c *gin.Context) {
	restaurantID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body")
		return
	}

	vendorID, _ := middleware.GetPrincipalID(c)
	restaurant, err := ctrl.restaurants.Update(vendorID, restaurantID, req.Name, req.Address, req.Phone, req.OperatingHours)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "Restaurant not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Restaurant updated successfully",
		"restaurant": restaurant,
	})
}

// Delete removes the vendor's restaurant profile
// DELETE /api/vendor/restaurant/:id
func (ctrl *RestaurantController) Delete(c *gin.Context) {
	restaurantID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vendorID, _ := middleware.GetPrincipalID(c)

	if err := ctrl.restaurants.Delete(vendorID, restaurantID); err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "Restaurant not found")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Restaurant deleted successfully",
	})
}
