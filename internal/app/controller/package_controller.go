package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Akashnaii/Breadbox/internal/app/service"
	apperrors "github.com/Akashnaii/Breadbox/internal/errors"
	"github.com/Akashnaii/Breadbox/internal/middleware"
)

// PackageController serves a vendor's breakfast packages.
type PackageController struct {
	packages *service.PackageService
}

func NewPackageController(packages *service.PackageService) *PackageController {
	return &PackageController{packages: packages}
}

type CreatePackageRequest struct {
	Name        string   `json:"package_name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	ImageURL    string   `json:"image_url"`
	IsActive    bool     `json:"is_active"`
	ItemIDs     []uint   `json:"item_ids"`
}

type UpdatePackageRequest struct {
	Name        *string  `json:"package_name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image_url"`
	IsActive    *bool    `json:"is_active"`
	ItemIDs     *[]uint  `json:"item_ids"`
}

func respondPackageError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, service.ErrPackageNotFound):
		apperrors.NotFound(c, apperrors.PackageNotFound, "Package not found")
	case errors.Is(err, service.ErrPackageInvalidItems):
		apperrors.BadRequest(c, apperrors.PackageInvalidItems, "All items in a package must belong to you")
	default:
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, context)
	}
}

// Create assembles a package from the vendor's own items
// POST /api/vendor/breakfast-package
func (ctrl *PackageController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Package name and a non-negative price are required")
		return
	}

	vendorID, _ := middleware.GetPrincipalID(c)
	pkg, err := ctrl.packages.Create(vendorID, req.Name, req.Description, *req.Price, req.ImageURL, req.IsActive, req.ItemIDs)
	if err != nil {
		respondPackageError(c, err, "create package")
		return
	}

	log.Info("Package created", map[string]interface{}{
		"package_id": pkg.ID,
		"vendor_id":  vendorID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Package created successfully",
		"package": pkg,
	})
}

// List returns all of the vendor's packages
// GET /api/vendor/breakfast-packages
func (ctrl *PackageController) List(c *gin.Context) {
	vendorID, _ := middleware.GetPrincipalID(c)

	packages, err := ctrl.packages.List(vendorID)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list packages")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(packages),
		"packages": packages,
	})
}

// Get returns one of the vendor's packages with its items
// GET /api/vendor/breakfast-package/:id
func (ctrl *PackageController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vendorID, _ := middleware.GetPrincipalID(c)
	pkg, err := ctrl.packages.Get(id, vendorID)
	if err != nil {
		respondPackageError(c, err, "get package")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"package": pkg,
	})
}

// Update applies changes to one of the vendor's packages
// PUT /api/vendor/breakfast-package/:id
func (ctrl *PackageController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body")
		return
	}
	if req.Price != nil && *req.Price < 0 {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Price cannot be negative")
		return
	}

	vendorID, _ := middleware.GetPrincipalID(c)
	pkg, err := ctrl.packages.Update(id, vendorID, service.PackageUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
		ItemIDs:     req.ItemIDs,
	})
	if err != nil {
		respondPackageError(c, err, "update package")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Package updated successfully",
		"package": pkg,
	})
}

// Delete removes one of the vendor's packages
// DELETE /api/vendor/breakfast-package/:id
func (ctrl *PackageController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vendorID, _ := middleware.GetPrincipalID(c)
	if err := ctrl.packages.Delete(id, vendorID); err != nil {
		respondPackageError(c, err, "delete package")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Package deleted successfully",
	})
}
