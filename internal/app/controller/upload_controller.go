package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Akashnaii/Breadbox/internal/errors"
	"github.com/Akashnaii/Breadbox/internal/middleware"
	"github.com/Akashnaii/Breadbox/internal/storage"
)

// UploadController lets a vendor obtain presigned URLs for image
// uploads. The resulting file URL goes back into item or package
// records via their normal update endpoints.
type UploadController struct {
	storage *storage.S3Storage
}

func NewUploadController(storage *storage.S3Storage) *UploadController {
	return &UploadController{storage: storage}
}

type GeneratePresignedURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Folder      string `json:"folder"` // optional, defaults to "packages"
}

var allowedImageTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
}

// GeneratePresignedURL issues a presigned S3 PUT URL for an image
// POST /api/vendor/upload/presigned-url
func (ctrl *UploadController) GeneratePresignedURL(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req GeneratePresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Filename and content type are required")
		return
	}

	if err := ctrl.storage.ValidateContentType(req.ContentType, allowedImageTypes); err != nil {
		log.Warn("Rejected upload content type", map[string]interface{}{
			"content_type": req.ContentType,
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Only image files are allowed (JPEG, PNG, GIF, WEBP)")
		return
	}

	folder := req.Folder
	if folder == "" {
		folder = "packages"
	}

	vendorID, _ := middleware.GetPrincipalID(c)
	response, err := ctrl.storage.GeneratePresignedURL(vendorID, req.Filename, req.ContentType, folder)
	if err != nil {
		log.Error("Failed to generate presigned URL", err, map[string]interface{}{
			"filename":  req.Filename,
			"vendor_id": vendorID,
		})
		apperrors.InternalError(c, "Failed to generate upload URL")
		return
	}

	log.Info("Presigned upload URL generated", map[string]interface{}{
		"vendor_id": vendorID,
		"key":       response.Key,
	})

	c.JSON(http.StatusOK, gin.H{
		"upload_url": response.UploadURL,
		"file_url":   response.FileURL,
		"key":        response.Key,
	})
}
