package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Akashnaii/Breadbox/internal/app/model"
	"github.com/Akashnaii/Breadbox/internal/app/service"
	apperrors "github.com/Akashnaii/Breadbox/internal/errors"
	"github.com/Akashnaii/Breadbox/internal/middleware"
)

// ItemController serves a vendor's menu items. Ownership is enforced
// by scoping every lookup with the session's vendor id, so an item id
// belonging to another vendor behaves as if it does not exist.
type ItemController struct {
	items *service.ItemService
}

func NewItemController(items *service.ItemService) *ItemController {
	return &ItemController{items: items}
}

type CreateItemRequest struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Price       *float64       `json:"price" binding:"required,gte=0"`
	Type        model.ItemType `json:"type" binding:"required"`
	IsAvailable *bool          `json:"isAvailable"`
}

type UpdateItemRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Price       *float64        `json:"price"`
	Type        *model.ItemType `json:"type"`
	IsAvailable *bool           `json:"isAvailable"`
}

func respondItemError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		apperrors.NotFound(c, apperrors.ItemNotFound, "Item not found")
	case errors.Is(err, service.ErrInvalidItemType):
		apperrors.BadRequest(c, apperrors.ItemInvalidType, "Item type must be Food or Juice")
	case errors.Is(err, service.ErrDescriptionTooLong):
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Description must be at most 500 characters")
	default:
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, context)
	}
}

// Create adds a menu item
// POST /api/vendor/item
func (ctrl *ItemController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Item name, a non-negative price and a type are required")
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	vendorID, _ := middleware.GetPrincipalID(c)
	item, err := ctrl.items.Create(vendorID, req.Name, req.Description, *req.Price, req.Type, isAvailable)
	if err != nil {
		respondItemError(c, err, "create item")
		return
	}

	log.Info("Menu item created", map[string]interface{}{
		"item_id":   item.ID,
		"vendor_id": vendorID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item created successfully",
		"item":    item,
	})
}

// List returns all of the vendor's items
// GET /api/vendor/items
func (ctrl *ItemController) List(c *gin.Context) {
	vendorID, _ := middleware.GetPrincipalID(c)

	items, err := ctrl.items.List(vendorID)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list items")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"items": items,
	})
}

// Get returns one of the vendor's items
// GET /api/vendor/item/:id
func (ctrl *ItemController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vendorID, _ := middleware.GetPrincipalID(c)
	item, err := ctrl.items.Get(id, vendorID)
	if err != nil {
		respondItemError(c, err, "get item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item": item,
	})
}

// Update applies changes to one of the vendor's items
// PUT /api/vendor/item/:id
func (ctrl *ItemController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body")
		return
	}
	if req.Price != nil && *req.Price < 0 {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Price cannot be negative")
		return
	}

	vendorID, _ := middleware.GetPrincipalID(c)
	item, err := ctrl.items.Update(id, vendorID, service.ItemUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Type:        req.Type,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		respondItemError(c, err, "update item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item updated successfully",
		"item":    item,
	})
}

// Delete removes one of the vendor's items
// DELETE /api/vendor/item/:id
func (ctrl *ItemController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vendorID, _ := middleware.GetPrincipalID(c)
	if err := ctrl.items.Delete(id, vendorID); err != nil {
		respondItemError(c, err, "delete item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item deleted successfully",
	})
}

// Search finds the vendor's items by name or description
// GET /api/vendor/items/search?query=...
func (ctrl *ItemController) Search(c *gin.Context) {
	vendorID, _ := middleware.GetPrincipalID(c)

	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Search query is required")
		return
	}

	items, err := ctrl.items.Search(vendorID, query)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "search items")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"query": query,
		"items": items,
	})
}
