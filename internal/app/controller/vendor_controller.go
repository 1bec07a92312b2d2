package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Akashnaii/Breadbox/internal/app/model"
	"github.com/Akashnaii/Breadbox/internal/app/service"
	apperrors "github.com/Akashnaii/Breadbox/internal/errors"
	"github.com/Akashnaii/Breadbox/internal/middleware"
	"github.com/Akashnaii/Breadbox/pkg/util"
)

// VendorController serves the vendor account lifecycle. The request
// shapes are shared with the user surface; only the store behind the
// service differs, plus the cascade on delete.
type VendorController struct {
	accounts *service.AccountService[*model.Vendor]
}

func NewVendorController(accounts *service.AccountService[*model.Vendor]) *VendorController {
	return &VendorController{accounts: accounts}
}

func vendorProfile(v *model.Vendor) gin.H {
	return accountProfile(v.ID, &v.Account, model.RoleVendor)
}

// Register handles vendor registration
// POST /api/vendor/register
func (ctrl *VendorController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid vendor registration request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Name, email and a password of at least 6 characters are required")
		return
	}
	if req.PhoneNumber != "" && !util.IsValidPhoneNumber(req.PhoneNumber) {
		apperrors.BadRequest(c, apperrors.ValidationInvalidPhone, "Phone number must be a valid 10-digit Indian mobile number")
		return
	}

	vendor := &model.Vendor{
		Account: model.Account{
			Name:        req.Name,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Address:     req.Address,
		},
	}

	if err := ctrl.accounts.Register(vendor, req.Password); err != nil {
		respondAccountError(c, err, "register vendor")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful. Please check your email for the OTP.",
		"vendor":  vendorProfile(vendor),
	})
}

// VerifyOTP confirms the vendor's email address
// POST /api/vendor/verify-otp
func (ctrl *VendorController) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Email and a 6-digit OTP are required")
		return
	}

	if err := ctrl.accounts.VerifyOTP(req.Email, req.OTP); err != nil {
		respondAccountError(c, err, "verify vendor otp")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Email verified successfully. You can now log in.",
	})
}

// ResendOTP issues a fresh verification code
// POST /api/vendor/resend-otp
func (ctrl *VendorController) ResendOTP(c *gin.Context) {
	var req ResendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Email is required")
		return
	}

	if err := ctrl.accounts.ResendOTP(req.Email); err != nil {
		respondAccountError(c, err, "resend vendor otp")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "A new OTP has been sent to your email.",
	})
}

// Login authenticates a verified vendor and issues a token
// POST /api/vendor/login
func (ctrl *VendorController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Email and password are required")
		return
	}

	vendor, token, err := ctrl.accounts.Login(req.Email, req.Password)
	if err != nil {
		respondAccountError(c, err, "login vendor")
		return
	}

	log.Info("Vendor logged in", map[string]interface{}{
		"vendor_id": vendor.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"vendor":  vendorProfile(vendor),
	})
}

// Logout acknowledges session end
// POST /api/vendor/logout
func (ctrl *VendorController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// UpdateProfile applies profile changes to the caller's vendor account
// PUT /api/vendor/update
func (ctrl *VendorController) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Email is required")
		return
	}
	if !requireOwnEmail(c, req.Email) {
		return
	}
	if req.PhoneNumber != "" && !util.IsValidPhoneNumber(req.PhoneNumber) {
		apperrors.BadRequest(c, apperrors.ValidationInvalidPhone, "Phone number must be a valid 10-digit Indian mobile number")
		return
	}

	principalID, _ := middleware.GetPrincipalID(c)
	vendor, updatedFields, err := ctrl.accounts.UpdateProfile(principalID, req.Name, req.PhoneNumber, req.Address)
	if err != nil {
		respondAccountError(c, err, "update vendor profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Profile updated successfully",
		"updatedFields": updatedFields,
		"vendor":        vendorProfile(vendor),
	})
}

// UpdatePassword changes the caller's password
// PUT /api/vendor/update-password
func (ctrl *VendorController) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Email, current password and a new password of at least 6 characters are required")
		return
	}
	if !requireOwnEmail(c, req.Email) {
		return
	}

	principalID, _ := middleware.GetPrincipalID(c)
	if err := ctrl.accounts.UpdatePassword(principalID, req.CurrentPassword, req.NewPassword); err != nil {
		respondAccountError(c, err, "update vendor password")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password updated successfully",
	})
}

// DeleteAccount removes the vendor and everything it owns: the
// restaurant profile, all items and all packages go in one transaction
// DELETE /api/vendor/delete
func (ctrl *VendorController) DeleteAccount(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Email and password are required")
		return
	}
	if !requireOwnEmail(c, req.Email) {
		return
	}

	principalID, _ := middleware.GetPrincipalID(c)
	if err := ctrl.accounts.DeleteAccount(principalID, req.Password); err != nil {
		respondAccountError(c, err, "delete vendor account")
		return
	}

	log.Info("Vendor account and owned resources deleted", map[string]interface{}{
		"vendor_id": principalID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Vendor account and all associated data deleted successfully",
	})
}

// Dashboard returns the caller's vendor profile
// GET /api/vendor/dashboard
func (ctrl *VendorController) Dashboard(c *gin.Context) {
	principalID, _ := middleware.GetPrincipalID(c)

	vendor, err := ctrl.accounts.GetByID(principalID)
	if err != nil {
		respondAccountError(c, err, "load vendor dashboard")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vendor": vendorProfile(vendor),
	})
}
