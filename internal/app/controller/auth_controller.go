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

// AuthController serves the user-facing account lifecycle.
type AuthController struct {
	accounts *service.AccountService[*model.User]
	vendors  *service.AccountService[*model.Vendor]
}

func NewAuthController(accounts *service.AccountService[*model.User], vendors *service.AccountService[*model.Vendor]) *AuthController {
	return &AuthController{
		accounts: accounts,
		vendors:  vendors,
	}
}

type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

type ResendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

type UpdatePasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

type DeleteAccountRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// accountProfile is the safe projection of an account returned by the
// API. Password and OTP material never leave the model.
func accountProfile(id uint, acct *model.Account, role model.Role) gin.H {
	return gin.H{
		"id":          id,
		"name":        acct.Name,
		"email":       acct.Email,
		"phoneNumber": acct.PhoneNumber,
		"address":     acct.Address,
		"role":        role,
		"isVerified":  acct.IsVerified,
	}
}

// requireOwnEmail enforces that the email in the request body matches
// the authenticated principal. Profile mutations carry the email
// explicitly and may only target the caller's own account.
func requireOwnEmail(c *gin.Context, bodyEmail string) bool {
	tokenEmail, ok := middleware.GetPrincipalEmail(c)
	if !ok || service.NormalizeEmail(bodyEmail) != tokenEmail {
		apperrors.Forbidden(c, "You can only modify your own account")
		return false
	}
	return true
}

// Register handles user registration
// POST /api/auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid registration request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Name, email and a password of at least 6 characters are required")
		return
	}
	if req.PhoneNumber != "" && !util.IsValidPhoneNumber(req.PhoneNumber) {
		apperrors.BadRequest(c, apperrors.ValidationInvalidPhone, "Phone number must be a valid 10-digit Indian mobile number")
		return
	}

	user := &model.User{
		Account: model.Account{
			Name:        req.Name,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Address:     req.Address,
		},
		Role: model.RoleUser,
	}

	if err := ctrl.accounts.Register(user, req.Password); err != nil {
		respondAccountError(c, err, "register user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful. Please check your email for the OTP.",
		"user":    accountProfile(user.ID, &user.Account, user.Role),
	})
}

// VerifyOTP confirms the email address with the code sent at signup
// POST /api/auth/verify-otp
func (ctrl *AuthController) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Email and a 6-digit OTP are required")
		return
	}

	if err := ctrl.accounts.VerifyOTP(req.Email, req.OTP); err != nil {
		respondAccountError(c, err, "verify user otp")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Email verified successfully. You can now log in.",
	})
}

// ResendOTP issues a fresh verification code
// POST /api/auth/resend-otp
func (ctrl *AuthController) ResendOTP(c *gin.Context) {
	var req ResendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Email is required")
		return
	}

	if err := ctrl.accounts.ResendOTP(req.Email); err != nil {
		respondAccountError(c, err, "resend user otp")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "A new OTP has been sent to your email.",
	})
}

// Login authenticates a verified user and issues a token
// POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Email and password are required")
		return
	}

	user, token, err := ctrl.accounts.Login(req.Email, req.Password)
	if err != nil {
		respondAccountError(c, err, "login user")
		return
	}

	log.Info("User logged in", map[string]interface{}{
		"user_id": user.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    accountProfile(user.ID, &user.Account, user.Role),
	})
}

// Logout acknowledges session end. Tokens are stateless, so the client
// discards the token; nothing is stored server side.
// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// UpdateProfile applies profile changes to the caller's own account
// PUT /api/auth/update-user
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
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
	user, updatedFields, err := ctrl.accounts.UpdateProfile(principalID, req.Name, req.PhoneNumber, req.Address)
	if err != nil {
		respondAccountError(c, err, "update user profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Profile updated successfully",
		"updatedFields": updatedFields,
		"user":          accountProfile(user.ID, &user.Account, user.Role),
	})
}

// UpdatePassword changes the caller's password
// PUT /api/auth/update-password
func (ctrl *AuthController) UpdatePassword(c *gin.Context) {
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
		respondAccountError(c, err, "update user password")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password updated successfully",
	})
}

// DeleteAccount removes the caller's account after a password check
// DELETE /api/auth/delete-account
func (ctrl *AuthController) DeleteAccount(c *gin.Context) {
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
		respondAccountError(c, err, "delete user account")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Account deleted successfully",
	})
}

// Dashboard returns the caller's profile
// GET /api/auth/dashboard
func (ctrl *AuthController) Dashboard(c *gin.Context) {
	principalID, _ := middleware.GetPrincipalID(c)

	user, err := ctrl.accounts.GetByID(principalID)
	if err != nil {
		respondAccountError(c, err, "load user dashboard")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": accountProfile(user.ID, &user.Account, user.Role),
	})
}

// AdminStats returns platform-wide account counts. Admin only.
// GET /api/auth/admin-stats
func (ctrl *AuthController) AdminStats(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	totalUsers, usersByRole, err := ctrl.accounts.Stats()
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "load admin stats")
		return
	}
	totalVendors, _, err := ctrl.vendors.Stats()
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "load admin stats")
		return
	}

	log.Debug("Admin stats requested", map[string]interface{}{
		"total_users":   totalUsers,
		"total_vendors": totalVendors,
	})

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"totalUsers":   totalUsers,
			"usersByRole":  usersByRole,
			"totalVendors": totalVendors,
		},
	})
}
