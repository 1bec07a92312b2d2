package errors

// Error code constants returned in the "error" field of failure responses.
// Format: CATEGORY_SPECIFIC_DETAIL. Clients map these to their own copy.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // login required
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // wrong email/password
	AuthTokenMissing       = "AUTH_TOKEN_MISSING"       // no bearer token
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"       // token expired
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // bad signature or malformed
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"        // duplicate email
	AuthNotVerified        = "AUTH_NOT_VERIFIED"        // email not verified yet
	AuthAlreadyVerified    = "AUTH_ALREADY_VERIFIED"    // verification repeated
	AuthOTPInvalid         = "AUTH_OTP_INVALID"         // wrong or expired code

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"      // insufficient role
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND" // no role in context

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID     = "VALIDATION_INVALID_ID"
	ValidationInvalidPhone  = "VALIDATION_INVALID_PHONE"
	ValidationRequired      = "VALIDATION_REQUIRED"
	ValidationNoChanges     = "VALIDATION_NO_CHANGES"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"

	// ==================== Restaurant (RESTAURANT_) ====================
	RestaurantNotFound      = "RESTAURANT_NOT_FOUND"
	RestaurantAlreadyExists = "RESTAURANT_ALREADY_EXISTS" // one per vendor

	// ==================== Items (ITEM_) ====================
	ItemNotFound    = "ITEM_NOT_FOUND"
	ItemInvalidType = "ITEM_INVALID_TYPE" // not Food or Juice

	// ==================== Packages (PACKAGE_) ====================
	PackageNotFound     = "PACKAGE_NOT_FOUND"
	PackageInvalidItems = "PACKAGE_INVALID_ITEMS" // foreign or unknown item ids

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
