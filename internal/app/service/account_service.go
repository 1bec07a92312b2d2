package service

import (
	"errors"
	"strings"
	"time"

	"github.com/Akashnaii/Breadbox/internal/app/model"
	apperrors "github.com/Akashnaii/Breadbox/internal/errors"
	"github.com/Akashnaii/Breadbox/internal/mail"
	"github.com/Akashnaii/Breadbox/pkg/logger"
	"github.com/Akashnaii/Breadbox/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPrincipalNotFound  = errors.New("account not found")
	ErrAlreadyVerified    = errors.New("account already verified")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrNotVerified        = errors.New("email not verified")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrNoChanges          = errors.New("no changes provided")
)

// PrincipalStore is the persistence contract the account lifecycle
// needs. Both the user and vendor repositories satisfy it; for vendors,
// Delete cascades over the owned resources.
type PrincipalStore[P model.Principal] interface {
	Create(p P) error
	FindByID(id uint) (P, error)
	FindByEmail(email string) (P, error)
	Update(p P) error
	Delete(id uint) error
	Count() (int64, error)
	CountByRole() (map[model.Role]int64, error)
}

// AccountService implements the account lifecycle once for both
// principal variants: registration with OTP issuance, verification,
// login with token issuance, profile and password updates, deletion.
// The original system carried two near-identical copies of these flows;
// here the variant only decides the store and the email wording.
type AccountService[P model.Principal] struct {
	store       PrincipalStore[P]
	notifier    mail.Notifier
	jwtSecret   string
	tokenExpiry time.Duration
	roleLabel   string // "User" or "Vendor", used in email copy
}

func NewAccountService[P model.Principal](
	store PrincipalStore[P],
	notifier mail.Notifier,
	jwtSecret string,
	tokenExpiry time.Duration,
	roleLabel string,
) *AccountService[P] {
	return &AccountService[P]{
		store:       store,
		notifier:    notifier,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
		roleLabel:   roleLabel,
	}
}

// NormalizeEmail lowercases and trims an address; all lookups and
// writes go through it so email identity is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an unverified account and emails an OTP. The email
// pre-check gives a friendly failure; the unique index on email is the
// real guard, so two concurrent registrations resolve to one success
// and one ErrEmailAlreadyExists.
func (s *AccountService[P]) Register(p P, password string) error {
	acct := p.Credentials()
	acct.Email = NormalizeEmail(acct.Email)

	logger.Info("Attempting registration", map[string]interface{}{
		"email": acct.Email,
		"kind":  s.roleLabel,
	})

	_, err := s.store.FindByEmail(acct.Email)
	if err == nil {
		return ErrEmailAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"email": acct.Email,
		})
		return err
	}
	acct.PasswordHash = hashedPassword

	otp, err := s.issueOTP(acct)
	if err != nil {
		return err
	}

	if err := s.store.Create(p); err != nil {
		if apperrors.IsDuplicateKey(err) {
			logger.Warn("Registration lost duplicate-email race", map[string]interface{}{
				"email": acct.Email,
			})
			return ErrEmailAlreadyExists
		}
		return err
	}

	s.notifier.SendOTP(acct.Email, acct.Name, otp, mail.OTPKindRegister, s.roleLabel)

	logger.Info("Registered, awaiting OTP verification", map[string]interface{}{
		"id":    p.PrincipalID(),
		"email": acct.Email,
		"kind":  s.roleLabel,
	})
	return nil
}

// issueOTP generates a fresh code, stores only its hash, and resets the
// validity window. Overwrites any prior code.
func (s *AccountService[P]) issueOTP(acct *model.Account) (string, error) {
	otp, err := util.GenerateOTP()
	if err != nil {
		logger.Error("Failed to generate OTP", err)
		return "", err
	}
	otpHash, err := util.HashOTP(otp)
	if err != nil {
		logger.Error("Failed to hash OTP", err)
		return "", err
	}

	expiry := time.Now().Add(util.OTPValidity)
	acct.OTPHash = &otpHash
	acct.OTPExpiry = &expiry
	return otp, nil
}

// VerifyOTP transitions an unverified account to verified. Verified is
// absorbing: repeat attempts fail with ErrAlreadyVerified. The stored
// hash is compared constant-time; a correct but expired code fails the
// same way as a wrong one.
func (s *AccountService[P]) VerifyOTP(email, otp string) error {
	p, err := s.findByEmail(email)
	if err != nil {
		return err
	}

	acct := p.Credentials()
	if acct.IsVerified {
		return ErrAlreadyVerified
	}
	if acct.OTPHash == nil || acct.OTPExpiry == nil {
		return ErrInvalidOTP
	}
	if time.Now().After(*acct.OTPExpiry) {
		logger.Warn("OTP verification failed: code expired", map[string]interface{}{
			"email": acct.Email,
		})
		return ErrInvalidOTP
	}
	if !util.VerifyOTP(*acct.OTPHash, otp) {
		logger.Warn("OTP verification failed: wrong code", map[string]interface{}{
			"email": acct.Email,
		})
		return ErrInvalidOTP
	}

	acct.IsVerified = true
	acct.OTPHash = nil
	acct.OTPExpiry = nil
	if err := s.store.Update(p); err != nil {
		return err
	}

	logger.Info("Email verified", map[string]interface{}{
		"id":    p.PrincipalID(),
		"email": acct.Email,
		"kind":  s.roleLabel,
	})
	return nil
}

// ResendOTP issues a fresh code for a still-unverified account,
// invalidating the previous one.
func (s *AccountService[P]) ResendOTP(email string) error {
	p, err := s.findByEmail(email)
	if err != nil {
		return err
	}

	acct := p.Credentials()
	if acct.IsVerified {
		return ErrAlreadyVerified
	}

	otp, err := s.issueOTP(acct)
	if err != nil {
		return err
	}
	if err := s.store.Update(p); err != nil {
		return err
	}

	s.notifier.SendOTP(acct.Email, acct.Name, otp, mail.OTPKindResend, s.roleLabel)
	return nil
}

// Login verifies credentials and issues a session token. Unverified
// accounts never receive a token.
func (s *AccountService[P]) Login(email, password string) (P, string, error) {
	var zero P

	p, err := s.findByEmail(email)
	if err != nil {
		if errors.Is(err, ErrPrincipalNotFound) {
			return zero, "", ErrInvalidCredentials
		}
		return zero, "", err
	}

	acct := p.Credentials()
	if !util.VerifyPassword(acct.PasswordHash, password) {
		logger.Warn("Login failed: invalid password", map[string]interface{}{
			"email": acct.Email,
		})
		return zero, "", ErrInvalidCredentials
	}
	if !acct.IsVerified {
		logger.Warn("Login rejected: email not verified", map[string]interface{}{
			"email": acct.Email,
		})
		return zero, "", ErrNotVerified
	}

	token, err := util.GenerateToken(
		p.PrincipalID(),
		acct.Email,
		acct.Name,
		string(p.PrincipalRole()),
		s.jwtSecret,
		s.tokenExpiry,
	)
	if err != nil {
		logger.Error("Failed to generate token", err, map[string]interface{}{
			"id": p.PrincipalID(),
		})
		return zero, "", err
	}

	logger.Info("Login successful", map[string]interface{}{
		"id":    p.PrincipalID(),
		"email": acct.Email,
		"role":  p.PrincipalRole(),
	})
	return p, token, nil
}

// GetByID resolves a principal by id.
func (s *AccountService[P]) GetByID(id uint) (P, error) {
	var zero P
	p, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, ErrPrincipalNotFound
		}
		return zero, err
	}
	return p, nil
}

// CheckPassword verifies the current password of the given account.
func (s *AccountService[P]) CheckPassword(id uint, password string) error {
	p, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if !util.VerifyPassword(p.Credentials().PasswordHash, password) {
		return ErrIncorrectPassword
	}
	return nil
}

// UpdateProfile applies non-empty, changed fields and emails a
// confirmation listing them. Requires a verified account.
func (s *AccountService[P]) UpdateProfile(id uint, name, phoneNumber, address string) (P, map[string]string, error) {
	var zero P

	p, err := s.GetByID(id)
	if err != nil {
		return zero, nil, err
	}

	acct := p.Credentials()
	if !acct.IsVerified {
		return zero, nil, ErrNotVerified
	}

	updatedFields := make(map[string]string)
	if name != "" && name != acct.Name {
		acct.Name = name
		updatedFields["name"] = name
	}
	if phoneNumber != "" && phoneNumber != acct.PhoneNumber {
		acct.PhoneNumber = phoneNumber
		updatedFields["phoneNumber"] = phoneNumber
	}
	if address != "" && address != acct.Address {
		acct.Address = address
		updatedFields["address"] = address
	}

	if len(updatedFields) == 0 {
		return zero, nil, ErrNoChanges
	}

	if err := s.store.Update(p); err != nil {
		return zero, nil, err
	}

	s.notifier.SendProfileUpdated(acct.Email, acct.Name, updatedFields, s.roleLabel)

	logger.Info("Profile updated", map[string]interface{}{
		"id":     p.PrincipalID(),
		"fields": len(updatedFields),
		"kind":   s.roleLabel,
	})
	return p, updatedFields, nil
}

// UpdatePassword re-hashes on change and emails a confirmation.
// Requires the current password and a verified account.
func (s *AccountService[P]) UpdatePassword(id uint, currentPassword, newPassword string) error {
	p, err := s.GetByID(id)
	if err != nil {
		return err
	}

	acct := p.Credentials()
	if !util.VerifyPassword(acct.PasswordHash, currentPassword) {
		return ErrIncorrectPassword
	}
	if !acct.IsVerified {
		return ErrNotVerified
	}

	hashedPassword, err := util.HashPassword(newPassword)
	if err != nil {
		return err
	}
	acct.PasswordHash = hashedPassword

	if err := s.store.Update(p); err != nil {
		return err
	}

	s.notifier.SendPasswordChanged(acct.Email, acct.Name, s.roleLabel)

	logger.Info("Password updated", map[string]interface{}{
		"id":   p.PrincipalID(),
		"kind": s.roleLabel,
	})
	return nil
}

// DeleteAccount removes the account after re-checking the password.
// For vendors the store's Delete cascades over the restaurant, items
// and packages before the vendor row goes.
func (s *AccountService[P]) DeleteAccount(id uint, password string) error {
	p, err := s.GetByID(id)
	if err != nil {
		return err
	}

	acct := p.Credentials()
	if !util.VerifyPassword(acct.PasswordHash, password) {
		return ErrIncorrectPassword
	}
	if !acct.IsVerified {
		return ErrNotVerified
	}

	if err := s.store.Delete(id); err != nil {
		logger.Error("Failed to delete account", err, map[string]interface{}{
			"id":   id,
			"kind": s.roleLabel,
		})
		return err
	}

	s.notifier.SendAccountDeleted(acct.Email, acct.Name, s.roleLabel)

	logger.Info("Account deleted", map[string]interface{}{
		"id":    id,
		"email": acct.Email,
		"kind":  s.roleLabel,
	})
	return nil
}

// Stats returns the total principal count and a per-role breakdown.
func (s *AccountService[P]) Stats() (int64, map[model.Role]int64, error) {
	total, err := s.store.Count()
	if err != nil {
		return 0, nil, err
	}
	byRole, err := s.store.CountByRole()
	if err != nil {
		return 0, nil, err
	}
	return total, byRole, nil
}

func (s *AccountService[P]) findByEmail(email string) (P, error) {
	var zero P
	p, err := s.store.FindByEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, ErrPrincipalNotFound
		}
		return zero, err
	}
	return p, nil
}
