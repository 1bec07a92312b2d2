package util

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// OTPValidity is how long an issued code stays usable.
const OTPValidity = 10 * time.Minute

// GenerateOTP generates a random 6-digit one-time code.
// Uses crypto/rand so codes are independent and unpredictable.
func GenerateOTP() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// HashOTP hashes a one-time code before it is persisted.
// Codes are never stored in clear text.
func HashOTP(otp string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(otp), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyOTP compares a submitted code against the stored hash.
// bcrypt's compare is constant-time, so the check does not leak timing.
func VerifyOTP(hashedOTP, otp string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedOTP), []byte(otp))
	return err == nil
}
