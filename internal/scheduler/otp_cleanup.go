package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Akashnaii/Breadbox/internal/app/repository"
	"github.com/Akashnaii/Breadbox/pkg/logger"
)

// OTPCleanupScheduler clears expired OTP hashes from user and vendor
// rows. Verification already rejects expired codes on its own; this
// job just keeps stale secrets out of the database.
type OTPCleanupScheduler struct {
	cron       *cron.Cron
	userRepo   repository.UserRepository
	vendorRepo repository.VendorRepository
}

func NewOTPCleanupScheduler(userRepo repository.UserRepository, vendorRepo repository.VendorRepository) *OTPCleanupScheduler {
	return &OTPCleanupScheduler{
		cron:       cron.New(),
		userRepo:   userRepo,
		vendorRepo: vendorRepo,
	}
}

// Start runs the cleanup every 10 minutes.
func (s *OTPCleanupScheduler) Start() error {
	_, err := s.cron.AddFunc("*/10 * * * *", s.run)
	if err != nil {
		logger.Error("Failed to add cron job for OTP cleanup", err)
		return err
	}

	s.cron.Start()
	logger.Info("OTP cleanup scheduler started (every 10 minutes)", nil)

	return nil
}

func (s *OTPCleanupScheduler) run() {
	now := time.Now()

	userRows, err := s.userRepo.ClearExpiredOTPs(now)
	if err != nil {
		logger.Error("Failed to clear expired user OTPs", err)
	}
	vendorRows, err := s.vendorRepo.ClearExpiredOTPs(now)
	if err != nil {
		logger.Error("Failed to clear expired vendor OTPs", err)
	}

	if userRows > 0 || vendorRows > 0 {
		logger.Info("Cleared expired OTPs", map[string]interface{}{
			"users":   userRows,
			"vendors": vendorRows,
		})
	}
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *OTPCleanupScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("OTP cleanup scheduler stopped", nil)
}
