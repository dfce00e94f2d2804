package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hidogang/chipkuold-sub000/config"
	"github.com/hidogang/chipkuold-sub000/database"
	"github.com/hidogang/chipkuold-sub000/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newReferralCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
}

// RegisterAccount creates an account with a fresh referral code. referredBy
// is resolved against an existing account's code here, at creation, and
// never changes afterwards.
func RegisterAccount(username, password, referredByCode string) (*models.Account, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || len(password) < 6 {
		return nil, fmt.Errorf("%w: username and a password of 6+ chars required", ErrInvalidConfiguration)
	}

	var existing models.Account
	if err := database.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: username %s taken", ErrConflict, username)
	}

	var referredBy *string
	if referredByCode != "" {
		code := strings.ToUpper(strings.TrimSpace(referredByCode))
		var referrer models.Account
		if err := database.DB.Where("referral_code = ?", code).First(&referrer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: referral code %s", ErrNotFound, code)
			}
			return nil, err
		}
		referredBy = &referrer.ReferralCode
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := models.Account{
		Username:     username,
		PasswordHash: string(hash),
		ReferralCode: newReferralCode(),
		ReferredBy:   referredBy,
		IsActive:     true,
	}

	// Retry once on the off chance the 8-char code collides.
	for attempt := 0; attempt < 2; attempt++ {
		if err := database.DB.Create(&account).Error; err == nil {
			break
		} else if attempt == 1 {
			return nil, err
		}
		account.ReferralCode = newReferralCode()
	}

	if _, err := GetOrCreateBundle(account.ID); err != nil {
		return nil, err
	}
	return &account, nil
}

// Login verifies credentials and issues a session.
func Login(username, password string) (*models.Session, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	var account models.Account
	if err := database.DB.Where("username = ? AND is_active = true", username).
		First(&account).Error; err != nil {
		return nil, fmt.Errorf("%w: account %s", ErrNotFound, username)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: account %s", ErrNotFound, username)
	}

	session := models.Session{
		AccountID: account.ID,
		ExpiresAt: timeNow().Add(time.Duration(config.Get().SessionTTLHours) * time.Hour),
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// GetAccount loads an account by id.
func GetAccount(accountID uint) (*models.Account, error) {
	var account models.Account
	if err := database.DB.First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: account %d", ErrNotFound, accountID)
		}
		return nil, err
	}
	return &account, nil
}

// ListDirectReferrals returns the accounts referred directly by this one.
func ListDirectReferrals(accountID uint) ([]models.Account, error) {
	account, err := GetAccount(accountID)
	if err != nil {
		return nil, err
	}
	var referrals []models.Account
	err = database.DB.Where("referred_by = ?", account.ReferralCode).
		Order("id").Find(&referrals).Error
	return referrals, err
}
