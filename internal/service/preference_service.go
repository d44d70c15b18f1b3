package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rupeerewind/backend/internal/domain"
)

const maxUserNameLength = 64

// PreferencesUpdate carries the fields to change; nil fields are left as is
type PreferencesUpdate struct {
	OnboardingSeen *bool   `json:"onboarding_seen"`
	UserName       *string `json:"user_name"`
}

// PreferenceService reads and writes per-client UI state
type PreferenceService struct {
	repo DataRepository
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(repo DataRepository) *PreferenceService {
	return &PreferenceService{repo: repo}
}

// Get returns the stored preferences; missing keys read as zero values
func (s *PreferenceService) Get(ctx context.Context, clientID string) (domain.Preferences, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return domain.Preferences{}, domain.ErrInvalidClientID
	}

	prefs := domain.Preferences{ClientID: clientID}

	seen, ok, err := s.repo.GetPreference(ctx, clientID, domain.PrefOnboardingSeen)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("preferences: failed to read onboarding flag: %w", err)
	}
	if ok {
		prefs.OnboardingSeen, _ = strconv.ParseBool(seen)
	}

	name, ok, err := s.repo.GetPreference(ctx, clientID, domain.PrefUserName)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("preferences: failed to read user name: %w", err)
	}
	if ok {
		prefs.UserName = name
	}

	return prefs, nil
}

// Update applies the non-nil fields and returns the resulting preferences.
// An empty user name is not stored.
func (s *PreferenceService) Update(ctx context.Context, clientID string, upd PreferencesUpdate) (domain.Preferences, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return domain.Preferences{}, domain.ErrInvalidClientID
	}

	if upd.OnboardingSeen != nil {
		value := strconv.FormatBool(*upd.OnboardingSeen)
		if err := s.repo.SetPreference(ctx, clientID, domain.PrefOnboardingSeen, value); err != nil {
			return domain.Preferences{}, fmt.Errorf("preferences: failed to save onboarding flag: %w", err)
		}
	}

	if upd.UserName != nil {
		name := strings.TrimSpace(*upd.UserName)
		if r := []rune(name); len(r) > maxUserNameLength {
			name = string(r[:maxUserNameLength])
		}
		if name != "" {
			if err := s.repo.SetPreference(ctx, clientID, domain.PrefUserName, name); err != nil {
				return domain.Preferences{}, fmt.Errorf("preferences: failed to save user name: %w", err)
			}
		}
	}

	return s.Get(ctx, clientID)
}
