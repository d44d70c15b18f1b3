package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rupeerewind/backend/internal/domain"
	"github.com/rupeerewind/backend/internal/repository/postgres"
)

func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func TestPreferencesRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewPreferenceService(postgres.NewMemoryRepository())

	prefs, err := svc.Get(ctx, "client-1")
	if err != nil || prefs.OnboardingSeen || prefs.UserName != "" {
		t.Fatalf("fresh prefs = %+v err=%v", prefs, err)
	}

	prefs, err = svc.Update(ctx, "client-1", PreferencesUpdate{OnboardingSeen: boolPtr(true), UserName: strPtr("  Asha ")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !prefs.OnboardingSeen || prefs.UserName != "Asha" || prefs.ClientID != "client-1" {
		t.Fatalf("prefs = %+v", prefs)
	}

	// Empty name keeps the stored one; nil flag is untouched
	prefs, err = svc.Update(ctx, "client-1", PreferencesUpdate{UserName: strPtr("")})
	if err != nil || prefs.UserName != "Asha" || !prefs.OnboardingSeen {
		t.Fatalf("prefs = %+v err=%v", prefs, err)
	}
}

func TestPreferencesTruncateLongNames(t *testing.T) {
	svc := NewPreferenceService(postgres.NewMemoryRepository())
	long := strings.Repeat("é", 100)

	prefs, err := svc.Update(context.Background(), "c", PreferencesUpdate{UserName: &long})
	if err != nil {
		t.Fatal(err)
	}
	if n := len([]rune(prefs.UserName)); n != maxUserNameLength {
		t.Fatalf("name length = %d", n)
	}
}

func TestPreferencesRequireClientID(t *testing.T) {
	svc := NewPreferenceService(postgres.NewMemoryRepository())
	if _, err := svc.Get(context.Background(), " "); !errors.Is(err, domain.ErrInvalidClientID) {
		t.Fatalf("err = %v", err)
	}
	if _, err := svc.Update(context.Background(), "", PreferencesUpdate{}); !errors.Is(err, domain.ErrInvalidClientID) {
		t.Fatalf("err = %v", err)
	}
}
