package utils

import (
	"errors"
	"testing"
	"time"
)

func TestRetryWithCooldownSucceedsAfterRetries(t *testing.T) {
	var sleeps int
	cfg := RetryConfig{
		MaxRetries: 5,
		Cooldown:   time.Second,
		Sleep:      func(time.Duration) { sleeps++ },
	}

	calls := 0
	err := RetryWithCooldown(cfg, func() (bool, error) {
		calls++
		if calls < 3 {
			return true, errors.New("throttled")
		}
		return false, nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want 3", calls)
	}
	if sleeps != 2 {
		t.Errorf("slept %d times, want 2", sleeps)
	}
}

func TestRetryWithCooldownCap(t *testing.T) {
	var sleeps int
	cfg := RetryConfig{
		MaxRetries: 3,
		Cooldown:   time.Second,
		Sleep:      func(time.Duration) { sleeps++ },
	}

	sentinel := errors.New("still throttled")
	calls := 0
	err := RetryWithCooldown(cfg, func() (bool, error) {
		calls++
		return true, sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
	if calls != 4 {
		t.Errorf("fn called %d times, want 4 (initial try + 3 retries)", calls)
	}
	if sleeps != 3 {
		t.Errorf("slept %d times, want 3", sleeps)
	}
}

func TestRetryWithCooldownNoRetryPassesErrorThrough(t *testing.T) {
	cfg := DefaultRetryConfig()
	cfg.Sleep = func(time.Duration) { t.Error("should not sleep") }

	hard := errors.New("hard failure")
	err := RetryWithCooldown(cfg, func() (bool, error) {
		return false, hard
	})

	if !errors.Is(err, hard) {
		t.Errorf("expected hard failure passed through, got %v", err)
	}
}
