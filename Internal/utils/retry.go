package utils

import "time"

// RetryConfig controls the fixed-cooldown retry loop used for throttled
// API calls.
type RetryConfig struct {
	MaxRetries int
	Cooldown   time.Duration
	Sleep      func(time.Duration) // injectable for tests
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 10,
		Cooldown:   60 * time.Second,
		Sleep:      time.Sleep,
	}
}

func (rc RetryConfig) sleep(d time.Duration) {
	if rc.Sleep != nil {
		rc.Sleep(d)
		return
	}
	time.Sleep(d)
}

// RetryWithCooldown runs fn until it stops asking for a retry. fn returns
// (retry, err): retry=true means wait one cooldown and call it again,
// regardless of err; retry=false returns err as-is. When MaxRetries
// consecutive retries have been spent the last error is returned.
func RetryWithCooldown(cfg RetryConfig, fn func() (bool, error)) error {
	var err error
	for attempt := 0; ; attempt++ {
		var retry bool
		retry, err = fn()
		if !retry {
			return err
		}
		if attempt >= cfg.MaxRetries {
			return err
		}
		cfg.sleep(cfg.Cooldown)
	}
}
