package validate

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Env fail-fasts on broken security configuration at startup.
func Env() error {
	if len(os.Getenv("SESSION_JWT_SECRET")) < 32 {
		return errors.New("SESSION_JWT_SECRET must be at least 32 characters")
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("SESSION_TTL: invalid duration %q", v)
		}
	}
	return nil
}
