package password

import (
	"errors"
	"strings"
)

const MinLen = 8

var ErrTooShort = errors.New("password too short")

// Warning is advisory strength feedback. Registration never fails on a
// weak-but-long-enough password; the UI decides what to show.
type Warning struct {
	Score       int      `json:"score"` // 0..4
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Check trims pwd, enforces only the minimum length, and scores the
// rest. hints are user-derived strings (name, email local part) that
// weaken a password when embedded in it.
func Check(pwd string, hints ...string) (trimmed string, warn *Warning, err error) {
	trimmed = strings.TrimSpace(pwd)
	if len(trimmed) < MinLen {
		return trimmed, nil, ErrTooShort
	}
	score, msg, sugg := strength(trimmed, hints...)
	if score < 3 {
		warn = &Warning{Score: score, Message: msg, Suggestions: sugg}
	}
	return trimmed, warn, nil
}

func strength(pwd string, hints ...string) (int, string, []string) {
	var hasLower, hasUpper, hasDigit, hasOther bool
	for _, r := range pwd {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasOther = true
		}
	}
	classes := 0
	for _, has := range []bool{hasLower, hasUpper, hasDigit, hasOther} {
		if has {
			classes++
		}
	}
	// embedding your own name/email is as good as losing a class
	low := strings.ToLower(pwd)
	for _, h := range hints {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" && strings.Contains(low, h) && len(pwd) < 16 {
			if classes > 1 {
				classes--
			}
			break
		}
	}
	switch l := len(pwd); {
	case l >= 14 && classes >= 3:
		return 4, "", nil
	case l >= 12 && classes >= 3:
		return 3, "", []string{"A 3-4 word passphrase is even stronger."}
	case l >= 10 && classes >= 2:
		return 2, "Short or low variety.", []string{"Add length and mix character types."}
	default:
		return 1, "Too short or predictable.", []string{"Use 12+ characters with mixed types."}
	}
}
