package config

import (
	"os"
	"strconv"

	"sahayak-be/store"
)

// Port returns the HTTP listen port.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}

// VerificationThreshold returns the vote count required to advance an
// issue automatically, from VERIFICATION_THRESHOLD when set.
func VerificationThreshold() int {
	if v := os.Getenv("VERIFICATION_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return store.DefaultVerificationThreshold
}

// IssueRateLimit returns how many issues one identity may file per day.
func IssueRateLimit() int {
	if v := os.Getenv("ISSUE_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 10
}

// DevMode reports whether dev conveniences (exposed OTPs, master OTP)
// are enabled.
func DevMode() bool {
	return os.Getenv("GO_ENV") != "production" || os.Getenv("EXPOSE_OTP") == "1"
}
