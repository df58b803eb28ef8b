package utils

import (
	"testing"
	"time"
)

func TestStringPtr(t *testing.T) {
	if got := StringPtr(""); got != nil {
		t.Errorf("StringPtr(\"\") = %v, want nil", got)
	}

	got := StringPtr("user-1")
	if got == nil || *got != "user-1" {
		t.Errorf("StringPtr(\"user-1\") = %v, want pointer to \"user-1\"", got)
	}
}

func TestTimePtr(t *testing.T) {
	if got := TimePtr(time.Time{}); got != nil {
		t.Errorf("TimePtr(zero) = %v, want nil", got)
	}

	now := time.Now()
	got := TimePtr(now)
	if got == nil || !got.Equal(now) {
		t.Errorf("TimePtr(now) = %v, want pointer to %v", got, now)
	}
}
