package scraper

import (
	"errors"
	"fmt"
	"testing"
)

func TestStopReason(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{"Protect Blocked", ErrProtectBlocked, "protect_blocked"},
		{"Container Not Found", ErrContainerNotFound, "container_not_found"},
		{"No Cards", ErrNoCards, "no_cards"},
		{"Wrapped", fmt.Errorf("page 3: %w", ErrNoCards), "no_cards"},
		{"Unknown", errors.New("browser crashed"), "other"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StopReason(tc.err); got != tc.want {
				t.Errorf("StopReason(%v) = %q; want %q", tc.err, got, tc.want)
			}
		})
	}
}
