package model

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "00:00"},
		{-5 * time.Second, "00:00"},
		{999 * time.Millisecond, "00:00"},
		{30 * time.Second, "00:30"},
		{65 * time.Second, "01:05"},
		{59*time.Minute + 59*time.Second, "59:59"},
		{3600 * time.Second, "01:00:00"},
		{3661 * time.Second, "01:01:01"},
		{7323 * time.Second, "02:02:03"},
	}

	for _, test := range tests {
		result := FormatTime(test.d)
		if result != test.expected {
			t.Errorf("FormatTime(%v) = %s, expected %s", test.d, result, test.expected)
		}
	}
}
