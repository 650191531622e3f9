package util

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{name: "whole amount", amount: "250", expected: "₡250.00"},
		{name: "one decimal", amount: "282.5", expected: "₡282.50"},
		{name: "rounds half up", amount: "32.505", expected: "₡32.51"},
		{name: "zero", amount: "0", expected: "₡0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatAmount("₡", decimal.RequireFromString(tt.amount)); got != tt.expected {
				t.Fatalf("FormatAmount(%s) = %s, want %s", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rate     string
		expected string
	}{
		{rate: "0.13", expected: "13%"},
		{rate: "0.105", expected: "10.5%"},
		{rate: "0", expected: "0%"},
	}

	for _, tt := range tests {
		t.Run(tt.rate, func(t *testing.T) {
			t.Parallel()

			if got := FormatPercent(decimal.RequireFromString(tt.rate)); got != tt.expected {
				t.Fatalf("FormatPercent(%s) = %s, want %s", tt.rate, got, tt.expected)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bytes    int64
		expected string
	}{
		{bytes: 512, expected: "512 B"},
		{bytes: 1536, expected: "1.5 KB"},
		{bytes: 5 << 20, expected: "5.0 MB"},
	}

	for _, tt := range tests {
		if got := FormatBytes(tt.bytes); got != tt.expected {
			t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		duration time.Duration
		expected string
	}{
		{duration: 45 * time.Second, expected: "45s"},
		{duration: 4 * time.Minute, expected: "4m0s"},
		{duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.duration); got != tt.expected {
			t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
		}
	}
}
