package main

import "testing"

func TestIsLikelyRemoteHost(t *testing.T) {
	tests := []struct {
		host   string
		remote bool
	}{
		{host: "localhost", remote: false},
		{host: "127.0.0.1", remote: false},
		{host: "::1", remote: false},
		{host: "db.internal.local", remote: false},
		{host: "", remote: false},
		{host: "10.1.2.3", remote: true},
		{host: "db.prod.example.com", remote: true},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			if got := isLikelyRemoteHost(tt.host); got != tt.remote {
				t.Errorf("isLikelyRemoteHost(%q) = %v, want %v", tt.host, got, tt.remote)
			}
		})
	}
}

func TestParseListJobsFlags(t *testing.T) {
	opts, err := parseListJobsFlags([]string{"-status", "pending", "-limit", "10"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Status != "pending" || opts.Limit != 10 {
		t.Fatalf("unexpected options: %+v", opts)
	}

	if _, err = parseListJobsFlags([]string{"-limit", "0"}); err == nil {
		t.Fatal("expected error for zero limit")
	}
}

func TestParseDBResetFlags(t *testing.T) {
	opts, err := parseDBResetFlags([]string{"-yes", "-seed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !opts.Yes || !opts.Seed {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.Timeout != defaultMigrationTimeout {
		t.Fatalf("expected default timeout, got %v", opts.Timeout)
	}
}
