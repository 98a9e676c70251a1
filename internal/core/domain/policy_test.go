package domain

import (
	"testing"
	"time"
)

func TestMaxDuration(t *testing.T) {
	tests := []struct {
		role string
		want time.Duration
	}{
		{RequesterResearcher, 120 * 24 * time.Hour},
		{RequesterPhD, 90 * 24 * time.Hour},
		{RequesterMaster, 150 * 24 * time.Hour},
		{RequesterShortTerm, 14 * 24 * time.Hour},
		{"Visiting scholar", 60 * 24 * time.Hour},
		{"", 60 * 24 * time.Hour},
		{"phd", 60 * 24 * time.Hour}, // role matching is case sensitive
	}
	for _, tt := range tests {
		if got := MaxDuration(tt.role); got != tt.want {
			t.Errorf("MaxDuration(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestClampEnd(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		start   string
		end     string
		want    string
		wantErr bool
	}{
		{
			name:  "phd over cap is clamped",
			role:  RequesterPhD,
			start: "2025-01-01",
			end:   "2025-06-01",
			want:  "2025-04-01",
		},
		{
			name:  "short term within cap unchanged",
			role:  RequesterShortTerm,
			start: "2025-01-01",
			end:   "2025-01-10",
			want:  "2025-01-10",
		},
		{
			name:  "unknown role uses default cap",
			role:  "Intern",
			start: "2025-01-01",
			end:   "2025-12-31",
			want:  "2025-03-02",
		},
		{
			name:  "exactly at cap unchanged",
			role:  RequesterShortTerm,
			start: "2025-01-01",
			end:   "2025-01-15",
			want:  "2025-01-15",
		},
		{
			name:  "inverted range passes through",
			role:  RequesterResearcher,
			start: "2025-06-01",
			end:   "2025-01-01",
			want:  "2025-01-01",
		},
		{
			name:    "bad start date returns raw end",
			role:    RequesterPhD,
			start:   "01/01/2025",
			end:     "2025-06-01",
			want:    "2025-06-01",
			wantErr: true,
		},
		{
			name:    "bad end date returns raw end",
			role:    RequesterPhD,
			start:   "2025-01-01",
			end:     "June 1st",
			want:    "June 1st",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClampEnd(tt.role, tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ClampEnd() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ClampEnd() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClampEndNeverExceedsCap(t *testing.T) {
	roles := []string{
		RequesterResearcher, RequesterPhD, RequesterMaster, RequesterShortTerm, "Guest",
	}
	start := "2025-03-15"
	startDate, _ := time.Parse(DateLayout, start)

	for _, role := range roles {
		end, err := ClampEnd(role, start, "2030-01-01")
		if err != nil {
			t.Fatalf("ClampEnd(%q) unexpected error: %v", role, err)
		}
		endDate, err := time.Parse(DateLayout, end)
		if err != nil {
			t.Fatalf("ClampEnd(%q) returned unparseable end %q", role, end)
		}
		if span := endDate.Sub(startDate); span > MaxDuration(role) {
			t.Errorf("role %q: span %v exceeds cap %v", role, span, MaxDuration(role))
		}
	}
}
