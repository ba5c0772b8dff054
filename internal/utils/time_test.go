package utils

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("Local")
	if err != nil {
		t.Fatalf("LoadLocation(Local) failed: %v", err)
	}
	if loc != time.Local {
		t.Errorf("LoadLocation(Local) = %v, want time.Local", loc)
	}

	loc, err = LoadLocation("")
	if err != nil || loc != time.Local {
		t.Errorf("LoadLocation(\"\") = %v, %v, want time.Local, nil", loc, err)
	}

	loc, err = LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("LoadLocation(Asia/Tokyo) failed: %v", err)
	}
	if loc.String() != "Asia/Tokyo" {
		t.Errorf("LoadLocation(Asia/Tokyo) = %v", loc)
	}
}

func TestNowInTimezone_InvalidZone(t *testing.T) {
	if _, err := NowInTimezone("Not/AZone"); err == nil {
		t.Error("NowInTimezone(Not/AZone) should fail")
	}
}

func TestValidateTimezone(t *testing.T) {
	tests := []struct {
		tz   string
		want bool
	}{
		{"", true},
		{"Local", true},
		{"America/New_York", true},
		{"Not/AZone", false},
	}

	for _, tt := range tests {
		if got := ValidateTimezone(tt.tz); got != tt.want {
			t.Errorf("ValidateTimezone(%q) = %v, want %v", tt.tz, got, tt.want)
		}
	}
}
