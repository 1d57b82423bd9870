package build

import (
	"testing"
	"time"
)

func TestBuildString(t *testing.T) {
	tests := []struct {
		build Build
		want  string
	}{
		{Build{Version: "dev"}, "dev"},
		{Build{Version: "v1.2.0", Commit: "abc123"}, "v1.2.0 (abc123)"},
		{Build{Version: "v1.2.0", Commit: "abc123", Date: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}, "v1.2.0 (abc123) 2024-05-01"},
	}

	for _, tt := range tests {
		if got := tt.build.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
