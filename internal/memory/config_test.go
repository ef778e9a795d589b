package memory

import (
	"runtime/debug"
	"testing"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLimitFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		wantSrc   string
		wantBytes int64
		wantRatio float64
		wantErr   bool
	}{
		{"nothing set", nil, SourceNone, 0, 0, false},
		{"explicit GOMEMLIMIT wins", map[string]string{"GOMEMLIMIT": "1GiB", "MEMORY_LIMIT": "1000"}, SourceGoMemLimit, 0, 0, false},
		{"default ratio", map[string]string{"MEMORY_LIMIT": "1000"}, SourceMemoryLimit, 750, DefaultMemoryRatio, false},
		{"custom ratio", map[string]string{"MEMORY_LIMIT": "1000", "MEMORY_RATIO": "0.5"}, SourceMemoryLimit, 500, 0.5, false},
		{"ratio out of range", map[string]string{"MEMORY_LIMIT": "1000", "MEMORY_RATIO": "1.5"}, SourceMemoryLimit, 750, DefaultMemoryRatio, true},
		{"ratio not a number", map[string]string{"MEMORY_LIMIT": "1000", "MEMORY_RATIO": "half"}, SourceMemoryLimit, 750, DefaultMemoryRatio, true},
		{"limit not a number", map[string]string{"MEMORY_LIMIT": "512Mi"}, SourceNone, 0, 0, true},
		{"negative limit", map[string]string{"MEMORY_LIMIT": "-1"}, SourceNone, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := limitFromEnv(env(tt.env))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got.Source != tt.wantSrc || got.GoBytes != tt.wantBytes || got.Ratio != tt.wantRatio {
				t.Errorf("limitFromEnv() = %+v, want source=%s bytes=%d ratio=%v",
					got, tt.wantSrc, tt.wantBytes, tt.wantRatio)
			}
		})
	}
}

func TestConfigureFromEnv_AppliesLimit(t *testing.T) {
	previous := debug.SetMemoryLimit(-1)
	t.Cleanup(func() { debug.SetMemoryLimit(previous) })

	t.Setenv("GOMEMLIMIT", "")
	t.Setenv("MEMORY_LIMIT", "1073741824")
	t.Setenv("MEMORY_RATIO", "0.5")

	limit := ConfigureFromEnv()

	if limit.GoBytes != 536870912 {
		t.Errorf("GoBytes = %d, want 512MiB", limit.GoBytes)
	}
	if current := debug.SetMemoryLimit(-1); current != limit.GoBytes {
		t.Errorf("runtime limit = %d, want %d", current, limit.GoBytes)
	}
}

func TestConfigureFromEnv_Unset(t *testing.T) {
	previous := debug.SetMemoryLimit(-1)
	t.Cleanup(func() { debug.SetMemoryLimit(previous) })

	t.Setenv("GOMEMLIMIT", "")
	t.Setenv("MEMORY_LIMIT", "")

	if limit := ConfigureFromEnv(); limit.Source != SourceNone {
		t.Errorf("Source = %q, want none", limit.Source)
	}
	if current := debug.SetMemoryLimit(-1); current != previous {
		t.Errorf("runtime limit changed to %d", current)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536 * 1024, "1.5 MiB"},
		{1 << 30, "1.0 GiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
