package berkas

import (
	"os"
	"reflect"
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test_value")
	defer os.Unsetenv("TEST_VAR")

	result := GetEnv("TEST_VAR")
	if result != "test_value" {
		t.Errorf("GetEnv() = %q, want %q", result, "test_value")
	}
}

func TestGetEnvNotSet(t *testing.T) {
	result := GetEnv("NON_EXISTENT_VAR_12345")
	if result != "" {
		t.Errorf("GetEnv() = %q, want empty string", result)
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		value        string
		defaultValue string
		want         string
	}{
		{"env_var_exists", "TEST_VAR_EXISTS", "actual_value", "default_value", "actual_value"},
		{"env_var_not_exists", "TEST_VAR_NOT_EXISTS_12345", "", "default_value", "default_value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				os.Setenv(tt.key, tt.value)
				defer os.Unsetenv(tt.key)
			}
			result := GetEnvOrDefault(tt.key, tt.defaultValue)
			if result != tt.want {
				t.Errorf("GetEnvOrDefault() = %q, want %q", result, tt.want)
			}
		})
	}
}

func TestParseEnvInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"valid", "25", 25, false},
		{"valid_with_spaces", " 10 ", 10, false},
		{"negative", "-5", -5, false},
		{"invalid", "abc", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEnvInt(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseEnvInt(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseEnvInt(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseEnvInt64(t *testing.T) {
	got, err := ParseEnvInt64("3600000")
	if err != nil {
		t.Fatalf("ParseEnvInt64() error = %v", err)
	}
	if got != 3600000 {
		t.Errorf("ParseEnvInt64() = %d, want 3600000", got)
	}

	if _, err := ParseEnvInt64("not-a-number"); err == nil {
		t.Errorf("ParseEnvInt64() should fail for invalid input")
	}
}

func TestParseEnvDuration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"valid_15m", "15m", 15 * time.Minute, false},
		{"valid_30s", "30s", 30 * time.Second, false},
		{"empty_returns_zero", "", 0, false},
		{"invalid", "fifteen", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEnvDuration(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseEnvDuration(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseEnvDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseEnvBool(t *testing.T) {
	truthy := []string{"true", "TRUE", "yes", "1", "on", " On "}
	for _, value := range truthy {
		if !ParseEnvBool(value) {
			t.Errorf("ParseEnvBool(%q) = false, want true", value)
		}
	}

	falsy := []string{"false", "no", "0", "off", "", "maybe"}
	for _, value := range falsy {
		if ParseEnvBool(value) {
			t.Errorf("ParseEnvBool(%q) = true, want false", value)
		}
	}
}

func TestParseEnvList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"two_paths", "/login,/logout", []string{"/login", "/logout"}},
		{"with_spaces", " /login , /logout ", []string{"/login", "/logout"}},
		{"empty_elements_dropped", "a,,b,", []string{"a", "b"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseEnvList(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseEnvList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
