package common

import "testing"

func TestGenerateUUID(t *testing.T) {
	first := GenerateUUID()
	second := GenerateUUID()

	if first == "" {
		t.Fatal("Expected non-empty UUID")
	}
	if len(first) != 36 {
		t.Errorf("Expected UUID length 36, got %d", len(first))
	}
	if first == second {
		t.Error("Expected successive UUIDs to differ")
	}
}

func TestCompressedFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain filename",
			input:    "report.pdf",
			expected: "compressed_report.pdf",
		},
		{
			name:     "filename with path",
			input:    "/tmp/uploads/report.pdf",
			expected: "compressed_report.pdf",
		},
		{
			name:     "filename with spaces",
			input:    "annual report 2024.pdf",
			expected: "compressed_annual report 2024.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CompressedFilename(tt.input)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "bytes", bytes: 512, expected: "512 B"},
		{name: "kilobytes", bytes: 2048, expected: "2.0 KB"},
		{name: "megabytes", bytes: 5 * 1024 * 1024, expected: "5.00 MB"},
		{name: "zero", bytes: 0, expected: "0 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HumanSize(tt.bytes)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}
