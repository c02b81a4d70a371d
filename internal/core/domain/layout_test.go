package domain_test

import (
	"path/filepath"
	"testing"

	"go.trai.ch/filehash/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DefaultFilehashPath",
			got:      domain.DefaultFilehashPath(),
			expected: ".filehash",
		},
		{
			name:     "DefaultCachePath",
			got:      domain.DefaultCachePath(),
			expected: filepath.Join(".filehash", "cache"),
		},
		{
			name:     "ArchivesPath",
			got:      domain.ArchivesPath(filepath.Join("x", "cache")),
			expected: filepath.Join("x", "cache", "archives"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}
