package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBucket(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty falls back", "", "media"},
		{"placeholder falls back", "your_bucket_id", "media"},
		{"avatar placeholder falls back", "your_avatar_bucket", "media"},
		{"media placeholder falls back", "your_media_bucket", "media"},
		{"configured value wins", "user-uploads", "user-uploads"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBucket(tt.value, "media"))
		})
	}
}
