package donation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildOrderClause(t *testing.T) {
	tests := []struct {
		sortBy string
		want   string
	}{
		{"", ""},
		{"created_at", "created_at ASC"},
		{"created_at:asc", "created_at ASC"},
		{"created_at:desc", "created_at DESC"},
		{"expiry_date:desc", "expiry_date DESC"},
		{"quantity:something", "quantity ASC"},
		{"donor_id:desc", ""},
		{"created_at; DROP TABLE donations", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, buildOrderClause(tt.sortBy), "sortBy=%q", tt.sortBy)
	}
}
