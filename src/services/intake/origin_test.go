package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginPolicy(t *testing.T) {
	p := NewOriginPolicy([]string{"https://brightlane.example", "http://localhost:8888/"})

	cases := []struct {
		name    string
		origin  string
		referer string
		want    bool
	}{
		{"no headers", "", "", true},
		{"allowed origin", "https://brightlane.example", "", true},
		{"origin case and trailing slash", "HTTPS://Brightlane.Example/", "", true},
		{"foreign origin", "https://evil.example", "", false},
		{"foreign origin wins over good referer", "https://evil.example", "https://brightlane.example/quiz", false},
		{"allowed referer", "", "https://brightlane.example/quiz?step=2", true},
		{"foreign referer", "", "https://evil.example/quiz", false},
		{"port must match", "http://localhost:3000", "", false},
		{"garbage origin", "null", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.Allowed(tc.origin, tc.referer))
		})
	}
}
