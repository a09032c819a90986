package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"empty", 0, "[░░░░░░░░░░]   0%"},
		{"half", 50, "[█████░░░░░]  50%"},
		{"full", 100, "[██████████] 100%"},
		{"clamped low", -10, "[░░░░░░░░░░]   0%"},
		{"clamped high", 150, "[██████████] 100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderProgress(tt.pct, 10)))
		})
	}
}
