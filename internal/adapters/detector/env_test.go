package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/steady/internal/adapters/detector"
	"go.trai.ch/steady/internal/core/domain"
)

func TestDetectEnvironment_CI(t *testing.T) {
	tests := []struct {
		name    string
		ciValue string
		wantCI  bool
	}{
		{name: "CI=true", ciValue: "true", wantCI: true},
		{name: "CI=1", ciValue: "1", wantCI: true},
		{name: "CI=false", ciValue: "false", wantCI: false},
		{name: "unset", ciValue: "", wantCI: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)

			assert.Equal(t, tt.wantCI, detector.IsCI())
			if tt.wantCI {
				assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
			}
		})
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name   string
		format domain.LogFormat
		mode   detector.Mode
		want   domain.LogFormat
	}{
		{name: "auto interactive", format: domain.LogFormatAuto, mode: detector.ModeInteractive, want: domain.LogFormatPretty},
		{name: "auto linear", format: domain.LogFormatAuto, mode: detector.ModeLinear, want: domain.LogFormatJSON},
		{name: "empty linear", format: "", mode: detector.ModeLinear, want: domain.LogFormatJSON},
		{name: "explicit pretty", format: domain.LogFormatPretty, mode: detector.ModeLinear, want: domain.LogFormatPretty},
		{name: "explicit json", format: domain.LogFormatJSON, mode: detector.ModeInteractive, want: domain.LogFormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.ResolveFormat(tt.format, tt.mode))
		})
	}
}
