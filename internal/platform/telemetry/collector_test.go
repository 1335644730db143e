package telemetry

import (
	"errors"
	"testing"
)

func TestParseCollector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		endpoint string
		want     collector
		wantErr  error
	}{
		{endpoint: "http://otel-collector:4318", want: collector{host: "otel-collector:4318"}},
		{endpoint: "https://otel.example.com:443", want: collector{host: "otel.example.com:443", tls: true}},
		{endpoint: "otel-collector:4318", want: collector{host: "otel-collector:4318"}},
		{endpoint: "", wantErr: ErrEndpointRequired},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			t.Parallel()

			got, err := parseCollector(tt.endpoint)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("parseCollector(%q) error = %v, want %v", tt.endpoint, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseCollector(%q) = %+v, want %+v", tt.endpoint, got, tt.want)
			}
		})
	}
}
