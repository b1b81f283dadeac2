package units

import (
	"errors"
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		q        float64
		from, to string
		want     float64
	}{
		{"identity", 5, "m", "m", 5},
		{"m to mm", 0.5, "m", "mm", 500},
		{"mm to m", 500, "mm", "m", 0.5},
		{"psi to Pa", 1, "psi", "Pa", 6895},
		{"N to lbf", 100, "N", "lbf", 22.48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.q, tt.from, tt.to)
			if err != nil {
				t.Fatalf("Convert: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9*math.Max(1, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConvert_Unknown(t *testing.T) {
	_, err := Convert(1, "m", "psi")
	if !errors.Is(err, ErrUnknownConversion) {
		t.Errorf("expected ErrUnknownConversion, got %v", err)
	}
}

func TestConversions(t *testing.T) {
	got := Conversions("kg")
	want := []string{"kg", "g", "lb", "oz"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestConvertAll(t *testing.T) {
	got, err := ConvertAll([]float64{1, 2}, "MPa", "Pa")
	if err != nil {
		t.Fatalf("ConvertAll: %v", err)
	}
	if math.Abs(got[0]-1e6) > 1e-6 || math.Abs(got[1]-2e6) > 1e-6 {
		t.Errorf("got %v", got)
	}
}
