package ranking

import "testing"

func TestRecencyWeight(t *testing.T) {
	ref := 2024
	tests := []struct {
		name string
		year *int
		want float64
	}{
		{name: "current year", year: intp(2024), want: 1.0},
		{name: "one year old", year: intp(2023), want: 0.8},
		{name: "four years old", year: intp(2020), want: 0.2},
		{name: "at horizon", year: intp(2019), want: 0.0},
		{name: "past horizon", year: intp(1988), want: 0.0},
		{name: "future year clamps to full weight", year: intp(2030), want: 1.0},
		{name: "absent year", year: nil, want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RecencyWeight(tt.year, ref); got != tt.want {
				t.Errorf("RecencyWeight(%v, %d) = %v, want %v", tt.year, ref, got, tt.want)
			}
		})
	}
}

func intp(n int) *int { return &n }
