package schedule

import "testing"

func TestToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"10:30", 630},
		{"22:30", 1350},
		{"10:30:00", 630},
		{"10:30:00-03:00", 630},
		{"10:30:15+02:00", 630},
		{"7:5", 425},
		{"10", 600},
		{"10:", 600},
		{":30", 30},
		{"", 0},
		{"ab:cd", 0},
		{"10:xx", 600},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ToMinutes(tt.in); got != tt.want {
				t.Fatalf("ToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestMinutesLabel(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{480, "08:00"},
		{510, "08:30"},
		{1320, "22:00"},
		{1350, "22:30"},
		{0, "00:00"},
	}

	for _, tt := range tests {
		if got := minutesLabel(tt.in); got != tt.want {
			t.Fatalf("minutesLabel(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
