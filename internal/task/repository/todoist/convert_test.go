package todoist

import "testing"

func TestToTaskPriority(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "default", in: 1, want: 1},
		{name: "highest", in: 4, want: 4},
		{name: "missing", in: 0, want: 1},
		{name: "negative", in: -2, want: 1},
		{name: "above range", in: 9, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toTask(&Task{ID: "1", Priority: tt.in}).Priority; got != tt.want {
				t.Errorf("toTask priority %d = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
