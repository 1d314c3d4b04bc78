package parallel

import "testing"

func TestStrips(t *testing.T) {
	tests := []struct {
		name   string
		height int
		n      int
		want   []Strip
	}{
		{"even split", 8, 4, []Strip{{0, 2}, {2, 2}, {4, 2}, {6, 2}}},
		{"remainder to last", 10, 3, []Strip{{0, 3}, {3, 3}, {6, 4}}},
		{"single strip", 7, 1, []Strip{{0, 7}}},
		{"clamped to height", 3, 10, []Strip{{0, 1}, {1, 1}, {2, 1}}},
		{"zero height", 0, 4, nil},
		{"zero strips", 5, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strips(tt.height, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("Strips(%d, %d) = %v, want %v", tt.height, tt.n, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("strip %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestStripsCoverRowsOnce(t *testing.T) {
	for height := 1; height <= 40; height++ {
		for n := 1; n <= 12; n++ {
			rows := make([]int, height)
			for _, s := range Strips(height, n) {
				if s.Rows <= 0 {
					t.Fatalf("Strips(%d, %d) produced empty strip %v", height, n, s)
				}
				for y := s.Y; y < s.Y+s.Rows; y++ {
					rows[y]++
				}
			}
			for y, c := range rows {
				if c != 1 {
					t.Fatalf("Strips(%d, %d): row %d covered %d times", height, n, y, c)
				}
			}
		}
	}
}
