package wininput

import "testing"

func TestClampInt32ToInt16(t *testing.T) {
	cases := []struct {
		in   int32
		want int16
	}{
		{in: 0, want: 0},
		{in: 1920, want: 1920},
		{in: -1280, want: -1280},
		{in: 40000, want: 32767},
		{in: -40000, want: -32768},
	}

	for _, tc := range cases {
		if got := clampInt32ToInt16(tc.in); got != tc.want {
			t.Fatalf("clampInt32ToInt16(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
