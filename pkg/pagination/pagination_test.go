package pagination

import "testing"

func TestNormalizeLimit(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, DefaultLimit},
		{-5, DefaultLimit},
		{10, 10},
		{MaxLimit, MaxLimit},
		{MaxLimit + 1, MaxLimit},
	}
	for _, tc := range cases {
		if got := NormalizeLimit(tc.in); got != tc.want {
			t.Fatalf("NormalizeLimit(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestOffset(t *testing.T) {
	if got := (Params{Page: 1, Limit: 10}).Offset(); got != 0 {
		t.Fatalf("first page offset = %d, want 0", got)
	}
	if got := (Params{Page: 3, Limit: 10}).Offset(); got != 20 {
		t.Fatalf("third page offset = %d, want 20", got)
	}
	if got := (Params{Page: 0, Limit: 0}).Offset(); got != 0 {
		t.Fatalf("unset params offset = %d, want 0", got)
	}
}
