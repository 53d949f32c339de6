package report

import "testing"

func TestHumanBytes(t *testing.T) {
	cases := []struct {
		v    uint64
		want string
	}{
		{0, "0"},
		{512, "512"},
		{1023, "1023"},
		{8192, "8 kB"},
		{1 << 20, "1.0 MB"},
		{16 << 20, "16 MB"},
		{4311818240, "4.0 GB"},
		{10 << 30, "10 GB"},
		{10*gb - gb/10, "9 GB"}, // just inside the integer-GB slack
		{1 << 40, "1 TB"},
		{3 << 40, "3 TB"},
	}
	for _, c := range cases {
		if got := HumanBytes(c.v); got != c.want {
			t.Errorf("HumanBytes(%d): got %q, want %q", c.v, got, c.want)
		}
	}
}

func TestHumanCount(t *testing.T) {
	cases := []struct {
		v    uint64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1 k"},
		{131072, "131 k"},
		{33554432, "33 M"},
		{8589934592, "8 B"},
		{68719476736, "68 B"},
		{2199023255552, "2 T"},
		{1_000_000_000_000_000, "1 Q"},
	}
	for _, c := range cases {
		if got := HumanCount(c.v); got != c.want {
			t.Errorf("HumanCount(%d): got %q, want %q", c.v, got, c.want)
		}
	}
}
