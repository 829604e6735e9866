package util

import (
	"encoding/json"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{`7`, 7, false},
		{`7.0`, 7, false},
		{`7.9`, 7, false},
		{`"12"`, 12, false},
		{`" 12 "`, 12, false},
		{`"3.5"`, 0, true},
		{`"7.0"`, 0, true},
		{`"1e2"`, 0, true},
		{`1e2`, 100, false},
		{`-4`, -4, false},
		{`null`, 0, true},
		{`true`, 0, true},
		{`"abc"`, 0, true},
		{`""`, 0, true},
		{`{"id":1}`, 0, true},
		{`[1]`, 0, true},
		{``, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseID(json.RawMessage(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseID(%s) = %d, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%s) failed: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Fatalf("ParseID(%s) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseUintParam(t *testing.T) {
	if id, ok := ParseUintParam("42"); !ok || id != 42 {
		t.Fatalf("ParseUintParam(42) = %d, %v", id, ok)
	}
	for _, bad := range []string{"", "0", "-1", "abc", "1.5", "99999999999"} {
		if _, ok := ParseUintParam(bad); ok {
			t.Fatalf("ParseUintParam(%q) should fail", bad)
		}
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(25, 2, 10)
	if p.Pages != 3 || !p.HasNext || !p.HasPrev {
		t.Fatalf("pagination = %+v", p)
	}

	p = NewPagination(0, 1, 10)
	if p.Pages != 0 || p.HasNext || p.HasPrev {
		t.Fatalf("empty pagination = %+v", p)
	}
}
