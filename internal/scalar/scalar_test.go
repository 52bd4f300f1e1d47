package scalar

import (
	"reflect"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "string", in: "hello", want: "hello"},
		{name: "integer number", in: float64(1988), want: "1988"},
		{name: "fractional number", in: 3.5, want: "3.5"},
		{name: "bool", in: true, want: "true"},
		{name: "flat list", in: []any{"a", "b"}, want: "a b"},
		{name: "nested list", in: []any{"a", []any{"b", "c"}}, want: "a b c"},
		{name: "map values joined, keys ignored", in: map[string]any{"@value": "서울"}, want: "서울"},
		{
			name: "deeply mixed",
			in:   []any{map[string]any{"v": "x"}, []any{float64(1), nil, "y"}},
			want: "x 1 y",
		},
		{name: "empty elements dropped from join", in: []any{"", "a", nil, "b"}, want: "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.in); got != tt.want {
				t.Errorf("Text(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTextMapDeterminism(t *testing.T) {
	m := map[string]any{"b": "two", "a": "one", "c": "three"}
	first := Text(m)
	for i := 0; i < 50; i++ {
		if got := Text(m); got != first {
			t.Fatalf("Text over the same map varied: %q vs %q", got, first)
		}
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{name: "nil", in: nil, want: nil},
		{name: "plain string", in: "역사", want: []string{"역사"}},
		{name: "blank string", in: "   ", want: nil},
		{name: "list", in: []any{"a", " b ", ""}, want: []string{"a", "b"}},
		{
			name: "list of maps scalarized per element",
			in:   []any{map[string]any{"label": "도서관학"}, "역사"},
			want: []string{"도서관학", "역사"},
		},
		{name: "number", in: float64(7), want: []string{"7"}},
		{name: "map", in: map[string]any{"k": "v"}, want: []string{"v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := List(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("List(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
