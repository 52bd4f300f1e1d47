package extract

import (
	"reflect"
	"testing"

	"github.com/hyperjump/osusume/internal/models"
)

func TestPages(t *testing.T) {
	tests := []struct {
		name   string
		extent any
		want   *int
	}{
		{name: "max across tokens", extent: []any{"21cm", "x, 586p"}, want: intp(586)},
		{name: "max within and across tokens", extent: []any{"viii, 23p", "30p"}, want: intp(30)},
		{name: "space before p", extent: "123 p", want: intp(123)},
		{name: "uppercase P", extent: "57P", want: intp(57)},
		{name: "p must end the word", extent: "300pixels", want: nil},
		{name: "no page token", extent: "21cm", want: nil},
		{name: "absent field", extent: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := models.RawRecord{}
			if tt.extent != nil {
				raw["extent"] = tt.extent
			}
			got := Pages(raw)
			if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
				t.Errorf("Pages(%v) = %v, want %v", tt.extent, fmtInt(got), fmtInt(tt.want))
			}
		})
	}
}

func TestYear(t *testing.T) {
	tests := []struct {
		name string
		raw  models.RawRecord
		want *int
	}{
		{
			name: "mixed-era text",
			raw:  models.RawRecord{"issued": "民國77[1988]"},
			want: intp(1988),
		},
		{
			name: "higher-priority field wins",
			raw: models.RawRecord{
				"issued":           "2001",
				"publication_date": "1977",
			},
			want: intp(2001),
		},
		{
			name: "skips fields without a plausible year",
			raw: models.RawRecord{
				"issued":           "n.d.",
				"publication_date": "c1999",
			},
			want: intp(1999),
		},
		{
			name: "future year passes",
			raw:  models.RawRecord{"issued": "2099"},
			want: intp(2099),
		},
		{
			name: "18xx not matched",
			raw:  models.RawRecord{"issued": "1850"},
			want: nil,
		},
		{name: "no candidate fields", raw: models.RawRecord{"title": "x"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Year(tt.raw)
			if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
				t.Errorf("Year() = %v, want %v", fmtInt(got), fmtInt(tt.want))
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	raw := models.RawRecord{
		"title":       "조선시대 도서관사",
		"subject":     []any{"도서관학", "역사"},
		"description": map[string]any{"@value": "조선시대 기록문화"},
		"creator":     "김철수",
		"publisher":   "한국도서관협회",
		"issued":      "2021",
		"extent":      "x, 321p ; 23cm",
	}

	rec := Normalize(raw)
	if rec.Title != "조선시대 도서관사" {
		t.Errorf("Title = %q", rec.Title)
	}
	if !reflect.DeepEqual(rec.Subjects, []string{"도서관학", "역사"}) {
		t.Errorf("Subjects = %v", rec.Subjects)
	}
	if rec.Description != "조선시대 기록문화" {
		t.Errorf("Description = %q", rec.Description)
	}
	if rec.Year == nil || *rec.Year != 2021 {
		t.Errorf("Year = %v", fmtInt(rec.Year))
	}
	if rec.Pages == nil || *rec.Pages != 321 {
		t.Errorf("Pages = %v", fmtInt(rec.Pages))
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	raw := models.RawRecord{
		"title":   []any{"제목", map[string]any{"alt": "alternate"}},
		"subject": map[string]any{"a": "one", "b": "two"},
		"issued":  "민국77[1988] 서울",
		"extent":  []any{"21cm", "x, 586p"},
	}
	first := Normalize(raw)
	for i := 0; i < 20; i++ {
		if got := Normalize(raw); !reflect.DeepEqual(got, first) {
			t.Fatalf("Normalize not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestNormalizeFallbacks(t *testing.T) {
	rec := Normalize(models.RawRecord{})
	if rec.Title != models.UntitledPlaceholder {
		t.Errorf("missing title should use placeholder, got %q", rec.Title)
	}
	if rec.Subjects != nil || rec.Description != "" || rec.Creator != "" || rec.Publisher != "" {
		t.Errorf("missing fields should be empty: %+v", rec)
	}
	if rec.Year != nil || rec.Pages != nil {
		t.Errorf("missing year/pages should be nil: %+v", rec)
	}
}

func intp(n int) *int { return &n }

func fmtInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
