package tagging

import (
	"strings"
	"testing"
)

type stubContext struct {
	category, tags, author, date, year, month, sku string
}

func (s stubContext) Category() string { return s.category }
func (s stubContext) Tags() string     { return s.tags }
func (s stubContext) Author() string   { return s.author }
func (s stubContext) Date() string     { return s.date }
func (s stubContext) Year() string     { return s.year }
func (s stubContext) Month() string    { return s.month }
func (s stubContext) SKU() string      { return s.sku }

func TestResolveTag(t *testing.T) {
	ctx := TagContext{
		Filename:  "Product Photo",
		PostTitle: "Blue Widgets",
		SiteName:  "Acme Store",
	}
	tests := []struct {
		name   string
		format string
		custom string
		ctx    TagContext
		want   string
	}{
		{name: "disabled", format: "disabled", ctx: ctx, want: ""},
		{name: "unknown format treated as disabled", format: "bogus", ctx: ctx, want: ""},
		{name: "filename", format: "filename", ctx: ctx, want: "Product Photo"},
		{name: "posttitle", format: "posttitle", ctx: ctx, want: "Blue Widgets"},
		{
			name:   "posttitle falls back to filename",
			format: "posttitle",
			ctx:    TagContext{Filename: "Product Photo", SiteName: "Acme Store"},
			want:   "Product Photo",
		},
		{name: "sitename", format: "sitename", ctx: ctx, want: "Acme Store"},
		{name: "filename posttitle", format: "filename_posttitle", ctx: ctx, want: "Product Photo - Blue Widgets"},
		{
			name:   "filename posttitle without parent",
			format: "filename_posttitle",
			ctx:    TagContext{Filename: "Product Photo"},
			want:   "Product Photo",
		},
		{name: "filename sitename", format: "filename_sitename", ctx: ctx, want: "Product Photo - Acme Store"},
		{
			name:   "filename sitename appends even when empty",
			format: "filename_sitename",
			ctx:    TagContext{Filename: "Product Photo"},
			want:   "Product Photo -",
		},
		{
			name:   "custom with placeholders",
			format: "custom",
			custom: "{filename} from {sitename} ({year})",
			ctx:    ctx,
			want:   "Product Photo from Acme Store (2023)",
		},
	}
	ext := stubContext{category: "Widgets", tags: "blue, widget", author: "Jo", date: "2023-01-01", year: "2023", month: "01", sku: "BW-1"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTag(tt.format, tt.custom, tt.ctx, ext)
			if got != tt.want {
				t.Errorf("ResolveTag(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

// Every placeholder must be substituted even when its value is empty; no
// literal {placeholder} text may survive resolution.
func TestResolveTagSubstitutionTotal(t *testing.T) {
	tpl := "{filename}|{posttitle}|{sitename}|{category}|{tags}|{author}|{date}|{year}|{month}|{sku}"

	got := ResolveTag("custom", tpl, TagContext{}, stubContext{})
	if strings.ContainsAny(got, "{}") {
		t.Errorf("unresolved placeholder left in %q", got)
	}

	got = ResolveTag("custom", tpl, TagContext{}, nil)
	if strings.ContainsAny(got, "{}") {
		t.Errorf("nil extended context left placeholder in %q", got)
	}
}

func TestResolveTagTrimsResult(t *testing.T) {
	got := ResolveTag("custom", "  {filename}  ", TagContext{Filename: "Sunset"}, nil)
	if got != "Sunset" {
		t.Errorf("got %q, want %q", got, "Sunset")
	}
}
