package tagging

import "strings"

// TagContext carries the cheap inputs every format can use.
type TagContext struct {
	Filename  string
	PostTitle string
	SiteName  string
}

// ExtendedContext supplies the extra placeholder values used by the
// custom format. Implementations resolve lazily; none of these are
// touched for the built-in formats.
type ExtendedContext interface {
	Category() string
	Tags() string
	Author() string
	Date() string
	Year() string
	Month() string
	SKU() string
}

// ResolveTag produces the final field text for a format selector.
// The result is always trimmed and may be empty; disabled always
// resolves to the empty string.
func ResolveTag(format, customText string, ctx TagContext, ext ExtendedContext) string {
	var out string
	switch format {
	case "filename":
		out = ctx.Filename
	case "posttitle":
		if ctx.PostTitle != "" {
			out = ctx.PostTitle
		} else {
			out = ctx.Filename
		}
	case "sitename":
		out = ctx.SiteName
	case "filename_posttitle":
		out = ctx.Filename
		if ctx.PostTitle != "" {
			out += " - " + ctx.PostTitle
		}
	case "filename_sitename":
		out = ctx.Filename + " - " + ctx.SiteName
	case "custom":
		out = substitute(customText, ctx, ext)
	default:
		return ""
	}
	return strings.TrimSpace(out)
}

// substitute replaces every placeholder, absent values becoming empty
// strings so no literal {placeholder} survives.
func substitute(tpl string, ctx TagContext, ext ExtendedContext) string {
	category, tags, author, date, year, month, sku := "", "", "", "", "", "", ""
	if ext != nil {
		category = ext.Category()
		tags = ext.Tags()
		author = ext.Author()
		date = ext.Date()
		year = ext.Year()
		month = ext.Month()
		sku = ext.SKU()
	}
	return strings.NewReplacer(
		"{filename}", ctx.Filename,
		"{posttitle}", ctx.PostTitle,
		"{sitename}", ctx.SiteName,
		"{category}", category,
		"{tags}", tags,
		"{author}", author,
		"{date}", date,
		"{year}", year,
		"{month}", month,
		"{sku}", sku,
	).Replace(tpl)
}
