package tagging

import (
	"regexp"
	"strings"
)

// CleanupOptions are the filename cleanup toggles. Each stage of the
// pipeline runs on the previous stage's output, so order is fixed.
type CleanupOptions struct {
	RemoveHyphens    bool
	RemoveDots       bool
	CapitalizeWords  bool
	RemoveNumbers    bool
	CamelCaseSplit   bool
	RemoveSizeSuffix bool
}

var (
	cameraPrefixRe = regexp.MustCompile(`(?i)^(DSC|IMG|DCIM|PHOTO|PIC)[-_]?\d+`)
	timestampRe    = regexp.MustCompile(`^\d{8}[-_]\d{6}`)
	sizeSuffixRe   = regexp.MustCompile(`-\d+x\d+$`)
	variantRe      = regexp.MustCompile(`-(scaled|thumb|thumbnail|medium|large)$`)
	camelRe        = regexp.MustCompile(`([a-z])([A-Z])`)
	bareNumberRe   = regexp.MustCompile(`\b\d+\b`)
	spaceRe        = regexp.MustCompile(`\s+`)
)

// CleanFilename turns a raw filename stem into a display string. Stages
// that don't match are no-ops; the result may be empty.
func CleanFilename(stem string, opts CleanupOptions, stopWords []string) string {
	s := stem

	if opts.RemoveNumbers {
		s = cameraPrefixRe.ReplaceAllString(s, "")
		s = timestampRe.ReplaceAllString(s, "")
	}
	if opts.RemoveSizeSuffix {
		s = sizeSuffixRe.ReplaceAllString(s, "")
		s = variantRe.ReplaceAllString(s, "")
	}
	if opts.CamelCaseSplit {
		s = camelRe.ReplaceAllString(s, "$1 $2")
	}
	if opts.RemoveHyphens {
		s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	}
	if opts.RemoveDots {
		s = strings.ReplaceAll(s, ".", " ")
	}
	if opts.RemoveNumbers {
		// leftover counter tokens once separators became spaces
		s = bareNumberRe.ReplaceAllString(s, "")
	}

	for _, w := range stopWords {
		if w == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
		if err != nil {
			continue
		}
		s = re.ReplaceAllString(s, "")
	}

	s = strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))

	if opts.CapitalizeWords {
		s = capitalizeWords(s)
	}
	return s
}

// MergeStopWords merges the built-in and custom comma-separated lists,
// trimming each entry and dropping empties.
func MergeStopWords(builtin, custom string) []string {
	var out []string
	for _, chunk := range []string{builtin, custom} {
		for _, w := range strings.Split(chunk, ",") {
			if w = strings.TrimSpace(w); w != "" {
				out = append(out, w)
			}
		}
	}
	return out
}

func capitalizeWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
