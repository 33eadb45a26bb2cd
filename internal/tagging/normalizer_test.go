package tagging

import (
	"reflect"
	"testing"
)

func allCleanup() CleanupOptions {
	return CleanupOptions{
		RemoveHyphens:    true,
		RemoveDots:       true,
		CapitalizeWords:  true,
		RemoveNumbers:    true,
		CamelCaseSplit:   true,
		RemoveSizeSuffix: true,
	}
}

func TestCleanFilename(t *testing.T) {
	tests := []struct {
		name      string
		stem      string
		opts      CleanupOptions
		stopWords []string
		want      string
	}{
		{
			name:      "camera prefix timestamp size suffix and stop words",
			stem:      "IMG_20230101_DSC_0042-Product-Photo-300x200",
			opts:      allCleanup(),
			stopWords: []string{"DSC", "IMG"},
			want:      "Product Photo",
		},
		{
			name: "camelcase split",
			stem: "blueWidgetCloseup",
			opts: allCleanup(),
			want: "Blue Widget Closeup",
		},
		{
			name: "scaled variant suffix",
			stem: "garden-fence-scaled",
			opts: allCleanup(),
			want: "Garden Fence",
		},
		{
			name: "dots become spaces",
			stem: "summer.trip.rome",
			opts: allCleanup(),
			want: "Summer Trip Rome",
		},
		{
			name: "hyphens kept when disabled",
			stem: "red-car",
			opts: CleanupOptions{CapitalizeWords: true},
			want: "Red-car",
		},
		{
			name:      "stop words are whole word and case insensitive",
			stem:      "photo-photographer-portrait",
			opts:      CleanupOptions{RemoveHyphens: true, CapitalizeWords: true},
			stopWords: []string{"photo"},
			want:      "Photographer Portrait",
		},
		{
			name:      "malformed stop word is skipped",
			stem:      "beach-sunset",
			opts:      CleanupOptions{RemoveHyphens: true, CapitalizeWords: true},
			stopWords: []string{"(", "beach"},
			want:      "Sunset",
		},
		{
			name: "everything stripped yields empty",
			stem: "DSC_0001",
			opts: allCleanup(),
			want: "",
		},
		{
			name: "no flags leaves stem untouched",
			stem: "IMG_1234-holiday",
			opts: CleanupOptions{},
			want: "IMG_1234-holiday",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanFilename(tt.stem, tt.opts, tt.stopWords)
			if got != tt.want {
				t.Errorf("CleanFilename(%q) = %q, want %q", tt.stem, got, tt.want)
			}
		})
	}
}

// Re-running the pipeline on its own output must be a fixpoint once the
// destructive stages (number, size suffix, camelcase) are off.
func TestCleanFilenameIdempotent(t *testing.T) {
	stems := []string{
		"IMG_20230101_DSC_0042-Product-Photo-300x200",
		"blueWidgetCloseup",
		"summer.trip.rome",
		"garden-fence-scaled",
	}
	stop := MergeStopWords("DSC, IMG, image, photo", "")
	rerun := CleanupOptions{RemoveHyphens: true, RemoveDots: true, CapitalizeWords: true}
	for _, stem := range stems {
		first := CleanFilename(stem, allCleanup(), stop)
		second := CleanFilename(first, rerun, stop)
		if first != second {
			t.Errorf("pipeline not idempotent for %q: %q then %q", stem, first, second)
		}
	}
}

func TestMergeStopWords(t *testing.T) {
	tests := []struct {
		name    string
		builtin string
		custom  string
		want    []string
	}{
		{
			name:    "both lists trimmed and merged",
			builtin: "DSC, IMG ",
			custom:  " foto,screenshot",
			want:    []string{"DSC", "IMG", "foto", "screenshot"},
		},
		{
			name:    "empty entries dropped",
			builtin: "DSC,,  ,IMG",
			custom:  "",
			want:    []string{"DSC", "IMG"},
		},
		{
			name: "all empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeStopWords(tt.builtin, tt.custom)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeStopWords(%q, %q) = %v, want %v", tt.builtin, tt.custom, got, tt.want)
			}
		})
	}
}
