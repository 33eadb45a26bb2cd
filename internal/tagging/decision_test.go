package tagging

import "testing"

func TestFieldDecision(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		overwrite bool
		current   string
		want      bool
	}{
		{name: "disabled never qualifies", format: "disabled", overwrite: true, current: "", want: false},
		{name: "empty format never qualifies", format: "", overwrite: true, want: false},
		{name: "empty current qualifies", format: "filename", current: "", want: true},
		{name: "overwrite qualifies over existing", format: "filename", overwrite: true, current: "existing", want: true},
		{name: "existing value without overwrite skips", format: "filename", overwrite: false, current: "existing", want: false},
		{name: "custom format follows same rule", format: "custom", overwrite: false, current: "", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FieldDecision(tt.format, tt.overwrite, tt.current)
			if got != tt.want {
				t.Errorf("FieldDecision(%q, %v, %q) = %v, want %v", tt.format, tt.overwrite, tt.current, got, tt.want)
			}
		})
	}
}
