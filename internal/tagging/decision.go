package tagging

// FieldDecision reports whether a metadata field qualifies for writing.
// A disabled format never qualifies; otherwise the field qualifies when
// overwriting is allowed or the current value is empty. The caller must
// still drop the write when the resolved text is empty.
//
// Batch processing and the preview estimator share this single predicate.
func FieldDecision(format string, overwrite bool, current string) bool {
	if format == "" || format == "disabled" {
		return false
	}
	return overwrite || current == ""
}
