package models

import "testing"

// Booleans persist as the string literals "1"/"0" and nothing else.
func TestSettingsFlagSerialization(t *testing.T) {
	s := DefaultSettings()
	s.TestMode = true
	s.OverwriteAlt = true

	m := s.ToMap()
	for _, key := range []string{
		"overwrite_alt", "overwrite_title", "overwrite_caption", "overwrite_description",
		"remove_hyphens", "remove_dots", "capitalize_words", "remove_numbers",
		"camelcase_split", "remove_size_suffix", "test_mode", "process_on_upload",
		"translate_alt", "translate_title", "translate_caption", "translate_description",
		"auto_translate_on_upload", "ecommerce_enabled", "ecommerce_process_gallery",
		"ecommerce_use_title", "ecommerce_use_category", "ecommerce_use_sku",
	} {
		v, ok := m[key]
		if !ok {
			t.Errorf("key %s missing from serialized settings", key)
			continue
		}
		if v != "1" && v != "0" {
			t.Errorf("key %s = %q, want \"1\" or \"0\"", key, v)
		}
	}
	if m["test_mode"] != "1" || m["overwrite_alt"] != "1" {
		t.Error("enabled flags not serialized as \"1\"")
	}
	if m["overwrite_title"] != "0" {
		t.Error("disabled flag not serialized as \"0\"")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := DefaultSettings()
	s.TestMode = true
	s.OverwriteCaption = true
	s.TranslationService = ServiceDeepL
	s.DeepLAPIKey = "key"
	s.TranslateTargetLang = "de"
	s.TranslateAlt = true
	s.CustomStopWords = "banner, hero"

	got := SettingsFromMap(s.ToMap())
	if got != s {
		t.Errorf("round trip changed settings:\n got %+v\nwant %+v", got, s)
	}
}

func TestSettingsFromMapDefaults(t *testing.T) {
	got := SettingsFromMap(nil)
	want := DefaultSettings()
	if got != want {
		t.Errorf("empty map should yield defaults:\n got %+v\nwant %+v", got, want)
	}
	if got.AltFormat != FormatFilename || got.CaptionFormat != FormatDisabled {
		t.Error("unexpected default formats")
	}
	if !got.RemoveHyphens || !got.CapitalizeWords || !got.ProcessOnUpload {
		t.Error("cleanup defaults should be enabled")
	}
}

func TestFieldHelpers(t *testing.T) {
	att := Attachment{
		FileName: "uploads/2023/06/IMG_0042-300x200.jpg",
		AltText:  "alt value",
		Title:    "title value",
	}
	if got := att.FileStem(); got != "IMG_0042-300x200" {
		t.Errorf("FileStem() = %q", got)
	}
	if att.FieldValue(FieldAlt) != "alt value" || att.FieldValue(FieldCaption) != "" {
		t.Error("FieldValue mismatch")
	}
	if FieldColumn(FieldAlt) != "alt_text" || FieldColumn(FieldDescription) != "description" {
		t.Error("FieldColumn mismatch")
	}
	if IsMetaField("filename") || !IsMetaField(FieldTitle) {
		t.Error("IsMetaField mismatch")
	}
}
