package models

// Setting is a single persisted configuration row. The whole engine
// configuration is one fixed set of keys; boolean values are stored as the
// string literals "1"/"0" in this table, never as native booleans.
type Setting struct {
	BaseModel
	SettingKey   string `gorm:"uniqueIndex;not null" json:"setting_key"`
	SettingValue string `json:"setting_value"`
}

// Tag format selectors
const (
	FormatDisabled          = "disabled"
	FormatFilename          = "filename"
	FormatPostTitle         = "posttitle"
	FormatSiteName          = "sitename"
	FormatFilenamePostTitle = "filename_posttitle"
	FormatFilenameSiteName  = "filename_sitename"
	FormatCustom            = "custom"
)

// Translation service tags
const (
	ServiceGoogle   = "google"
	ServiceDeepL    = "deepl"
	ServiceYandex   = "yandex"
	ServiceLibre    = "libre"
	ServiceMyMemory = "mymemory"
)

// Settings is the typed in-memory form of the persisted configuration.
// Booleans are real booleans here; the "1"/"0" representation exists only
// at the FromMap/ToMap serialization boundary.
type Settings struct {
	AltFormat         string `json:"alt_format"`
	TitleFormat       string `json:"title_format"`
	CaptionFormat     string `json:"caption_format"`
	DescriptionFormat string `json:"description_format"`

	AltCustomText         string `json:"alt_custom_text"`
	TitleCustomText       string `json:"title_custom_text"`
	CaptionCustomText     string `json:"caption_custom_text"`
	DescriptionCustomText string `json:"description_custom_text"`

	OverwriteAlt         bool `json:"overwrite_alt"`
	OverwriteTitle       bool `json:"overwrite_title"`
	OverwriteCaption     bool `json:"overwrite_caption"`
	OverwriteDescription bool `json:"overwrite_description"`

	RemoveHyphens    bool `json:"remove_hyphens"`
	RemoveDots       bool `json:"remove_dots"`
	CapitalizeWords  bool `json:"capitalize_words"`
	RemoveNumbers    bool `json:"remove_numbers"`
	CamelCaseSplit   bool `json:"camelcase_split"`
	RemoveSizeSuffix bool `json:"remove_size_suffix"`

	StopWords       string `json:"stop_words"`
	CustomStopWords string `json:"custom_stop_words"`

	TestMode        bool   `json:"test_mode"`
	ProcessOnUpload bool   `json:"process_on_upload"`
	SiteName        string `json:"site_name"`

	TranslationService  string `json:"translation_service"`
	GoogleAPIKey        string `json:"google_api_key"`
	DeepLAPIKey         string `json:"deepl_api_key"`
	DeepLEndpoint       string `json:"deepl_endpoint"`
	YandexAPIKey        string `json:"yandex_api_key"`
	YandexFolderID      string `json:"yandex_folder_id"`
	LibreEndpoint       string `json:"libre_endpoint"`
	LibreAPIKey         string `json:"libre_api_key"`
	MyMemoryEmail       string `json:"mymemory_email"`
	TranslateSourceLang string `json:"translate_source_lang"`
	TranslateTargetLang string `json:"translate_target_lang"`

	TranslateAlt          bool `json:"translate_alt"`
	TranslateTitle        bool `json:"translate_title"`
	TranslateCaption      bool `json:"translate_caption"`
	TranslateDescription  bool `json:"translate_description"`
	AutoTranslateOnUpload bool `json:"auto_translate_on_upload"`

	EcommerceEnabled        bool `json:"ecommerce_enabled"`
	EcommerceProcessGallery bool `json:"ecommerce_process_gallery"`
	EcommerceUseTitle       bool `json:"ecommerce_use_title"`
	EcommerceUseCategory    bool `json:"ecommerce_use_category"`
	EcommerceUseSKU         bool `json:"ecommerce_use_sku"`
}

// DefaultSettings returns the configuration seeded on first activation.
func DefaultSettings() Settings {
	return Settings{
		AltFormat:           FormatFilename,
		TitleFormat:         FormatFilename,
		CaptionFormat:       FormatDisabled,
		DescriptionFormat:   FormatDisabled,
		RemoveHyphens:       true,
		RemoveDots:          true,
		CapitalizeWords:     true,
		RemoveNumbers:       true,
		CamelCaseSplit:      true,
		RemoveSizeSuffix:    true,
		StopWords:           "DSC, IMG, image, photo, picture, pic, screenshot, foto",
		ProcessOnUpload:     true,
		SiteName:            "Media Library",
		TranslationService:  ServiceGoogle,
		TranslateSourceLang: "en",
	}
}

// FieldFormat returns the format selector configured for a metadata field.
func (s Settings) FieldFormat(field string) string {
	switch field {
	case FieldAlt:
		return s.AltFormat
	case FieldTitle:
		return s.TitleFormat
	case FieldCaption:
		return s.CaptionFormat
	case FieldDescription:
		return s.DescriptionFormat
	}
	return FormatDisabled
}

// FieldCustomText returns the custom template configured for a metadata field.
func (s Settings) FieldCustomText(field string) string {
	switch field {
	case FieldAlt:
		return s.AltCustomText
	case FieldTitle:
		return s.TitleCustomText
	case FieldCaption:
		return s.CaptionCustomText
	case FieldDescription:
		return s.DescriptionCustomText
	}
	return ""
}

// FieldOverwrite returns the overwrite flag configured for a metadata field.
func (s Settings) FieldOverwrite(field string) bool {
	switch field {
	case FieldAlt:
		return s.OverwriteAlt
	case FieldTitle:
		return s.OverwriteTitle
	case FieldCaption:
		return s.OverwriteCaption
	case FieldDescription:
		return s.OverwriteDescription
	}
	return false
}

// FieldTranslate returns the translate-enable flag for a metadata field.
func (s Settings) FieldTranslate(field string) bool {
	switch field {
	case FieldAlt:
		return s.TranslateAlt
	case FieldTitle:
		return s.TranslateTitle
	case FieldCaption:
		return s.TranslateCaption
	case FieldDescription:
		return s.TranslateDescription
	}
	return false
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func isSet(v string) bool { return v == "1" }

// ToMap serializes the settings into the persisted key/value representation.
// Every boolean becomes "1" or "0".
func (s Settings) ToMap() map[string]string {
	return map[string]string{
		"alt_format":                s.AltFormat,
		"title_format":              s.TitleFormat,
		"caption_format":            s.CaptionFormat,
		"description_format":        s.DescriptionFormat,
		"alt_custom_text":           s.AltCustomText,
		"title_custom_text":         s.TitleCustomText,
		"caption_custom_text":       s.CaptionCustomText,
		"description_custom_text":   s.DescriptionCustomText,
		"overwrite_alt":             flag(s.OverwriteAlt),
		"overwrite_title":           flag(s.OverwriteTitle),
		"overwrite_caption":         flag(s.OverwriteCaption),
		"overwrite_description":     flag(s.OverwriteDescription),
		"remove_hyphens":            flag(s.RemoveHyphens),
		"remove_dots":               flag(s.RemoveDots),
		"capitalize_words":          flag(s.CapitalizeWords),
		"remove_numbers":            flag(s.RemoveNumbers),
		"camelcase_split":           flag(s.CamelCaseSplit),
		"remove_size_suffix":        flag(s.RemoveSizeSuffix),
		"stop_words":                s.StopWords,
		"custom_stop_words":         s.CustomStopWords,
		"test_mode":                 flag(s.TestMode),
		"process_on_upload":         flag(s.ProcessOnUpload),
		"site_name":                 s.SiteName,
		"translation_service":       s.TranslationService,
		"google_api_key":            s.GoogleAPIKey,
		"deepl_api_key":             s.DeepLAPIKey,
		"deepl_endpoint":            s.DeepLEndpoint,
		"yandex_api_key":            s.YandexAPIKey,
		"yandex_folder_id":          s.YandexFolderID,
		"libre_endpoint":            s.LibreEndpoint,
		"libre_api_key":             s.LibreAPIKey,
		"mymemory_email":            s.MyMemoryEmail,
		"translate_source_lang":     s.TranslateSourceLang,
		"translate_target_lang":     s.TranslateTargetLang,
		"translate_alt":             flag(s.TranslateAlt),
		"translate_title":           flag(s.TranslateTitle),
		"translate_caption":         flag(s.TranslateCaption),
		"translate_description":     flag(s.TranslateDescription),
		"auto_translate_on_upload":  flag(s.AutoTranslateOnUpload),
		"ecommerce_enabled":         flag(s.EcommerceEnabled),
		"ecommerce_process_gallery": flag(s.EcommerceProcessGallery),
		"ecommerce_use_title":       flag(s.EcommerceUseTitle),
		"ecommerce_use_category":    flag(s.EcommerceUseCategory),
		"ecommerce_use_sku":         flag(s.EcommerceUseSKU),
	}
}

// SettingsFromMap builds typed settings from the persisted key/value rows.
// Missing keys fall back to defaults.
func SettingsFromMap(m map[string]string) Settings {
	s := DefaultSettings()
	get := func(key, def string) string {
		if v, ok := m[key]; ok {
			return v
		}
		return def
	}
	getFlag := func(key string, def bool) bool {
		if v, ok := m[key]; ok {
			return isSet(v)
		}
		return def
	}

	s.AltFormat = get("alt_format", s.AltFormat)
	s.TitleFormat = get("title_format", s.TitleFormat)
	s.CaptionFormat = get("caption_format", s.CaptionFormat)
	s.DescriptionFormat = get("description_format", s.DescriptionFormat)
	s.AltCustomText = get("alt_custom_text", "")
	s.TitleCustomText = get("title_custom_text", "")
	s.CaptionCustomText = get("caption_custom_text", "")
	s.DescriptionCustomText = get("description_custom_text", "")
	s.OverwriteAlt = getFlag("overwrite_alt", false)
	s.OverwriteTitle = getFlag("overwrite_title", false)
	s.OverwriteCaption = getFlag("overwrite_caption", false)
	s.OverwriteDescription = getFlag("overwrite_description", false)
	s.RemoveHyphens = getFlag("remove_hyphens", s.RemoveHyphens)
	s.RemoveDots = getFlag("remove_dots", s.RemoveDots)
	s.CapitalizeWords = getFlag("capitalize_words", s.CapitalizeWords)
	s.RemoveNumbers = getFlag("remove_numbers", s.RemoveNumbers)
	s.CamelCaseSplit = getFlag("camelcase_split", s.CamelCaseSplit)
	s.RemoveSizeSuffix = getFlag("remove_size_suffix", s.RemoveSizeSuffix)
	s.StopWords = get("stop_words", s.StopWords)
	s.CustomStopWords = get("custom_stop_words", "")
	s.TestMode = getFlag("test_mode", false)
	s.ProcessOnUpload = getFlag("process_on_upload", s.ProcessOnUpload)
	s.SiteName = get("site_name", s.SiteName)
	s.TranslationService = get("translation_service", s.TranslationService)
	s.GoogleAPIKey = get("google_api_key", "")
	s.DeepLAPIKey = get("deepl_api_key", "")
	s.DeepLEndpoint = get("deepl_endpoint", "")
	s.YandexAPIKey = get("yandex_api_key", "")
	s.YandexFolderID = get("yandex_folder_id", "")
	s.LibreEndpoint = get("libre_endpoint", "")
	s.LibreAPIKey = get("libre_api_key", "")
	s.MyMemoryEmail = get("mymemory_email", "")
	s.TranslateSourceLang = get("translate_source_lang", s.TranslateSourceLang)
	s.TranslateTargetLang = get("translate_target_lang", "")
	s.TranslateAlt = getFlag("translate_alt", false)
	s.TranslateTitle = getFlag("translate_title", false)
	s.TranslateCaption = getFlag("translate_caption", false)
	s.TranslateDescription = getFlag("translate_description", false)
	s.AutoTranslateOnUpload = getFlag("auto_translate_on_upload", false)
	s.EcommerceEnabled = getFlag("ecommerce_enabled", false)
	s.EcommerceProcessGallery = getFlag("ecommerce_process_gallery", false)
	s.EcommerceUseTitle = getFlag("ecommerce_use_title", false)
	s.EcommerceUseCategory = getFlag("ecommerce_use_category", false)
	s.EcommerceUseSKU = getFlag("ecommerce_use_sku", false)
	return s
}

// SettingsExport is the portable settings snapshot produced by the
// export operation and accepted back by import.
type SettingsExport struct {
	Version    string            `json:"version"`
	ExportedAt string            `json:"exported_at"`
	Settings   map[string]string `json:"settings"`
}

// ValidFormats lists the accepted format selectors, used by settings import validation.
var ValidFormats = []string{
	FormatDisabled, FormatFilename, FormatPostTitle, FormatSiteName,
	FormatFilenamePostTitle, FormatFilenameSiteName, FormatCustom,
}

// ValidServices lists the accepted translation service tags.
var ValidServices = []string{
	ServiceGoogle, ServiceDeepL, ServiceYandex, ServiceLibre, ServiceMyMemory,
}
