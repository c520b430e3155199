package models

type Language struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	NameEng string `json:"name_eng"`
}

// Languages is the fixed catalog offered on the landing screen.
var Languages = []Language{
	{Code: "hi", Name: "हिन्दी", NameEng: "Hindi"},
	{Code: "en", Name: "English", NameEng: "English"},
	{Code: "bn", Name: "বাংলা", NameEng: "Bengali"},
	{Code: "te", Name: "తెలుగు", NameEng: "Telugu"},
	{Code: "ta", Name: "தமிழ்", NameEng: "Tamil"},
	{Code: "gu", Name: "ગુજરાતી", NameEng: "Gujarati"},
	{Code: "kn", Name: "ಕನ್ನಡ", NameEng: "Kannada"},
	{Code: "ml", Name: "മലയാളം", NameEng: "Malayalam"},
	{Code: "mr", Name: "मराठी", NameEng: "Marathi"},
	{Code: "pa", Name: "ਪੰਜਾਬੀ", NameEng: "Punjabi"},
	{Code: "or", Name: "ଓଡ଼ିଆ", NameEng: "Odia"},
	{Code: "as", Name: "অসমীয়া", NameEng: "Assamese"},
}

func LanguageByCode(code string) (Language, bool) {
	for _, lang := range Languages {
		if lang.Code == code {
			return lang, true
		}
	}
	return Language{}, false
}
