package types

// TranslateRequest is the body of POST /translate.
type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// LanguageDescriptor is the language description echoed back by the backend.
type LanguageDescriptor struct {
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// TranslateResponse is the body of a successful POST /translate.
// Method and the language descriptors are only sent by backends that know them.
type TranslateResponse struct {
	Input          string              `json:"input"`
	Translated     string              `json:"translated"`
	Error          *string             `json:"error"`
	Method         string              `json:"method,omitempty"`
	SourceLanguage *LanguageDescriptor `json:"source_language,omitempty"`
	TargetLanguage *LanguageDescriptor `json:"target_language,omitempty"`
}

// ErrorResponse is the body the backend sends with a non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}
