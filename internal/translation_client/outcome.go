package translation_client

import (
	"net/http"

	"translate-bridge/pkg/types"
)

// Result is the structured data of a translation response.
type Result struct {
	Input          string
	Translated     string
	// Optional metadata, only sent by some backends.
	Method         string
	SourceLanguage *types.LanguageDescriptor
	TargetLanguage *types.LanguageDescriptor
}

// Outcome is the value of a call that reached the backend and decoded.
// It is either Translated or SoftFailure.
type Outcome interface {
	isOutcome()
	// Data returns the decoded payload of either variant.
	Data() Result
}

// Translated is a clean success.
type Translated struct {
	Result
}

// SoftFailure is a 2xx response whose payload carries an error message.
// Its Translated field is not a usable translation.
type SoftFailure struct {
	Result
	StatusCode int
	Message    string
}

func (Translated) isOutcome() {}
func (SoftFailure) isOutcome() {}

func (t Translated) Data() Result { return t.Result }
func (s SoftFailure) Data() Result { return s.Result }

// Err converts the soft failure into a BackendError.
func (s SoftFailure) Err() error {
	code := s.StatusCode
	if code == 0 {
		code = http.StatusOK
	}
	return &BackendError{StatusCode: code, Message: s.Message}
}
