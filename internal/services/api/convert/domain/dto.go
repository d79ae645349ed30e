// Package domain holds DTOs for the convert http and service contracts
package domain

// DetectInput is the body of POST /convert/detect
type DetectInput struct {
	Text string `json:"text" validate:"required" example:"function hello() { console.log('hi'); }"`
}

// Alternative is one non-zero classifier score
type Alternative struct {
	Language string `json:"language" example:"typescript"`
	Name     string `json:"name" example:"TypeScript"`
	Score    int    `json:"score" example:"2"`
}

// DetectOutput reports the detected language; Language is empty when nothing matched
type DetectOutput struct {
	Detected     bool          `json:"detected"`
	Language     string        `json:"language" example:"javascript"`
	Name         string        `json:"name,omitempty" example:"JavaScript"`
	Icon         string        `json:"icon,omitempty"`
	Alternatives []Alternative `json:"alternatives"`
}

// SuggestInput is the body of POST /convert/suggest; Language is detected when omitted
type SuggestInput struct {
	Text     string `json:"text" validate:"required"`
	Language string `json:"language,omitempty" validate:"omitempty,langtag" example:"python"`
}

// Suggestion is one offered conversion
type Suggestion struct {
	ID          string `json:"id" example:"python-javascript"`
	Name        string `json:"name" example:"Convert to JavaScript"`
	Description string `json:"description" example:"Transform Python code to JavaScript"`
	Icon        string `json:"icon"`
	From        string `json:"from" example:"python"`
	To          string `json:"to" example:"javascript"`
}

// SuggestOutput lists suggestions for the (possibly detected) language
type SuggestOutput struct {
	Language    string       `json:"language"`
	Suggestions []Suggestion `json:"suggestions"`
}

// RunInput is the body of POST /convert/run
type RunInput struct {
	Text    string `json:"text" validate:"required"`
	From    string `json:"from" validate:"required,langtag" example:"javascript"`
	To      string `json:"to" validate:"required,langtag" example:"typescript"`
	Session string `json:"session,omitempty" validate:"omitempty,max=128" example:"9b2f8c1e-4a57-4a4e-bd0b-0c1d7c6f2e11"`

	// Client keys the rate limiter; set by the transport, never bound from json
	Client string `json:"-" swaggerignore:"true"`
}

// RunOutput is the converted text plus how it was produced
type RunOutput struct {
	Output     string     `json:"output"`
	Kind       string     `json:"kind" example:"rule"`
	Suggestion Suggestion `json:"suggestion"`
	DurationMs int64      `json:"duration_ms" example:"1"`
	Remaining  int        `json:"remaining" example:"99"`
}

// CodecInput is the body of POST /convert/codec
type CodecInput struct {
	Text string `json:"text" validate:"required"`
	From string `json:"from" validate:"required,oneof=json yaml xml" example:"json"`
	To   string `json:"to" validate:"required,oneof=json yaml xml" example:"yaml"`
}

// CodecOutput is the re-encoded document
type CodecOutput struct {
	Output     string `json:"output"`
	DurationMs int64  `json:"duration_ms"`
}

// Language describes one catalog entry
type Language struct {
	Tag      string   `json:"tag" example:"python"`
	Name     string   `json:"name" example:"Python"`
	Icon     string   `json:"icon"`
	Category string   `json:"category" example:"programming"`
	Targets  []string `json:"targets,omitempty"`
}

// Pair is a conversion served by a dedicated rule or codec
type Pair struct {
	From string `json:"from"`
	To   string `json:"to"`
	Kind string `json:"kind"`
}

// LanguagesOutput is the catalog listing
type LanguagesOutput struct {
	Version   int        `json:"version"`
	Languages []Language `json:"languages"`
	Pairs     []Pair     `json:"pairs"`
}
