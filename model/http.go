package model

// TransposeRequest moves every chord of a ParseRequest. Without Letters the
// chords are respelled from a fixed table of sharps or flats.
type TransposeRequest struct {
	Semitones int   `json:"semitones"`
	Letters   *int  `json:"letters,omitempty"`
	UseFlats  *bool `json:"use_flats,omitempty"`
}

type ParseRequestBody struct {
	Chords    []string          `json:"chords"`
	Transpose *TransposeRequest `json:"transpose,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
