package model

type ChordView struct {
	Notation  string   `json:"notation"`
	Input     string   `json:"input"`
	Root      string   `json:"root"`
	Quality   string   `json:"quality"`
	Added     []string `json:"added"`
	Bass      string   `json:"bass,omitempty"`
	Notes     []string `json:"notes"`
	Degrees   []int    `json:"degrees"`
	Symbols   []string `json:"symbols"`
	Intervals []int    `json:"intervals"`

	// NOTE: only set when the bass is a chord tone
	Inversion *int `json:"inversion,omitempty"`
}

type KeyView struct {
	Key      string   `json:"key"`
	Tonic    string   `json:"tonic"`
	Mode     string   `json:"mode"`
	Submode  string   `json:"submode,omitempty"`
	Notes    []string `json:"notes"`
	Degrees  []string `json:"degrees"`
	Steps    []int    `json:"steps"`
	Diatonic []string `json:"diatonic"`
	Relative string   `json:"relative,omitempty"`
}
