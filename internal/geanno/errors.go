package geanno

import "fmt"

// ConfigError is a user-fixable mistake in a database table or a Config
// built through the API: an unknown token, a bad count, a NAME.COL pointing
// past a reference file's columns
type ConfigError struct {
	// File is the database table the config came from. Empty for configs
	// built through the API
	File string

	// Row is the 1-based line of the table the config came from
	Row int

	// Reason says what was wrong
	Reason string
}

func (e *ConfigError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("configuration error: %s", e.Reason)
	}
	if e.Row > 0 {
		return fmt.Sprintf("configuration error in %s row %d: %s", e.File, e.Row, e.Reason)
	}
	return fmt.Sprintf("configuration error in %s: %s", e.File, e.Reason)
}

// DataError is a malformed interval in a base regions file or a reference
// file: too few columns, a non-integer coordinate, an empty span
type DataError struct {
	// File is the file the interval came from
	File string

	// Line is the 1-based line of the malformed interval
	Line int

	// Reason says what was wrong
	Reason string
}

func (e *DataError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("data error: %s", e.Reason)
	}
	if e.Line > 0 {
		return fmt.Sprintf("data error in %s line %d: %s", e.File, e.Line, e.Reason)
	}
	return fmt.Sprintf("data error in %s: %s", e.File, e.Reason)
}
