package notescmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	prepareDataDirMessageType = "jotdown.notes.prepare_data_dir"
	warmNotesMessageType      = "jotdown.notes.warm"
	parseNoteMessageType      = "jotdown.notes.parse"
)

// PrepareDataDirCommand creates the jots data directory and its notes
// directory.
type PrepareDataDirCommand struct{}

// Type implements command.Message.
func (PrepareDataDirCommand) Type() string { return prepareDataDirMessageType }

// Validate implements command.Message.
func (PrepareDataDirCommand) Validate() error { return nil }

// WarmNotesCommand parses stored notes so later reads hit the cache.
type WarmNotesCommand struct {
	// Limit caps how many notes are parsed, in listing order. Zero parses all.
	Limit int `json:"limit,omitempty"`
}

// Type implements command.Message.
func (WarmNotesCommand) Type() string { return warmNotesMessageType }

// Validate rejects negative limits.
func (cmd WarmNotesCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Limit, validation.Min(0).Error("limit must be zero or positive")),
	)
}

// ParseNoteCommand parses a single note and hands the result to Sink.
type ParseNoteCommand struct {
	Path string `json:"path"`
	// Sink receives the parsed note when set.
	Sink func(*ParsedNote) `json:"-"`
}

// Type implements command.Message.
func (ParseNoteCommand) Type() string { return parseNoteMessageType }

// Validate ensures a path is present.
func (cmd ParseNoteCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required.Error("path is required")),
	)
}
