package messages

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed strings.it.yaml
var defaultCatalog []byte

// Catalog holds every sentence the skill can speak.
type Catalog struct {
	Welcome              string `yaml:"WELCOME_MESSAGE"`
	CardTitle            string `yaml:"CARD_TITLE"`
	StartDictation       string `yaml:"START_DICTATION"`
	Listening            string `yaml:"LISTENING"`
	NotRecordingStart    string `yaml:"NOT_RECORDING_START"`
	ContinueOrFinish     string `yaml:"CONTINUE_OR_FINISH"`
	Saved                string `yaml:"SAVED"`
	NoTextRecorded       string `yaml:"NO_TEXT_RECORDED"`
	WhatToDoNext         string `yaml:"WHAT_TO_DO_NEXT"`
	WriteOrClose         string `yaml:"WRITE_OR_CLOSE"`
	NotRecordingWhatNext string `yaml:"NOT_RECORDING_WHAT_NEXT"`
	Goodbye              string `yaml:"GOODBYE"`
	EmailPermission      string `yaml:"EMAIL_PERMISSION_NEEDED"`
	NoNotesToSend        string `yaml:"NO_NOTES_TO_SEND"`
	EmailNotFound        string `yaml:"EMAIL_NOT_FOUND"`
	EmailSent            string `yaml:"EMAIL_SENT"`
	EmailError           string `yaml:"EMAIL_ERROR"`
	Help                 string `yaml:"HELP_MESSAGE"`
	Error                string `yaml:"ERROR_MESSAGE"`
}

// Default returns the embedded Italian catalog.
func Default() *Catalog {
	var c Catalog
	if err := yaml.Unmarshal(defaultCatalog, &c); err != nil {
		panic(fmt.Sprintf("embedded string catalog: %v", err))
	}
	return &c
}

// Load reads a catalog file on top of the embedded one, so a partial file
// only replaces the sentences it names. An empty path returns the default.
func Load(path string) (*Catalog, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading string catalog: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing string catalog: %w", err)
	}
	return c, nil
}
