package generator

import (
	"fmt"
	"os"
	"strings"

	"github.com/Livins1/confgen/internal/config"
)

// sectionMarker fences the generated options section in the README. The
// same marker line appears above and below the region; everything between
// the two occurrences is replaced on each run.
const sectionMarker = "<!-- DO NOT EDIT | THIS SECTION IS AUTO-GENERATED | DO NOT EDIT -->"

// spliceSection replaces the region between the start and end markers with
// replacement. The end marker is searched strictly after the start marker's
// last byte, so an empty region and identical marker strings both work.
// Every byte before the end of the start marker and from the beginning of
// the end marker onward is preserved exactly.
func spliceSection(content, startMarker, endMarker, replacement string) (string, error) {
	start := strings.Index(content, startMarker)
	if start < 0 {
		return "", &SectionNotFoundError{Marker: startMarker}
	}

	regionStart := start + len(startMarker)
	offset := strings.Index(content[regionStart:], endMarker)
	if offset < 0 {
		return "", &SectionNotFoundError{Marker: endMarker}
	}
	regionEnd := regionStart + offset

	return content[:regionStart] + replacement + content[regionEnd:], nil
}

// buildOptionsTable renders the markdown table for the generated section:
// header row, separator row, one row per option in document order.
// Multi-line descriptions are flattened to a single line so they cannot
// break the table.
func buildOptionsTable(options []config.Option) string {
	var b strings.Builder
	b.WriteString("\n| Option | Type | Default value | What it Does |\n")
	b.WriteString("| --- | --- | --- | --- |\n")

	for _, opt := range options {
		description := strings.ReplaceAll(opt.CleanDescription(), "\n", " ")
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			opt.CleanName(), opt.CleanType(), opt.CleanDefault(), description)
	}

	return b.String()
}

// UpdateReadme replaces the generated options section of the document at
// path with a freshly rendered table, leaving all surrounding bytes
// untouched. If either marker is missing the file is not written at all:
// the read happens up front and the write only runs after a successful
// splice. The write-back rewrites the whole file, so the document may
// shrink when options are removed.
func UpdateReadme(path string, options []config.Option) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	updated, err := spliceSection(string(content), sectionMarker, sectionMarker, buildOptionsTable(options))
	if err != nil {
		if notFound, ok := err.(*SectionNotFoundError); ok {
			notFound.Path = path
		}
		return err
	}

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
