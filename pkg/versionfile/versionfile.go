// Package versionfile reads and rewrites the versions file that pins the
// third-party libraries of the media build. The file is modelled as an
// ordered list of line records, so a write only ever touches the targeted
// values and the timestamp comment while every other byte stays as it was.
package versionfile

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"
)

// ErrNotFound is returned when the versions file does not exist.
var ErrNotFound = errors.New("versions file not found")

// The designated timestamp comment that is refreshed on every write.
var timestampRegex = regexp.MustCompile(`^#\s*Updated:\s*\d{4}-\d{2}-\d{2}$`)

type lineKind int

const (
	lineKindComment lineKind = iota
	lineKindBlank
	lineKindKeyValue
	// A non-blank line without a "=". Tolerated and kept verbatim, but not part of the map.
	lineKindOther
)

// A single line of the versions file.
type line struct {
	kind lineKind
	// The raw line text without the trailing newline.
	raw string
	// The key and value for keyvalue lines.
	key   string
	value string
	// The raw text before the value (indent, key and separator) and after it,
	// so the value can be replaced without touching anything else.
	prefix string
	suffix string
}

// This type represents a parsed versions file.
type File struct {
	path            string
	lines           []*line
	trailingNewline bool
}

// Parse reads the versions file at the given path.
func Parse(path string) (*File, error) {
	contentBytes, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("'%s': %w", path, ErrNotFound)
		}
		return nil, err
	}
	content := string(contentBytes)

	file := &File{path: path, trailingNewline: strings.HasSuffix(content, "\n")}
	rawLines := strings.Split(content, "\n")
	if file.trailingNewline {
		rawLines = rawLines[:len(rawLines)-1]
	}
	for _, rawLine := range rawLines {
		file.lines = append(file.lines, parseLine(rawLine))
	}
	return file, nil
}

// Path returns the path the file was parsed from.
func (f *File) Path() string {
	return f.path
}

// Get returns the value for the given key.
func (f *File) Get(key string) (string, bool) {
	for _, currentLine := range f.lines {
		if currentLine.kind == lineKindKeyValue && currentLine.key == key {
			return currentLine.value, true
		}
	}
	return "", false
}

// Keys returns all keys in the order they appear in the file.
func (f *File) Keys() []string {
	keys := []string{}
	for _, currentLine := range f.lines {
		if currentLine.kind == lineKindKeyValue {
			keys = append(keys, currentLine.key)
		}
	}
	return keys
}

// Apply replaces the values of the given keys and refreshes the timestamp
// comment to the given time. Keys that do not exist in the file are silently
// ignored, the file never grows new keys. Returns the number of replaced values.
func (f *File) Apply(updates map[string]string, now time.Time) int {
	replaced := 0
	for _, currentLine := range f.lines {
		switch currentLine.kind {
		case lineKindComment:
			if timestampRegex.MatchString(strings.TrimSpace(currentLine.raw)) {
				currentLine.raw = fmt.Sprintf("# Updated: %s", now.Format("2006-01-02"))
			}
		case lineKindKeyValue:
			if newValue, ok := updates[currentLine.key]; ok {
				currentLine.value = newValue
				currentLine.raw = currentLine.prefix + newValue + currentLine.suffix
				replaced++
			}
		}
	}
	return replaced
}

// Save writes the file back to the path it was parsed from.
func (f *File) Save() error {
	rawLines := make([]string, len(f.lines))
	for i, currentLine := range f.lines {
		rawLines[i] = currentLine.raw
	}
	content := strings.Join(rawLines, "\n")
	if f.trailingNewline {
		content += "\n"
	}
	return os.WriteFile(f.path, []byte(content), os.ModePerm)
}

func parseLine(rawLine string) *line {
	trimmed := strings.TrimSpace(rawLine)
	if trimmed == "" {
		return &line{kind: lineKindBlank, raw: rawLine}
	}
	if strings.HasPrefix(trimmed, "#") {
		return &line{kind: lineKindComment, raw: rawLine}
	}
	// Split on the first "=" only, values may legitimately contain "="
	separatorIndex := strings.Index(rawLine, "=")
	if separatorIndex < 0 {
		return &line{kind: lineKindOther, raw: rawLine}
	}
	key := strings.TrimSpace(rawLine[:separatorIndex])
	rest := rawLine[separatorIndex+1:]
	value := strings.TrimSpace(rest)
	leading := len(rest) - len(strings.TrimLeft(rest, " \t"))
	return &line{
		kind:   lineKindKeyValue,
		raw:    rawLine,
		key:    key,
		value:  value,
		prefix: rawLine[:separatorIndex+1+leading],
		suffix: rest[leading+len(value):],
	}
}
