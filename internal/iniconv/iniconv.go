// Package iniconv converts INI files to JSON, turning values that look like
// booleans or numbers into JSON booleans and numbers.
package iniconv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-ini/ini"
)

var (
	intPattern   = regexp.MustCompile(`^[0-9]+$`)
	floatPattern = regexp.MustCompile(`^[0-9]+\.[0-9]*$`)
)

var loadOptions = ini.LoadOptions{
	InsensitiveKeys:         true,
	IgnoreInlineComment:     true,
	PreserveSurroundedQuote: true,
}

// Convert reads the INI file at input and writes its JSON form to output.
// It returns the number of sections written.
func Convert(input, output string) (int, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return 0, fmt.Errorf("failed to read ini file: %s - %w", input, err)
	}

	out, sections, err := ToJSON(data)
	if err != nil {
		return 0, fmt.Errorf("failed to convert %s: %w", input, err)
	}

	if err := os.WriteFile(output, out, 0o644); err != nil {
		return 0, fmt.Errorf("failed to write json file: %s - %w", output, err)
	}

	return sections, nil
}

// ToJSON converts INI data to indented JSON and reports the section count.
func ToJSON(data []byte) ([]byte, int, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, 0, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, 0, fmt.Errorf("failed to encode json: %w", err)
	}

	return buf.Bytes(), len(doc), nil
}

// Parse reads INI data into an ordered document of sections. The DEFAULT
// section is not emitted itself; its keys are merged into every other
// section ahead of the section's own keys. Key names are lower-cased.
func Parse(data []byte) (Object, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ini: %w", err)
	}

	defaults := f.Section(ini.DefaultSection)

	doc := Object{}
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}

		fields := Object{}
		for _, key := range defaults.Keys() {
			fields.Set(key.Name(), InferType(value(key)))
		}
		for _, key := range sec.Keys() {
			fields.Set(key.Name(), InferType(value(key)))
		}
		doc.Set(sec.Name(), fields)
	}

	return doc, nil
}

// value returns the interpolated value of key with "%%" escapes reduced to "%".
func value(key *ini.Key) string {
	return strings.ReplaceAll(key.String(), "%%", "%")
}

// InferType converts a raw INI value. After trimming, true/yes/on and
// false/no/off (any case) become booleans, digit strings become integers of
// any size, digits with a decimal point become floats, and anything else is
// returned as the trimmed string.
func InferType(val string) any {
	v := strings.TrimSpace(val)

	switch strings.ToLower(v) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if intPattern.MatchString(v) {
		n, ok := new(big.Int).SetString(v, 10)
		if ok {
			return json.Number(n.String())
		}
	}

	if floatPattern.MatchString(v) {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil && !math.IsInf(f, 0) {
			return json.Number(formatFloat(f))
		}
	}

	return v
}

// formatFloat always keeps a fractional part or an exponent so the number
// reads back as a float.
func formatFloat(f float64) string {
	if f != 0 {
		exp := math.Floor(math.Log10(math.Abs(f)))
		if exp >= 16 || exp < -4 {
			return strconv.FormatFloat(f, 'e', -1, 64)
		}
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
