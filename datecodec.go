package main

import (
	"fmt"
	"strings"
	"time"
)

// directives maps strftime-style conversion characters to their Go layout
// equivalents.
var directives = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'a': "Mon",
	'A': "Monday",
	'b': "Jan",
	'B': "January",
	'j': "002",
}

// Codec parses and formats date values according to one strftime-style
// pattern. The pattern is translated to a Go layout once, at construction.
type Codec struct {
	Pattern string
	Layout  string
}

func NewCodec(pattern string) (*Codec, error) {
	var layout strings.Builder
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			layout.WriteByte(pattern[i])
			continue
		}
		i++
		if i >= len(pattern) {
			return nil, fmt.Errorf("date format %q ends with a bare %%", pattern)
		}
		if pattern[i] == '%' {
			layout.WriteByte('%')
			continue
		}
		directive, ok := directives[pattern[i]]
		if !ok {
			return nil, fmt.Errorf("unsupported date format directive %%%c", pattern[i])
		}
		layout.WriteString(directive)
	}
	return &Codec{Pattern: pattern, Layout: layout.String()}, nil
}

func (c *Codec) Parse(text string) (time.Time, error) {
	t, err := time.Parse(c.Layout, text)
	if err != nil {
		return time.Time{}, &FormatError{Value: text, Pattern: c.Pattern, Err: err}
	}
	return t, nil
}

func (c *Codec) Format(t time.Time) string {
	return t.Format(c.Layout)
}
