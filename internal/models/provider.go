package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Provider is one record of the provider-search response, reduced to the
// columns the table and map use.
type Provider struct {
	DisplayName       string     `json:"DisplayName"`
	Categories        StringList `json:"Categories"`
	Specialties       StringList `json:"Specialties"`
	BusinessName      string     `json:"BusinessName"`
	FirstName         string     `json:"FirstName"`
	LastName          string     `json:"LastName"`
	Title             string     `json:"Title"`
	Languages         StringList `json:"Languages"`
	Address           string     `json:"Address"`
	City              string     `json:"City"`
	State             string     `json:"State"`
	Zip               FlexString `json:"Zip"`
	Phone             FlexString `json:"Phone"`
	AcceptingPatients Flag       `json:"AcceptingPatients"`
	IsPCP             Flag       `json:"IsPCP"`
	Latitude          float64    `json:"Latitude"`
	Longitude         float64    `json:"Longitude"`
	Distance          float64    `json:"Distance"`
}

// ProviderRow is a table row: the provider plus the derived display columns.
type ProviderRow struct {
	Provider
	Name      string `json:"name"`
	SearchURL string `json:"url"`
}

// StringList decodes either a JSON array of strings or a single
// comma separated string.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if len(data) > 0 && data[0] == '[' {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("decode string list: %w", err)
		}
		*l = items
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("decode string list: %w", err)
	}

	var items []string
	for _, part := range strings.Split(joined, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	*l = items
	return nil
}

// FlexString decodes a JSON string or number as a string.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("decode string: %w", err)
		}
		*s = FlexString(str)
	default:
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return fmt.Errorf("decode string: %w", err)
		}
		*s = FlexString(num.String())
	}
	return nil
}

// Flag decodes booleans sent as JSON booleans, numbers or strings such as
// "True", "Y" and "1". Unrecognised values decode as false.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = false
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("decode flag: %w", err)
		}
	}

	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "t", "y", "yes":
		*f = true
		return nil
	case "false", "f", "n", "no", "":
		*f = false
		return nil
	}

	// Anything else, such as "Unknown", reads as false.
	num, err := strconv.ParseFloat(raw, 64)
	*f = err == nil && num != 0
	return nil
}
