// Package output renders object model elements and reports for the command
// line.
package output

import (
	"encoding/json"
	"encoding/xml"
)

// ToXML serializes an element to XML. Pretty output indents children by two
// spaces.
func ToXML(v any, pretty bool) ([]byte, error) {
	if pretty {
		return xml.MarshalIndent(v, "", "  ")
	}
	return xml.Marshal(v)
}

// ToDocument serializes a whole part: the XML declaration followed by the
// element.
func ToDocument(v any, pretty bool) ([]byte, error) {
	data, err := ToXML(v, pretty)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}

// ToJSON serializes a value to JSON.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
