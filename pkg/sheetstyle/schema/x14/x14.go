// Package x14 defines the Excel 2010 conditional formatting extension
// elements (x14 namespace) and the xm:f formula element they embed.
package x14

import "encoding/xml"

// Namespaces bound to the x14 and xm prefixes.
const (
	NamespaceX14 = "http://schemas.microsoft.com/office/spreadsheetml/2009/9/main"
	NamespaceXM  = "http://schemas.microsoft.com/office/excel/2006/main"
)

// Cfvo directly maps the x14:cfvo element.
type Cfvo struct {
	XMLName xml.Name `xml:"x14:cfvo"`
	Type    string   `xml:"type,attr"`
	Gte     *bool    `xml:"gte,attr,omitempty"`
	F       string   `xml:"xm:f,omitempty"`
}

// Color maps the x14 color elements (fillColor, borderColor, axisColor, ...).
// The element name is carried in XMLName.
type Color struct {
	XMLName xml.Name
	Auto    bool     `xml:"auto,attr,omitempty"`
	Indexed *uint    `xml:"indexed,attr,omitempty"`
	RGB     string   `xml:"rgb,attr,omitempty"`
	Theme   *uint    `xml:"theme,attr,omitempty"`
	Tint    *float64 `xml:"tint,attr,omitempty"`
}

// DataBar directly maps the x14:dataBar element.
type DataBar struct {
	XMLName                              xml.Name `xml:"x14:dataBar"`
	MinLength                            *uint    `xml:"minLength,attr,omitempty"`
	MaxLength                            *uint    `xml:"maxLength,attr,omitempty"`
	Border                               bool     `xml:"border,attr,omitempty"`
	Gradient                             *bool    `xml:"gradient,attr,omitempty"`
	Direction                            string   `xml:"direction,attr,omitempty"`
	NegativeBarColorSameAsPositive       bool     `xml:"negativeBarColorSameAsPositive,attr,omitempty"`
	NegativeBarBorderColorSameAsPositive *bool    `xml:"negativeBarBorderColorSameAsPositive,attr,omitempty"`
	AxisPosition                         string   `xml:"axisPosition,attr,omitempty"`
	Cfvo                                 []*Cfvo  `xml:"x14:cfvo"`
	FillColor                            *Color   `xml:"x14:fillColor"`
	BorderColor                          *Color   `xml:"x14:borderColor"`
	NegativeFillColor                    *Color   `xml:"x14:negativeFillColor"`
	NegativeBorderColor                  *Color   `xml:"x14:negativeBorderColor"`
	AxisColor                            *Color   `xml:"x14:axisColor"`
}

// IconSet directly maps the x14:iconSet element.
type IconSet struct {
	XMLName   xml.Name  `xml:"x14:iconSet"`
	IconSet   string    `xml:"iconSet,attr,omitempty"`
	ShowValue *bool     `xml:"showValue,attr,omitempty"`
	Percent   *bool     `xml:"percent,attr,omitempty"`
	Reverse   bool      `xml:"reverse,attr,omitempty"`
	Custom    bool      `xml:"custom,attr,omitempty"`
	Cfvo      []*Cfvo   `xml:"x14:cfvo"`
	CfIcon    []*CfIcon `xml:"x14:cfIcon"`
}

// CfIcon directly maps the x14:cfIcon element.
type CfIcon struct {
	XMLName xml.Name `xml:"x14:cfIcon"`
	IconSet string   `xml:"iconSet,attr"`
	IconID  uint     `xml:"iconId,attr"`
}
