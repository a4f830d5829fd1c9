package condformat

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/theme"
)

// startOf returns a decoder positioned just after the first start element
// of data.
func startOf(t *testing.T, data string) (*xml.Decoder, xml.StartElement) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(data))
	for {
		token, err := dec.Token()
		if err != nil {
			t.Fatalf("no start element in %q: %v", data, err)
		}
		if se, ok := token.(xml.StartElement); ok {
			return dec, se
		}
	}
}

func TestColorForms(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected string
	}{
		{"rgb", NewRGBColor("#638ec6"), `<x14:fillColor rgb="FF638EC6"></x14:fillColor>`},
		{"theme", NewThemeColor(theme.Accent1, -0.5), `<x14:fillColor theme="4" tint="-0.5"></x14:fillColor>`},
		{"theme clamped", NewThemeColor(theme.Dark2, 3), `<x14:fillColor theme="3" tint="1"></x14:fillColor>`},
		{"auto", autoColor(), `<x14:fillColor auto="true"></x14:fillColor>`},
		{"indexed", indexedColor(64), `<x14:fillColor indexed="64"></x14:fillColor>`},
	}

	for _, tt := range tests {
		out, err := xml.Marshal(tt.color.ToX14Color("fillColor"))
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if string(out) != tt.expected {
			t.Errorf("%s: xml.Marshal = %s, expected %s", tt.name, out, tt.expected)
		}
	}
}

func autoColor() Color {
	var c Color
	c.SetAuto()
	return c
}

func indexedColor(i uint) Color {
	var c Color
	c.SetIndexed(i)
	return c
}

func TestColorSettersAreExclusive(t *testing.T) {
	c := NewThemeColor(theme.Accent3, 0.2)
	c.SetRGB("00FF00")
	if c.Theme != nil || c.Tint() != 0 || c.RGB != "FF00FF00" {
		t.Errorf("SetRGB kept theme state: %+v", c)
	}

	c.SetIndexed(8)
	if c.RGB != "" || c.Indexed == nil || *c.Indexed != 8 {
		t.Errorf("SetIndexed kept rgb state: %+v", c)
	}
}

func TestColorResolve(t *testing.T) {
	p := theme.DefaultPalette()

	c := NewThemeColor(theme.Accent2, 0)
	if rgb, ok := c.Resolve(p); !ok || rgb != "C0504D" {
		t.Errorf("Resolve() = (%q, %v), expected C0504D", rgb, ok)
	}
	c = NewRGBColor("FF123456")
	if rgb, ok := c.Resolve(p); !ok || rgb != "123456" {
		t.Errorf("Resolve() = (%q, %v), expected 123456", rgb, ok)
	}
	c.SetAuto()
	if _, ok := c.Resolve(p); ok {
		t.Error("automatic color resolved")
	}
}

func TestCfvo(t *testing.T) {
	c := NewCfvo2010(ValueFormula, "=$A$1*2")
	out, err := xml.Marshal(c.ToCfvo())
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `<x14:cfvo type="formula"><xm:f>$A$1*2</xm:f></x14:cfvo>` {
		t.Errorf("xml.Marshal = %s", out)
	}

	dec, start := startOf(t, `<x14:cfvo type="percentile" gte="0"><xm:f>90</xm:f></x14:cfvo><next/>`)
	read := FromCfvo(dec, start)
	if read.Type != ValuePercentile || read.Formula != "90" || read.GreaterThanOrEqual {
		t.Errorf("FromCfvo() = %+v", read)
	}
	// The end element has been consumed.
	token, err := dec.Token()
	if err != nil {
		t.Fatal(err)
	}
	if se, ok := token.(xml.StartElement); !ok || se.Name.Local != "next" {
		t.Errorf("next token = %#v, expected <next>", token)
	}
}

func TestDataBarDefaultsOmitted(t *testing.T) {
	d := NewDataBar2010()
	out, err := xml.Marshal(d.ToDataBar())
	if err != nil {
		t.Fatal(err)
	}
	expected := `<x14:dataBar><x14:cfvo type="autoMin"></x14:cfvo><x14:cfvo type="autoMax"></x14:cfvo></x14:dataBar>`
	if string(out) != expected {
		t.Errorf("xml.Marshal = %s\nexpected %s", out, expected)
	}
}

func TestDataBarLengthClamp(t *testing.T) {
	d := NewDataBar2010()
	d.SetMinLength(-5)
	d.SetMaxLength(250)
	if d.MinLength() != 0 || d.MaxLength() != 100 {
		t.Errorf("lengths = %d/%d, expected 0/100", d.MinLength(), d.MaxLength())
	}
}

func TestDataBarRoundTrip(t *testing.T) {
	d := NewDataBar2010()
	d.SetMinLength(0)
	d.SetMaxLength(100)
	d.Border = true
	d.Gradient = false
	d.Direction = DirectionRightToLeft
	d.NegativeBarBorderColorSameAsPositive = false
	d.AxisPosition = AxisMiddle
	d.Min = NewCfvo2010(ValueNumber, "0")
	d.Max = NewCfvo2010(ValuePercent, "80")
	d.FillColor = NewRGBColor("638EC6")
	d.BorderColor = NewThemeColor(theme.Accent1, 0.4)
	d.NegativeFillColor = NewRGBColor("FF0000")
	d.AxisColor = NewRGBColor("000000")

	out, err := xml.Marshal(d.ToDataBar())
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	order := []string{`type="num"`, `type="percent"`, "<x14:fillColor", "<x14:borderColor", "<x14:negativeFillColor", "<x14:axisColor"}
	last := -1
	for _, part := range order {
		i := strings.Index(s, part)
		if i < last || i < 0 {
			t.Errorf("%s missing or out of order in %s", part, s)
		}
		last = i
	}
	if strings.Contains(s, "negativeBorderColor>") {
		t.Errorf("unset negative border color emitted: %s", s)
	}

	dec, start := startOf(t, s)
	read := FromDataBar(dec, start)
	if read.MinLength() != 0 || read.MaxLength() != 100 || !read.Border || read.Gradient {
		t.Errorf("FromDataBar() lengths/flags = %d/%d/%v/%v", read.MinLength(), read.MaxLength(), read.Border, read.Gradient)
	}
	if read.Direction != DirectionRightToLeft || read.AxisPosition != AxisMiddle || read.NegativeBarBorderColorSameAsPositive {
		t.Errorf("FromDataBar() direction/axis = %v/%v/%v", read.Direction, read.AxisPosition, read.NegativeBarBorderColorSameAsPositive)
	}
	if read.Min.Type != ValueNumber || read.Max.Formula != "80" {
		t.Errorf("FromDataBar() cfvos = %+v / %+v", read.Min, read.Max)
	}
	if read.FillColor.RGB != "FF638EC6" || read.BorderColor.Theme == nil || *read.BorderColor.Theme != theme.Accent1 || read.BorderColor.Tint() != 0.4 {
		t.Errorf("FromDataBar() colors = %+v / %+v", read.FillColor, read.BorderColor)
	}
	if read.NegativeBorderColor.IsSet() {
		t.Errorf("FromDataBar() invented a negative border color: %+v", read.NegativeBorderColor)
	}
}

func TestIconSetRoundTrip(t *testing.T) {
	s := NewIconSet2010(IconSet3Stars)
	s.ShowValue = false
	s.Reverse = true
	s.Cfvos = []Cfvo2010{
		NewCfvo2010(ValuePercent, "0"),
		NewCfvo2010(ValuePercent, "33"),
		NewCfvo2010(ValuePercent, "67"),
	}
	s.CustomIcons = []CustomIcon{
		{IconSet: IconSet3Flags, IconID: 0},
		{IconSet: IconSetNoIcons, IconID: 0},
		{IconSet: IconSet3Stars, IconID: 2},
	}

	out, err := xml.Marshal(s.ToIconSet())
	if err != nil {
		t.Fatal(err)
	}
	xmlStr := string(out)
	if !strings.HasPrefix(xmlStr, `<x14:iconSet iconSet="3Stars" showValue="false" reverse="true" custom="true">`) {
		t.Errorf("unexpected attributes: %s", xmlStr)
	}

	dec, start := startOf(t, xmlStr)
	read := FromIconSet(dec, start)
	if read.IconSet != IconSet3Stars || read.ShowValue || !read.Percent || !read.Reverse {
		t.Errorf("FromIconSet() = %+v", read)
	}
	if len(read.Cfvos) != 3 || read.Cfvos[2].Formula != "67" {
		t.Errorf("FromIconSet() cfvos = %+v", read.Cfvos)
	}
	if !read.IsCustom() || read.CustomIcons[2] != (CustomIcon{IconSet: IconSet3Stars, IconID: 2}) {
		t.Errorf("FromIconSet() icons = %+v", read.CustomIcons)
	}
}

func TestIconSetDefaultType(t *testing.T) {
	s := NewIconSet2010(IconSet3TrafficLights1)
	out, err := xml.Marshal(s.ToIconSet())
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `<x14:iconSet></x14:iconSet>` {
		t.Errorf("xml.Marshal = %s", out)
	}

	dec, start := startOf(t, string(out))
	if read := FromIconSet(dec, start); read.IconSet != IconSet3TrafficLights1 || !read.ShowValue {
		t.Errorf("FromIconSet() = %+v", read)
	}
}
