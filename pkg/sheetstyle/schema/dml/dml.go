// Package dml defines the DrawingML elements emitted by the drawing object
// model. Element names carry the literal "a:" prefix the way excelize writes
// drawing parts, so the namespace declaration belongs to the enclosing part.
package dml

import "encoding/xml"

// NamespaceA is the DrawingML main namespace bound to the "a" prefix.
const NamespaceA = "http://schemas.openxmlformats.org/drawingml/2006/main"

// Empty maps elements that carry neither attributes nor children, such as
// a:noFill or a:round.
type Empty struct{}

// AttrValInt directly maps the val element with integer data type as an
// attribute.
type AttrValInt struct {
	Val int `xml:"val,attr"`
}

// AttrValString directly maps the val element with string data type as an
// attribute.
type AttrValString struct {
	Val string `xml:"val,attr"`
}

// RGBColor directly maps the a:srgbClr element.
type RGBColor struct {
	XMLName xml.Name    `xml:"a:srgbClr"`
	Val     string      `xml:"val,attr"`
	LumMod  *AttrValInt `xml:"a:lumMod"`
	LumOff  *AttrValInt `xml:"a:lumOff"`
	Alpha   *AttrValInt `xml:"a:alpha"`
}

// SchemeColor directly maps the a:schemeClr element.
type SchemeColor struct {
	XMLName xml.Name    `xml:"a:schemeClr"`
	Val     string      `xml:"val,attr"`
	LumMod  *AttrValInt `xml:"a:lumMod"`
	LumOff  *AttrValInt `xml:"a:lumOff"`
	Alpha   *AttrValInt `xml:"a:alpha"`
}

// ColorChoice holds one of the color model elements. At most one field is
// set.
type ColorChoice struct {
	SrgbClr   *RGBColor    `xml:"a:srgbClr"`
	SchemeClr *SchemeColor `xml:"a:schemeClr"`
}

// IsEmpty reports whether neither color model is set.
func (c ColorChoice) IsEmpty() bool {
	return c.SrgbClr == nil && c.SchemeClr == nil
}

// ColorElement maps the wrapper elements that hold a single color, such as
// a:fgClr, a:bgClr, a:extrusionClr and a:contourClr.
type ColorElement struct {
	ColorChoice
}

// SolidFill directly maps the a:solidFill element.
type SolidFill struct {
	XMLName xml.Name `xml:"a:solidFill"`
	ColorChoice
}

// GradientFill directly maps the a:gradFill element.
type GradientFill struct {
	XMLName      xml.Name          `xml:"a:gradFill"`
	RotWithShape bool              `xml:"rotWithShape,attr"`
	GsLst        *GradientStopList `xml:"a:gsLst"`
	Lin          *LinearShade      `xml:"a:lin"`
	Path         *PathShade        `xml:"a:path"`
	TileRect     *RelativeRect     `xml:"a:tileRect"`
}

// GradientStopList directly maps the a:gsLst element.
type GradientStopList struct {
	Gs []GradientStop `xml:"a:gs"`
}

// GradientStop directly maps the a:gs element.
type GradientStop struct {
	Pos int `xml:"pos,attr"`
	ColorChoice
}

// LinearShade directly maps the a:lin element.
type LinearShade struct {
	Ang    int  `xml:"ang,attr"`
	Scaled bool `xml:"scaled,attr"`
}

// PathShade directly maps the a:path element.
type PathShade struct {
	Path       string        `xml:"path,attr"`
	FillToRect *RelativeRect `xml:"a:fillToRect"`
}

// RelativeRect maps a:fillToRect, a:tileRect and a:fillRect. Zero insets
// are the schema default and are omitted.
type RelativeRect struct {
	L int `xml:"l,attr,omitempty"`
	T int `xml:"t,attr,omitempty"`
	R int `xml:"r,attr,omitempty"`
	B int `xml:"b,attr,omitempty"`
}

// BlipFill directly maps the a:blipFill element.
type BlipFill struct {
	XMLName      xml.Name `xml:"a:blipFill"`
	Dpi          int      `xml:"dpi,attr,omitempty"`
	RotWithShape bool     `xml:"rotWithShape,attr"`
	Blip         *Blip    `xml:"a:blip"`
	Tile         *Tile    `xml:"a:tile"`
	Stretch      *Stretch `xml:"a:stretch"`
}

// Blip directly maps the a:blip element.
type Blip struct {
	XMLNSR      string      `xml:"xmlns:r,attr,omitempty"`
	Embed       string      `xml:"r:embed,attr,omitempty"`
	AlphaModFix *AttrAmount `xml:"a:alphaModFix"`
}

// AttrAmount directly maps elements with a single amt attribute.
type AttrAmount struct {
	Amt int `xml:"amt,attr"`
}

// Tile directly maps the a:tile element.
type Tile struct {
	Tx   int    `xml:"tx,attr"`
	Ty   int    `xml:"ty,attr"`
	Sx   int    `xml:"sx,attr"`
	Sy   int    `xml:"sy,attr"`
	Flip string `xml:"flip,attr"`
	Algn string `xml:"algn,attr"`
}

// Stretch directly maps the a:stretch element.
type Stretch struct {
	FillRect *RelativeRect `xml:"a:fillRect"`
}

// PatternFill directly maps the a:pattFill element.
type PatternFill struct {
	XMLName xml.Name      `xml:"a:pattFill"`
	Prst    string        `xml:"prst,attr"`
	FgClr   *ColorElement `xml:"a:fgClr"`
	BgClr   *ColorElement `xml:"a:bgClr"`
}

// FillChoice holds the fill element of a shape or outline. At most one field
// is set; all nil means the fill is automatic and nothing is written.
type FillChoice struct {
	NoFill    *Empty        `xml:"a:noFill"`
	SolidFill *SolidFill    `xml:"a:solidFill"`
	GradFill  *GradientFill `xml:"a:gradFill"`
	BlipFill  *BlipFill     `xml:"a:blipFill"`
	PattFill  *PatternFill  `xml:"a:pattFill"`
}

// IsEmpty reports whether no fill element is set.
func (c FillChoice) IsEmpty() bool {
	return c.NoFill == nil && c.SolidFill == nil && c.GradFill == nil &&
		c.BlipFill == nil && c.PattFill == nil
}

// Outline directly maps the a:ln element.
type Outline struct {
	XMLName xml.Name `xml:"a:ln"`
	W       *int     `xml:"w,attr,omitempty"`
	Cap     string   `xml:"cap,attr,omitempty"`
	Cmpd    string   `xml:"cmpd,attr,omitempty"`
	Algn    string   `xml:"algn,attr,omitempty"`
	FillChoice
	PrstDash *AttrValString `xml:"a:prstDash"`
	Round    *Empty         `xml:"a:round"`
	Bevel    *Empty         `xml:"a:bevel"`
	Miter    *Miter         `xml:"a:miter"`
	HeadEnd  *LineEnd       `xml:"a:headEnd"`
	TailEnd  *LineEnd       `xml:"a:tailEnd"`
}

// Miter directly maps the a:miter element.
type Miter struct {
	Lim *int `xml:"lim,attr,omitempty"`
}

// LineEnd maps the a:headEnd and a:tailEnd elements.
type LineEnd struct {
	Type string `xml:"type,attr,omitempty"`
	W    string `xml:"w,attr,omitempty"`
	Len  string `xml:"len,attr,omitempty"`
}

// EffectList directly maps the a:effectLst element.
type EffectList struct {
	XMLName    xml.Name     `xml:"a:effectLst"`
	Glow       *Glow        `xml:"a:glow"`
	InnerShdw  *InnerShadow `xml:"a:innerShdw"`
	OuterShdw  *OuterShadow `xml:"a:outerShdw"`
	Reflection *Reflection  `xml:"a:reflection"`
	SoftEdge   *SoftEdge    `xml:"a:softEdge"`
}

// Glow directly maps the a:glow element.
type Glow struct {
	XMLName xml.Name `xml:"a:glow"`
	Rad     int      `xml:"rad,attr"`
	ColorChoice
}

// OuterShadow directly maps the a:outerShdw element.
type OuterShadow struct {
	XMLName      xml.Name `xml:"a:outerShdw"`
	BlurRad      int      `xml:"blurRad,attr"`
	Dist         int      `xml:"dist,attr"`
	Dir          int      `xml:"dir,attr"`
	Sx           *int     `xml:"sx,attr,omitempty"`
	Sy           *int     `xml:"sy,attr,omitempty"`
	Kx           *int     `xml:"kx,attr,omitempty"`
	Ky           *int     `xml:"ky,attr,omitempty"`
	Algn         string   `xml:"algn,attr,omitempty"`
	RotWithShape bool     `xml:"rotWithShape,attr"`
	ColorChoice
}

// InnerShadow directly maps the a:innerShdw element.
type InnerShadow struct {
	XMLName xml.Name `xml:"a:innerShdw"`
	BlurRad int      `xml:"blurRad,attr"`
	Dist    int      `xml:"dist,attr"`
	Dir     int      `xml:"dir,attr"`
	ColorChoice
}

// Reflection directly maps the a:reflection element. Attributes left nil
// take their schema defaults.
type Reflection struct {
	XMLName      xml.Name `xml:"a:reflection"`
	BlurRad      *int     `xml:"blurRad,attr,omitempty"`
	StA          *int     `xml:"stA,attr,omitempty"`
	StPos        *int     `xml:"stPos,attr,omitempty"`
	EndA         *int     `xml:"endA,attr,omitempty"`
	EndPos       *int     `xml:"endPos,attr,omitempty"`
	Dist         *int     `xml:"dist,attr,omitempty"`
	Dir          *int     `xml:"dir,attr,omitempty"`
	FadeDir      *int     `xml:"fadeDir,attr,omitempty"`
	Sx           *int     `xml:"sx,attr,omitempty"`
	Sy           *int     `xml:"sy,attr,omitempty"`
	Kx           *int     `xml:"kx,attr,omitempty"`
	Ky           *int     `xml:"ky,attr,omitempty"`
	Algn         string   `xml:"algn,attr,omitempty"`
	RotWithShape *bool    `xml:"rotWithShape,attr,omitempty"`
}

// SoftEdge directly maps the a:softEdge element.
type SoftEdge struct {
	XMLName xml.Name `xml:"a:softEdge"`
	Rad     int      `xml:"rad,attr"`
}

// Scene3D directly maps the a:scene3d element.
type Scene3D struct {
	XMLName  xml.Name `xml:"a:scene3d"`
	Camera   Camera   `xml:"a:camera"`
	LightRig LightRig `xml:"a:lightRig"`
}

// Camera directly maps the a:camera element.
type Camera struct {
	Prst string        `xml:"prst,attr"`
	Fov  *int          `xml:"fov,attr,omitempty"`
	Rot  *SphereCoords `xml:"a:rot"`
}

// LightRig directly maps the a:lightRig element.
type LightRig struct {
	Rig string        `xml:"rig,attr"`
	Dir string        `xml:"dir,attr"`
	Rot *SphereCoords `xml:"a:rot"`
}

// SphereCoords directly maps the a:rot element.
type SphereCoords struct {
	Lat int `xml:"lat,attr"`
	Lon int `xml:"lon,attr"`
	Rev int `xml:"rev,attr"`
}

// Shape3D directly maps the a:sp3d element.
type Shape3D struct {
	XMLName      xml.Name      `xml:"a:sp3d"`
	Z            *int          `xml:"z,attr,omitempty"`
	ExtrusionH   *int          `xml:"extrusionH,attr,omitempty"`
	ContourW     *int          `xml:"contourW,attr,omitempty"`
	PrstMaterial string        `xml:"prstMaterial,attr,omitempty"`
	BevelT       *Bevel        `xml:"a:bevelT"`
	BevelB       *Bevel        `xml:"a:bevelB"`
	ExtrusionClr *ColorElement `xml:"a:extrusionClr"`
	ContourClr   *ColorElement `xml:"a:contourClr"`
}

// Bevel maps the a:bevelT and a:bevelB elements.
type Bevel struct {
	W    int    `xml:"w,attr"`
	H    int    `xml:"h,attr"`
	Prst string `xml:"prst,attr"`
}

// PresetGeometry directly maps the a:prstGeom element.
type PresetGeometry struct {
	Prst  string `xml:"prst,attr"`
	AvLst *Empty `xml:"a:avLst"`
}

// ShapeProperties maps the spPr element. The element name depends on the
// host part (xdr:spPr, c:spPr, ...) and is carried in XMLName.
type ShapeProperties struct {
	XMLName  xml.Name
	PrstGeom *PresetGeometry `xml:"a:prstGeom"`
	FillChoice
	Ln        *Outline    `xml:"a:ln"`
	EffectLst *EffectList `xml:"a:effectLst"`
	Scene3D   *Scene3D    `xml:"a:scene3d"`
	Sp3D      *Shape3D    `xml:"a:sp3d"`
}
