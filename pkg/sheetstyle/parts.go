package sheetstyle

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"path"
	"strings"
)

// Default part names, used when the package relationships do not name them.
const (
	defaultWorkbookPart = "xl/workbook.xml"
	packageRelsPart     = "_rels/.rels"
)

// relationship is one Relationship element of a .rels part.
type relationship struct {
	ID     string
	Type   string
	Target string
}

// relType returns the last segment of a relationship type URI, such as
// "officeDocument" or "calcChain".
func (r relationship) relType() string {
	return r.Type[strings.LastIndex(r.Type, "/")+1:]
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func parseRelationships(data []byte) []relationship {
	var result []relationship
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rel relationship
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rel.ID = attr.Value
				case "Type":
					rel.Type = attr.Value
				case "Target":
					rel.Target = attr.Value
				}
			}
			result = append(result, rel)
		}
	}

	return result
}

// relsPartFor returns the relationships part of a part, e.g.
// xl/_rels/workbook.xml.rels for xl/workbook.xml.
func relsPartFor(part string) string {
	return path.Join(path.Dir(part), "_rels", path.Base(part)+".rels")
}

// resolveTarget resolves a relationship target against the directory of
// the part owning the relationship.
func resolveTarget(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(baseDir, target)
}

// findWorkbookPart returns the main workbook part named by the package
// relationships.
func findWorkbookPart(r *zip.Reader) string {
	data, err := readZipFile(r, packageRelsPart)
	if err != nil || data == nil {
		return defaultWorkbookPart
	}
	for _, rel := range parseRelationships(data) {
		if rel.relType() == "officeDocument" {
			return resolveTarget(rel.Target, "")
		}
	}
	return defaultWorkbookPart
}
