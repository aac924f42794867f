package outline

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// hiddenContainers never render their children as visible fill
var hiddenContainers = map[string]bool{
	"defs":     true,
	"mask":     true,
	"clipPath": true,
	"symbol":   true,
	"pattern":  true,
	"marker":   true,
}

// ParseSVG collects the visible <path> elements of an SVG document in document order
// A document without visible paths yields an empty source rather than an error
// Malformed path data keeps the segments before the error; the source is
// returned together with the joined path errors
func ParseSVG(name string, r io.Reader) (*Source, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false

	src := &Source{Name: name}
	var pathErrs []error

	// Each open element pushes its translation and whether it hides content
	type frame struct {
		offset vec.Vec2
		hidden bool
	}
	stack := []frame{{}}

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("outline: parse %s: %w", name, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			parent := stack[len(stack)-1]
			f := frame{
				offset: parent.offset.Add(translateAttr(t.Attr)),
				hidden: parent.hidden || hiddenContainers[t.Name.Local],
			}
			stack = append(stack, f)

			if t.Name.Local != "path" || f.hidden {
				continue
			}
			d := attr(t.Attr, "d")
			if strings.TrimSpace(d) == "" {
				continue
			}
			p, err := ParsePathData(d)
			if err != nil {
				pathErrs = append(pathErrs, fmt.Errorf("outline: %s: %w", name, err))
			}
			src.Paths = append(src.Paths, Flatten(translate(p, f.offset), DefaultTolerance)...)

		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return src, errors.Join(pathErrs...)
}

// ParseSVGBytes is ParseSVG over an in-memory document
func ParseSVGBytes(name string, data []byte) (*Source, error) {
	return ParseSVG(name, bytes.NewReader(data))
}

// LoadSVGFile reads and parses an SVG file
func LoadSVGFile(filename string) (*Source, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("outline: open %s: %w", filename, err)
	}
	defer f.Close()
	return ParseSVG(filepath.Base(filename), f)
}

// LoadSVGFiles loads every file, skipping files that cannot be read or parsed
// Files with malformed paths keep their readable paths
// The returned error joins all failures; loaded sources are returned regardless
func LoadSVGFiles(filenames []string) ([]*Source, error) {
	var (
		sources []*Source
		errs    []error
	)
	for _, name := range filenames {
		src, err := LoadSVGFile(name)
		if err != nil {
			errs = append(errs, err)
		}
		if src != nil {
			sources = append(sources, src)
		}
	}
	return sources, errors.Join(errs...)
}

func attr(attrs []xml.Attr, local string) string {
	for _, a := range attrs {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// translateAttr extracts translate(x[,y]) from a transform attribute
// Other transform kinds are ignored
func translateAttr(attrs []xml.Attr) vec.Vec2 {
	s := strings.TrimSpace(attr(attrs, "transform"))
	if !strings.HasPrefix(s, "translate") {
		return vec.Vec2{}
	}
	open := strings.IndexByte(s, '(')
	end := strings.IndexByte(s, ')')
	if open < 0 || end <= open {
		return vec.Vec2{}
	}
	fields := strings.FieldsFunc(s[open+1:end], func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	var out vec.Vec2
	if len(fields) >= 1 {
		out.X, _ = strconv.ParseFloat(fields[0], 64)
	}
	if len(fields) >= 2 {
		out.Y, _ = strconv.ParseFloat(fields[1], 64)
	}
	return out
}

// translate offsets every coordinate of p in place
func translate(p *path.Data, offset vec.Vec2) *path.Data {
	if offset == (vec.Vec2{}) {
		return p
	}
	for i := range p.Coords {
		p.Coords[i] = p.Coords[i].Add(offset)
	}
	return p
}
