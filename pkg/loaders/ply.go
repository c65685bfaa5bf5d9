package loaders

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"strconv"
	"strings"

	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/geometry"
	"github.com/df07/go-shading-raytracer/pkg/scene"
)

// ErrInvalidPLY is returned for malformed or unsupported PLY input
var ErrInvalidPLY = errors.New("invalid PLY data")

// maxListLength bounds the vertex count of a single face
const maxListLength = 1 << 16

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
}

type plyElement struct {
	name  string
	count int
	props []PLYProperty
}

// PLYHeader is the parsed PLY header
type PLYHeader struct {
	Format   string // "ascii", "binary_little_endian", or "binary_big_endian"
	Elements []plyElement
}

// PLYData contains vertex positions and triangulated faces
type PLYData struct {
	Vertices []core.Vec3
	Faces    [][3]int // Vertex indices per triangle
}

// LoadPLY loads a PLY mesh file from fsys
func LoadPLY(fsys fs.FS, filename string) (*PLYData, error) {
	file, err := fsys.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	data, err := DecodePLY(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

// DecodePLY reads a PLY mesh. Polygons with more than three vertices are
// fan-triangulated; elements other than vertex and face are skipped.
func DecodePLY(r io.Reader) (*PLYData, error) {
	reader := bufio.NewReader(r)
	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, err
	}

	var values valueReader
	switch header.Format {
	case "ascii":
		values = &asciiValues{reader: reader}
	case "binary_little_endian":
		values = &binaryValues{reader: reader, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &binaryValues{reader: reader, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidPLY, header.Format)
	}

	data := &PLYData{}
	for _, element := range header.Elements {
		if err := readElement(values, element, data); err != nil {
			return nil, fmt.Errorf("%w: element %s: %v", ErrInvalidPLY, element.name, err)
		}
	}

	for _, face := range data.Faces {
		for _, idx := range face {
			if idx < 0 || idx >= len(data.Vertices) {
				return nil, fmt.Errorf("%w: face index %d out of range", ErrInvalidPLY, idx)
			}
		}
	}
	return data, nil
}

// parsePLYHeader reads up to and including the end_header line
func parsePLYHeader(reader *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}
	first := true

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("%w: header: %v", ErrInvalidPLY, err)
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		if first {
			if parts[0] != "ply" {
				return nil, fmt.Errorf("%w: missing ply magic", ErrInvalidPLY)
			}
			first = false
			continue
		}

		switch parts[0] {
		case "end_header":
			return header, nil
		case "format":
			if len(parts) < 2 {
				return nil, fmt.Errorf("%w: bad format line", ErrInvalidPLY)
			}
			header.Format = parts[1]
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("%w: bad element line", ErrInvalidPLY)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("%w: invalid element count %q", ErrInvalidPLY, parts[2])
			}
			header.Elements = append(header.Elements, plyElement{name: parts[1], count: count})
		case "property":
			if len(header.Elements) == 0 {
				return nil, fmt.Errorf("%w: property before element", ErrInvalidPLY)
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, err
			}
			last := &header.Elements[len(header.Elements)-1]
			last.props = append(last.props, prop)
		}
	}
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) >= 4 && parts[0] == "list" {
		return PLYProperty{IsList: true, ListType: parts[1], Type: parts[2], Name: parts[3]}, nil
	}
	if len(parts) == 2 && parts[0] != "list" {
		return PLYProperty{Type: parts[0], Name: parts[1]}, nil
	}
	return PLYProperty{}, fmt.Errorf("%w: invalid property %q", ErrInvalidPLY, strings.Join(parts, " "))
}

func readElement(values valueReader, element plyElement, data *PLYData) error {
	for i := 0; i < element.count; i++ {
		var position [3]float64
		var polygon []int

		for _, prop := range element.props {
			if prop.IsList {
				n, err := values.next(prop.ListType)
				if err != nil {
					return err
				}
				count, err := integral(n)
				if err != nil || count < 0 || count > maxListLength {
					return fmt.Errorf("invalid list length %v", n)
				}
				indices := prop.Name == "vertex_indices" || prop.Name == "vertex_index"
				for k := 0; k < count; k++ {
					v, err := values.next(prop.Type)
					if err != nil {
						return err
					}
					if !indices {
						continue
					}
					idx, err := integral(v)
					if err != nil {
						return fmt.Errorf("vertex index: %w", err)
					}
					polygon = append(polygon, idx)
				}
				continue
			}

			v, err := values.next(prop.Type)
			if err != nil {
				return err
			}
			switch prop.Name {
			case "x":
				position[0] = v
			case "y":
				position[1] = v
			case "z":
				position[2] = v
			}
		}

		switch element.name {
		case "vertex":
			data.Vertices = append(data.Vertices, core.NewVec3(position[0], position[1], position[2]))
		case "face":
			// Fan triangulation
			for k := 1; k+1 < len(polygon); k++ {
				data.Faces = append(data.Faces, [3]int{polygon[0], polygon[k], polygon[k+1]})
			}
		}
	}
	return nil
}

// integral converts a decoded value to an int, rejecting fractions and
// values outside the range of an int32
func integral(v float64) (int, error) {
	if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("non-integral value %v", v)
	}
	return int(v), nil
}

// valueReader yields successive scalar values of the given PLY type
type valueReader interface {
	next(dataType string) (float64, error)
}

type asciiValues struct {
	reader *bufio.Reader
	tokens []string
}

func (a *asciiValues) next(dataType string) (float64, error) {
	for len(a.tokens) == 0 {
		line, err := a.reader.ReadString('\n')
		a.tokens = strings.Fields(line)
		if len(a.tokens) == 0 && err != nil {
			return 0, err
		}
	}
	token := a.tokens[0]
	a.tokens = a.tokens[1:]
	return strconv.ParseFloat(token, 64)
}

type binaryValues struct {
	reader io.Reader
	order  binary.ByteOrder
}

func (b *binaryValues) next(dataType string) (float64, error) {
	switch dataType {
	case "char", "int8":
		var v int8
		err := binary.Read(b.reader, b.order, &v)
		return float64(v), err
	case "uchar", "uint8":
		var v uint8
		err := binary.Read(b.reader, b.order, &v)
		return float64(v), err
	case "short", "int16":
		var v int16
		err := binary.Read(b.reader, b.order, &v)
		return float64(v), err
	case "ushort", "uint16":
		var v uint16
		err := binary.Read(b.reader, b.order, &v)
		return float64(v), err
	case "int", "int32":
		var v int32
		err := binary.Read(b.reader, b.order, &v)
		return float64(v), err
	case "uint", "uint32":
		var v uint32
		err := binary.Read(b.reader, b.order, &v)
		return float64(v), err
	case "float", "float32":
		var v uint32
		err := binary.Read(b.reader, b.order, &v)
		return float64(math.Float32frombits(v)), err
	case "double", "float64":
		var v uint64
		err := binary.Read(b.reader, b.order, &v)
		return math.Float64frombits(v), err
	default:
		return 0, fmt.Errorf("unknown property type %q", dataType)
	}
}

// MeshPrimitives turns every face into a triangle primitive with the given
// shader, scaled and then translated. Degenerate faces are dropped.
func (d *PLYData) MeshPrimitives(s scene.Shader, scale float64, offset core.Vec3) []*scene.Primitive {
	primitives := make([]*scene.Primitive, 0, len(d.Faces))
	for _, face := range d.Faces {
		v0 := d.Vertices[face[0]].Multiply(scale).Add(offset)
		v1 := d.Vertices[face[1]].Multiply(scale).Add(offset)
		v2 := d.Vertices[face[2]].Multiply(scale).Add(offset)
		if v1.Subtract(v0).Cross(v2.Subtract(v0)).LengthSquared() == 0 {
			continue
		}
		primitives = append(primitives, scene.NewPrimitive(geometry.NewTriangle(v0, v1, v2), s))
	}
	return primitives
}
