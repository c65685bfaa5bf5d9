package loaders

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/shader"
)

const asciiSquare = `ply
format ascii 1.0
comment unit square as a single quad
element vertex 4
property float x
property float y
property float z
property uchar red
element face 1
property list uchar int vertex_indices
end_header
0 0 0 255
1 0 0 255
1 1 0 255
0 1 0 255
4 0 1 2 3
`

// binarySquare writes the same square as asciiSquare with two triangle faces
func binarySquare(t *testing.T, order binary.ByteOrder, format string) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("ply\n")
	buf.WriteString("format " + format + " 1.0\n")
	buf.WriteString("element vertex 4\n")
	buf.WriteString("property float x\n")
	buf.WriteString("property float y\n")
	buf.WriteString("property double z\n")
	buf.WriteString("element face 2\n")
	buf.WriteString("property list uchar int vertex_indices\n")
	buf.WriteString("end_header\n")

	vertices := [][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	for _, v := range vertices {
		binary.Write(&buf, order, v[0])
		binary.Write(&buf, order, v[1])
		binary.Write(&buf, order, float64(v[2]))
	}
	for _, face := range [][3]int32{{0, 1, 2}, {0, 2, 3}} {
		binary.Write(&buf, order, uint8(3))
		for _, idx := range face {
			binary.Write(&buf, order, idx)
		}
	}
	return buf.Bytes()
}

func TestDecodePLY_Formats(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"ascii", []byte(asciiSquare)},
		{"binary little endian", binarySquare(t, binary.LittleEndian, "binary_little_endian")},
		{"binary big endian", binarySquare(t, binary.BigEndian, "binary_big_endian")},
	}

	expectedVertices := []core.Vec3{
		core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(1, 1, 0), core.NewVec3(0, 1, 0),
	}
	expectedFaces := [][3]int{{0, 1, 2}, {0, 2, 3}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := DecodePLY(bytes.NewReader(tt.input))
			if err != nil {
				t.Fatalf("DecodePLY failed: %v", err)
			}
			if len(data.Vertices) != len(expectedVertices) {
				t.Fatalf("Expected %d vertices, got %d", len(expectedVertices), len(data.Vertices))
			}
			for i, v := range expectedVertices {
				if data.Vertices[i] != v {
					t.Errorf("Vertex %d: expected %v, got %v", i, v, data.Vertices[i])
				}
			}
			if len(data.Faces) != len(expectedFaces) {
				t.Fatalf("Expected %d faces, got %d", len(expectedFaces), len(data.Faces))
			}
			for i, f := range expectedFaces {
				if data.Faces[i] != f {
					t.Errorf("Face %d: expected %v, got %v", i, f, data.Faces[i])
				}
			}
		})
	}
}

// triangleHeader declares three vertices and one face
const triangleHeader = "ply\nformat ascii 1.0\nelement vertex 3\nproperty float x\nproperty float y\nproperty float z\n" +
	"element face 1\nproperty list uchar int vertex_indices\nend_header\n"

// binaryHugeList declares a face whose uint list count is near 2^32
func binaryHugeList() string {
	var buf bytes.Buffer
	buf.WriteString("ply\nformat binary_little_endian 1.0\nelement face 1\n")
	buf.WriteString("property list uint int vertex_indices\nend_header\n")
	binary.Write(&buf, binary.LittleEndian, uint32(4_000_000_000))
	return buf.String()
}

func TestDecodePLY_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing magic", "format ascii 1.0\nend_header\n"},
		{"truncated header", "ply\nformat ascii 1.0\nelement vertex 1\n"},
		{"unknown format", "ply\nformat binary_middle_endian 1.0\nend_header\n"},
		{"property before element", "ply\nformat ascii 1.0\nproperty float x\nend_header\n"},
		{"bad element count", "ply\nformat ascii 1.0\nelement vertex many\nend_header\n"},
		{"truncated body", "ply\nformat ascii 1.0\nelement vertex 2\nproperty float x\nend_header\n1\n"},
		{
			"face index out of range",
			"ply\nformat ascii 1.0\nelement vertex 1\nproperty float x\nproperty float y\nproperty float z\n" +
				"element face 1\nproperty list uchar int vertex_indices\nend_header\n0 0 0\n3 0 0 7\n",
		},
		{"infinite list length", triangleHeader + "0 0 0\n1 0 0\n0 1 0\ninf 0 1 2\n"},
		{"huge list length", triangleHeader + "0 0 0\n1 0 0\n0 1 0\n1e18 0 1 2\n"},
		{"negative list length", triangleHeader + "0 0 0\n1 0 0\n0 1 0\n-3 0 1 2\n"},
		{"fractional vertex index", triangleHeader + "0 0 0\n1 0 0\n0 1 0\n3 0 1.9 2\n"},
		{"binary list length over bound", binaryHugeList()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePLY(strings.NewReader(tt.input))
			if !errors.Is(err, ErrInvalidPLY) {
				t.Errorf("Expected ErrInvalidPLY, got %v", err)
			}
		})
	}
}

func TestDecodePLY_FloatListsAreSkipped(t *testing.T) {
	input := "ply\nformat ascii 1.0\nelement vertex 3\nproperty float x\nproperty float y\nproperty float z\n" +
		"element face 1\nproperty list uchar int vertex_indices\nproperty list uchar float texcoord\nend_header\n" +
		"0 0 0\n1 0 0\n0 1 0\n3 0 1 2 6 0.5 0.25 1 0 0 1\n"

	data, err := DecodePLY(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodePLY failed: %v", err)
	}
	if len(data.Faces) != 1 || data.Faces[0] != [3]int{0, 1, 2} {
		t.Errorf("Expected one face {0 1 2}, got %v", data.Faces)
	}
}

func TestLoadPLY(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "square.ply")
	if err := os.WriteFile(path, binarySquare(t, binary.LittleEndian, "binary_little_endian"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	data, err := LoadPLY(os.DirFS(dir), "square.ply")
	if err != nil {
		t.Fatalf("LoadPLY failed: %v", err)
	}
	if len(data.Vertices) != 4 || len(data.Faces) != 2 {
		t.Errorf("Expected 4 vertices and 2 faces, got %d and %d", len(data.Vertices), len(data.Faces))
	}

	if _, err := LoadPLY(os.DirFS(dir), "missing.ply"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist for a missing file, got %v", err)
	}
}

func TestPLYData_MeshPrimitives(t *testing.T) {
	data := &PLYData{
		Vertices: []core.Vec3{
			core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(2, 0, 0),
		},
		// The second face is collinear
		Faces: [][3]int{{0, 1, 2}, {0, 1, 3}},
	}
	white := shader.NewDiffuse(core.NewVec3(1, 1, 1))

	primitives := data.MeshPrimitives(white, 2, core.NewVec3(0, 0, 5))
	if len(primitives) != 1 {
		t.Fatalf("Expected degenerate face to be dropped, got %d primitives", len(primitives))
	}

	bounds := primitives[0].BoundingCube()
	if bounds.Min != core.NewVec3(0, 0, 5) || bounds.Max != core.NewVec3(2, 2, 5) {
		t.Errorf("Expected scaled and offset bounds, got %v", bounds)
	}
	if primitives[0].Shader() != white {
		t.Error("Expected primitive to carry the mesh shader")
	}
	if n := primitives[0].NormalAt(core.NewVec3(0.5, 0.5, 5)); n != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected +Z normal from the face winding, got %v", n)
	}
}
