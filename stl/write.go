package stl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/terrain/csg"
)

// defaultName is used for an empty solid name.
const defaultName = "terrain"

// Write meshes s and writes it to w as ASCII STL named name.
func Write(w io.Writer, name string, s csg.Solid, opts ...Option) error {
	fs, err := Mesh(s, opts...)
	if err != nil {
		return err
	}
	return WriteFacets(w, name, fs)
}

// WriteFacets writes fs to w as ASCII STL. Whitespace in name becomes '_'.
func WriteFacets(w io.Writer, name string, fs []Facet) error {
	name = strings.Join(strings.Fields(name), "_")
	if name == "" {
		name = defaultName
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", name)
	for _, f := range fs {
		fmt.Fprintf(bw, "facet normal %s\n outer loop\n", vec(f.Normal))
		for _, v := range f.Vertex {
			fmt.Fprintf(bw, "  vertex %s\n", vec(v))
		}
		bw.WriteString(" endloop\nendfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return bw.Flush()
}

func vec(v r3.Vec) string { return fmt.Sprintf("%g %g %g", v.X, v.Y, v.Z) }
