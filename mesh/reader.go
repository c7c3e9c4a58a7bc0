package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/notargets/gofes/utils"
)

// Element type codes follow the SU2 convention,
// from here: https://su2code.github.io/docs_v7/Mesh-File/
type SU2ElementType uint8

const (
	ELType_Point         SU2ElementType = 1
	ELType_LINE                         = 3
	ELType_Triangle                     = 5
	ELType_Quadrilateral                = 9
)

func geomFromSU2(nType int) (g GeomType) {
	switch SU2ElementType(nType) {
	case ELType_Point:
		g = Point
	case ELType_LINE:
		g = Segment
	case ELType_Triangle:
		g = Triangle
	case ELType_Quadrilateral:
		g = Quad
	default:
		panic(fmt.Errorf("unsupported SU2 element type code: %d", nType))
	}
	return
}

// ReadSU2 reads an SU2 format mesh file holding segment, triangle or quad
// elements, with boundary faces grouped under named markers. Malformed
// input is a fatal error: no partial mesh is usable downstream.
func ReadSU2(filename string, verbose bool) (msh *Mesh) {
	var (
		file *os.File
		err  error
	)
	if verbose {
		fmt.Printf("Reading SU2 file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		panic(fmt.Errorf("unable to open file %s\n %s", filename, err))
	}
	defer file.Close()
	msh = ReadSU2From(bufio.NewReader(file), verbose)
	return
}

func ReadSU2From(reader *bufio.Reader, verbose bool) (msh *Mesh) {
	msh = &Mesh{}
	msh.Dim = readNumber(reader)
	if msh.Dim != 1 && msh.Dim != 2 {
		panic(fmt.Errorf("unsupported mesh dimension: %d", msh.Dim))
	}
	readElements(reader, msh)
	readVertices(reader, msh)
	readBoundary(reader, msh)
	if verbose {
		fmt.Printf("Read %dD mesh: %d elements, %d vertices, %d boundary faces\n",
			msh.Dim, msh.NumElements(), msh.NumVertices(), len(msh.Boundary))
	}
	if err := msh.Validate(); err != nil {
		panic(err)
	}
	return
}

func readElements(reader *bufio.Reader, msh *Mesh) {
	var (
		K = readNumber(reader)
	)
	msh.Elements = make([]Element, K)
	for k := 0; k < K; k++ {
		fields := splitFields(getLineNoComments(reader))
		g := geomFromSU2(atoi(fields[0]))
		nv := g.NumVerts()
		if len(fields) < 1+nv {
			panic(fmt.Errorf("element %d: %s needs %d vertices, line has %d fields",
				k, g, nv, len(fields)))
		}
		verts := make([]int, nv)
		for i := 0; i < nv; i++ {
			verts[i] = atoi(fields[1+i])
		}
		msh.Elements[k] = Element{Type: g, Verts: verts}
	}
}

func readVertices(reader *bufio.Reader, msh *Mesh) {
	var (
		x, y float64
		err  error
	)
	Nv := readNumber(reader)
	msh.VX = utils.NewVector(Nv)
	msh.VY = utils.NewVector(Nv)
	vxD, vyD := msh.VX.Data(), msh.VY.Data()
	for i := 0; i < Nv; i++ {
		line := getLineNoComments(reader)
		if msh.Dim == 1 {
			if _, err = fmt.Sscanf(line, "%f", &x); err != nil {
				panic(fmt.Errorf("unable to read coordinate from line [%s]", line))
			}
			vxD[i] = x
		} else {
			if _, err = fmt.Sscanf(line, "%f %f", &x, &y); err != nil {
				panic(fmt.Errorf("unable to read coordinates from line [%s]", line))
			}
			vxD[i], vyD[i] = x, y
		}
	}
}

func readBoundary(reader *bufio.Reader, msh *Mesh) {
	NMark := readNumber(reader)
	for n := 0; n < NMark; n++ {
		label := readLabel(reader)
		msh.Markers = append(msh.Markers, label)
		nFaces := readNumber(reader)
		for i := 0; i < nFaces; i++ {
			fields := splitFields(getLineNoComments(reader))
			g := geomFromSU2(atoi(fields[0]))
			if g.Dimension() != msh.Dim-1 {
				panic(fmt.Errorf("marker %s: boundary faces of a %dD mesh must be %dD, got %s",
					label, msh.Dim, msh.Dim-1, g))
			}
			nv := g.NumVerts()
			verts := make([]int, nv)
			for j := 0; j < nv; j++ {
				verts[j] = atoi(fields[1+j])
			}
			msh.Boundary = append(msh.Boundary, BoundaryElement{Type: g, Verts: verts, Attr: n})
		}
	}
}

func getToken(reader *bufio.Reader) (token string) {
	line := getLineNoComments(reader)
	ind := strings.Index(line, "=")
	if ind < 0 {
		panic(fmt.Errorf("badly formed input line [%s], should have an =", line))
	}
	token = line[ind+1:]
	return
}

func readLabel(reader *bufio.Reader) (label string) {
	var (
		err error
	)
	token := getToken(reader)
	if _, err = fmt.Sscanf(token, "%s", &label); err != nil {
		panic(fmt.Errorf("unable to read label from token: [%s]", token))
	}
	label = strings.Trim(label, " ")
	return
}

func readNumber(reader *bufio.Reader) (num int) {
	var (
		err error
	)
	token := getToken(reader)
	if _, err = fmt.Sscanf(token, "%d", &num); err != nil {
		panic(fmt.Errorf("unable to read number from token: [%s]", token))
	}
	return
}

func getLine(reader *bufio.Reader) (line string) {
	var (
		err error
	)
	if line, err = reader.ReadString('\n'); err != nil && err != io.EOF {
		panic(err)
	} else if err == io.EOF && len(strings.TrimSpace(line)) == 0 {
		panic(fmt.Errorf("unexpected end of mesh file"))
	}
	return strings.TrimRight(line, "\r\n")
}

func getLineNoComments(reader *bufio.Reader) (line string) {
	for {
		line = strings.Trim(getLine(reader), " ")
		ind := strings.Index(line, "%")
		if ind == 0 || len(line) == 0 {
			continue
		}
		return
	}
}

func splitFields(line string) (fields []string) {
	fields = strings.Fields(line)
	if len(fields) == 0 {
		panic(fmt.Errorf("empty line where element data expected"))
	}
	return
}

func atoi(s string) (num int) {
	var (
		err error
	)
	if _, err = fmt.Sscanf(s, "%d", &num); err != nil {
		panic(fmt.Errorf("unable to read number from field: [%s]", s))
	}
	return
}
