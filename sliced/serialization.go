package sliced

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
)

// WriteLoops serializes loops in a 32-bit precision binary format.
func WriteLoops(w io.Writer, loops []*Loop) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(loops))); err != nil {
		return errors.Wrap(err, "write loops")
	}
	for _, l := range loops {
		if err := writeLoop(w, l); err != nil {
			return errors.Wrap(err, "write loops")
		}
	}
	return nil
}

func writeLoop(w io.Writer, l *Loop) error {
	var closed uint32
	if l.Closed {
		closed = 1
	}
	header := []uint32{uint32(len(l.Points)), closed}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return err
	}
	coords := make([]float32, 0, len(l.Points)*2)
	for _, p := range l.Points {
		coords = append(coords, float32(p.X), float32(p.Y))
	}
	return binary.Write(w, binary.LittleEndian, coords)
}

// ReadLoops reads the output written by WriteLoops.
func ReadLoops(r io.Reader) ([]*Loop, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, errors.Wrap(err, "read loops")
	}
	var loops []*Loop
	for i := 0; i < int(count); i++ {
		l, err := readLoop(r)
		if err != nil {
			return nil, errors.Wrapf(err, "read loops: loop %d", i)
		}
		loops = append(loops, l)
	}
	return loops, nil
}

const readChunkSize = 4096

func readLoop(r io.Reader) (*Loop, error) {
	var header [2]uint32
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	l := &Loop{Closed: header[1] != 0}

	// The count is untrusted, so points are read in bounded chunks.
	coords := make([]float32, 2*readChunkSize)
	for read := uint32(0); read < header[0]; {
		n := header[0] - read
		if n > readChunkSize {
			n = readChunkSize
		}
		if err := binary.Read(r, binary.LittleEndian, coords[:2*n]); err != nil {
			return nil, errors.Wrapf(err, "read %d of %d points", read, header[0])
		}
		for i := 0; i < int(2*n); i += 2 {
			l.Points = append(l.Points, model2d.XY(float64(coords[i]), float64(coords[i+1])))
		}
		read += n
	}
	return l, nil
}

// SaveLoops writes loops to a file with WriteLoops.
func SaveLoops(path string, loops []*Loop) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save loops")
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := WriteLoops(w, loops); err != nil {
		return errors.Wrap(err, "save loops")
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "save loops")
	}
	return nil
}

// LoadLoops reads loops from a file written by SaveLoops.
func LoadLoops(path string) ([]*Loop, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load loops")
	}
	defer f.Close()
	loops, err := ReadLoops(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrap(err, "load loops")
	}
	return loops, nil
}
