package driver

import (
	"io"

	"golang.org/x/exp/mmap"
)

type MMap struct {
	readAt  *mmap.ReaderAt
	section *io.SectionReader
}

func NewMMap(fileName string) (*MMap, error) {
	readAt, err := mmap.Open(fileName)
	if err != nil {
		return nil, err
	}
	return &MMap{
		readAt:  readAt,
		section: io.NewSectionReader(readAt, 0, int64(readAt.Len())),
	}, nil
}

func (m *MMap) Read(bytes []byte) (int, error) {
	return m.section.Read(bytes)
}

func (m *MMap) Close() error {
	return m.readAt.Close()
}

func (m *MMap) Size() int64 {
	return int64(m.readAt.Len())
}
