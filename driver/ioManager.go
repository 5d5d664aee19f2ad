package driver

import "io"

const (
	DataFilePerm = 0644
	LockSuffix   = ".lock"
)

// IOManager writer side of a catalog file
type IOManager interface {
	// Write Writing bytes of data to a file
	Write([]byte) (int, error)

	// Sync Make data persistent
	Sync() error

	// Close Close the driver and release its lock
	Close() error
}

// Reader read side of a catalog file
type Reader interface {
	io.Reader

	// Close Close the driver
	Close() error

	Size() int64
}

// NewIOManager Init IOManager instance, the file is truncated
// attention! the IOManager is only support FileIO
func NewIOManager(fileName string) (IOManager, error) {
	return NewFileIOManager(fileName)
}

// NewReader Init Reader instance backed by a read only memory map
func NewReader(fileName string) (Reader, error) {
	return NewMMap(fileName)
}
