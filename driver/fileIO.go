package driver

import (
	"errors"
	"os"

	"github.com/gofrs/flock"
)

var ErrFileLocked = errors.New("file is locked by another process")

// FileIO Standard file IO guarded by an advisory lock file
type FileIO struct {
	// System file descriptors
	fd   *os.File
	lock *flock.Flock
}

func NewFileIOManager(fileName string) (*FileIO, error) {
	lock := flock.New(fileName + LockSuffix)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrFileLocked
	}
	fd, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, DataFilePerm)
	if err != nil {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
		return nil, err
	}
	return &FileIO{fd: fd, lock: lock}, nil
}

func (f *FileIO) Write(bytes []byte) (int, error) {
	return f.fd.Write(bytes)
}

func (f *FileIO) Sync() error {
	return f.fd.Sync()
}

func (f *FileIO) Close() error {
	err := f.fd.Close()
	if unlockErr := f.lock.Unlock(); err == nil {
		err = unlockErr
	}
	_ = os.Remove(f.lock.Path())
	return err
}
