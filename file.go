package CheeseDB

import (
	"github.com/Kirov7/CheeseDB/data"
	"github.com/Kirov7/CheeseDB/driver"
	"github.com/pkg/errors"
)

// SaveToFile writes the last traversal to path, one record per line, and returns the number of lines written.
// With Options.RefreshOnSave a new traversal is taken first.
func (c *Catalog) SaveToFile(path string) (int, error) {
	if c.options.RefreshOnSave {
		if _, err := c.ListAll(); err != nil {
			return 0, err
		}
	}

	writer, err := driver.NewIOManager(path)
	if err != nil {
		return 0, wrapOpenErr(err, path, "writing")
	}

	var written int
	for _, record := range c.lastTraversal {
		if _, err := writer.Write(data.EncodeRecord(record)); err != nil {
			_ = writer.Close()
			return written, errors.Wrapf(err, "write %s", path)
		}
		written++
	}
	if c.options.SyncWrites {
		if err := writer.Sync(); err != nil {
			_ = writer.Close()
			return written, errors.Wrapf(err, "sync %s", path)
		}
	}
	if err := writer.Close(); err != nil {
		return written, errors.Wrapf(err, "close %s", path)
	}
	return written, nil
}

// LoadFromFile merges the records stored at path into the catalog and returns how many were loaded.
// Loading stops quietly at the first malformed or truncated record, everything before it is kept.
// The last traversal is cleared once the file is open.
func (c *Catalog) LoadFromFile(path string) (int, error) {
	reader, err := driver.NewReader(path)
	if err != nil {
		return 0, wrapOpenErr(err, path, "reading")
	}
	defer reader.Close()

	c.lastTraversal = nil

	var loaded int
	dec := data.NewRecordDecoder(reader)
	for {
		record, err := dec.Next()
		if err != nil {
			break
		}
		c.insert(record)
		loaded++
	}
	return loaded, nil
}
