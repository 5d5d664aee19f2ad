package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Kirov7/CheeseDB"
	"github.com/Kirov7/CheeseDB/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) *CheeseDB.Catalog {
	options := CheeseDB.DefaultOptions()
	options.SyncWrites = false
	catalog, err := CheeseDB.NewCatalog(options)
	require.Nil(t, err)
	t.Cleanup(func() { _ = catalog.Close() })
	return catalog
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cheese.txt")
	catalog := newCatalog(t)

	input := strings.Join([]string{
		"a Gouda Semi-hard 45 5",
		"a Brie Soft 60 7.5",
		"s Brie 7.5",
		"r Brie 7.5",
		"s Brie 7.5",
		"r Edam 1",
		"x",
		"d",
		"f " + path,
		"q",
		"a Never Reached 1 1",
	}, "\n")
	var out bytes.Buffer
	assert.Nil(t, Run(catalog, strings.NewReader(input), &out))

	output := out.String()
	assert.Contains(t, output, "Cheese found!")
	assert.Contains(t, output, "Cheese not found.")
	assert.Contains(t, output, "Error: brand Edam, price 1.000000: cheese not found")
	assert.Contains(t, output, "Invalid choice")
	assert.Contains(t, output, "Brand: Gouda, Type: Semi-hard, Fat Content: 45, Price: 5, State: Solid")
	assert.Contains(t, output, "Saved 1 cheeses to "+path)
	assert.Contains(t, output, "Bye.")
	assert.Equal(t, 1, catalog.Len())

	content, err := os.ReadFile(path)
	assert.Nil(t, err)
	assert.Equal(t, "Gouda Semi-hard 45 5\n", string(content))

	fresh := newCatalog(t)
	out.Reset()
	assert.Nil(t, Run(fresh, strings.NewReader("l "+path+"\nl "+path+".missing\n"), &out))
	assert.Contains(t, out.String(), "Loaded 1 cheeses from "+path)
	assert.Contains(t, out.String(), "Error: ")
	assert.True(t, fresh.Search("Gouda", 5))
}

func TestRun_BadNumber(t *testing.T) {
	catalog := newCatalog(t)
	var out bytes.Buffer
	assert.Nil(t, Run(catalog, strings.NewReader("a Gouda Semi-hard lots 5\nq\n"), &out))
	assert.Contains(t, out.String(), "Not a number: lots")
	assert.Equal(t, 0, catalog.Len())
}

func TestDescribe(t *testing.T) {
	r := data.NewRecord("Brie", "Soft", 60.5, 7.5)
	r.State = data.Moldy
	assert.Equal(t, "Brand: Brie, Type: Soft, Fat Content: 60.5, Price: 7.5, State: Moldy", Describe(r))
}
