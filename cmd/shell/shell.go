package shell

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/Kirov7/CheeseDB"
	"github.com/Kirov7/CheeseDB/cmd/root"
	"github.com/Kirov7/CheeseDB/data"
	"github.com/spf13/cobra"
)

const menu = `Choose an action:
a. Add a cheese
r. Remove a cheese
s. Search for a cheese
d. List all cheeses
f. Save to file
l. Load from file
q. Quit
`

var loadOnStart bool

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive cheese catalog menu",
	Long:  `shell drives the catalog from a text menu read on standard input.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := CheeseDB.NewCatalog(root.Options())
		if err != nil {
			return err
		}
		defer catalog.Close()

		if loadOnStart {
			n, err := catalog.LoadFromFile(root.DataFile())
			if err != nil {
				log.Println(err)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d cheeses from %s\n", n, root.DataFile())
			}
		}
		return Run(catalog, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	shellCmd.Flags().BoolVarP(&loadOnStart, "load", "l", false, "Load the configured data file before showing the menu")
	root.AddCommand(shellCmd)
}

// Session reads whitespace separated tokens the way the menu expects them
type Session struct {
	catalog *CheeseDB.Catalog
	in      *bufio.Scanner
	out     io.Writer
}

// Run serves the menu until q or the end of input. Failed operations are reported and the loop goes on.
func Run(catalog *CheeseDB.Catalog, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	s := &Session{catalog: catalog, in: scanner, out: out}
	for {
		fmt.Fprint(out, menu)
		choice, ok := s.token()
		if !ok {
			return scanner.Err()
		}
		switch choice {
		case "a":
			s.add()
		case "r":
			s.remove()
		case "s":
			s.search()
		case "d":
			s.dump()
		case "f":
			s.save()
		case "l":
			s.load()
		case "q":
			fmt.Fprintln(out, "Bye.")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice, please pick one of the listed actions.")
		}
	}
}

func (s *Session) token() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Session) number() (float64, bool) {
	tok, ok := s.token()
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Not a number: %s\n", tok)
		return 0, false
	}
	return v, true
}

func (s *Session) brandAndPrice() (string, float64, bool) {
	brand, ok := s.token()
	if !ok {
		return "", 0, false
	}
	price, ok := s.number()
	return brand, price, ok
}

func (s *Session) add() {
	fmt.Fprint(s.out, "Enter brand, type, fat content and price: ")
	brand, ok := s.token()
	if !ok {
		return
	}
	typ, ok := s.token()
	if !ok {
		return
	}
	fat, ok := s.number()
	if !ok {
		return
	}
	price, ok := s.number()
	if !ok {
		return
	}
	if err := s.catalog.Put(brand, typ, fat, price); err != nil {
		log.Println(err)
	}
}

func (s *Session) remove() {
	fmt.Fprint(s.out, "Enter brand and price of the cheese to remove: ")
	brand, price, ok := s.brandAndPrice()
	if !ok {
		return
	}
	if _, err := s.catalog.Remove(brand, price); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *Session) search() {
	fmt.Fprint(s.out, "Enter brand and price of the cheese to look up: ")
	brand, price, ok := s.brandAndPrice()
	if !ok {
		return
	}
	if s.catalog.Search(brand, price) {
		fmt.Fprintln(s.out, "Cheese found!")
	} else {
		fmt.Fprintln(s.out, "Cheese not found.")
	}
}

func (s *Session) dump() {
	records, err := s.catalog.ListAll()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Descriptions of all cheeses:")
	for _, r := range records {
		fmt.Fprintln(s.out, Describe(r))
	}
}

// Describe one line human readable rendering of a record
func Describe(r *data.Record) string {
	return fmt.Sprintf("Brand: %s, Type: %s, Fat Content: %g, Price: %g, State: %s",
		r.Brand, r.Type, r.FatContent, r.Price, r.State)
}

func (s *Session) save() {
	fmt.Fprint(s.out, "Enter the file name to save to: ")
	path, ok := s.token()
	if !ok {
		return
	}
	n, err := s.catalog.SaveToFile(path)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Saved %d cheeses to %s.\n", n, path)
}

func (s *Session) load() {
	fmt.Fprint(s.out, "Enter the file name to load from: ")
	path, ok := s.token()
	if !ok {
		return
	}
	n, err := s.catalog.LoadFromFile(path)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Loaded %d cheeses from %s.\n", n, path)
}
