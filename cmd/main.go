package main

import (
	_ "github.com/Kirov7/CheeseDB/cmd/eval"
	"github.com/Kirov7/CheeseDB/cmd/root"
	_ "github.com/Kirov7/CheeseDB/cmd/shell"
)

func main() {
	root.Execute()
}
