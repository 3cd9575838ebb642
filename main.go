package main

import "github.com/magni-/trm6-ch3-professional-accounting/cmd"

func main() {
	cmd.Execute()
}
