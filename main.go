package main

import "github.com/jamesbehr/mklink/cmd"

func main() {
	cmd.Execute()
}
