package main

import "github.com/jsphweid/chordparser/cmd"

func main() {
	cmd.Execute()
}
