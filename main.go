package main

import "grana/cmd"

func main() {
	cmd.Execute()
}
