package main

import "github.com/UltraVanilla/BlockGameKeyValue/cmd"

func main() {
	cmd.Execute()
}
