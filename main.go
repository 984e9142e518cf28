package main

import "speedtab/cmd"

func main() {
	cmd.Execute()
}
