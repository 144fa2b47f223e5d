package main

import "difftrace/cmd"

func main() {
	cmd.Run()
}
