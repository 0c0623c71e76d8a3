package main

import "github.com/masmgr/gitviz-go/cmd"

func main() {
	cmd.Run()
}
