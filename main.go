package main

import "github.com/narasux/fprim/cmd"

func main() {
	cmd.Execute()
}
