package main

import "healthcoach/cmd/hc/root"

func main() {
	root.Execute()
}
