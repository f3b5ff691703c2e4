package main

import "reddypet/cmd/reddypet"

func main() {
	reddypet.Execute()
}
