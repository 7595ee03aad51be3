package main

import "bookmarkhub/cmd/client/cmd"

func main() {
	cmd.Execute()
}
