package main

import "github.com/dokugit/dokugit/cmd"

func main() {
	cmd.Run()
}
