package main

import "github.com/godwinstewart/lifheader/cmd"

func main() {
	cmd.Execute()
}
