package main

import "github.com/grohubglobal/Dynamic-web-sub000/cmd/grohub/cmd"

func main() {
	cmd.Execute()
}
