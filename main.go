package main

import "github/chapool/tron-walletconnect/cmd"

func main() {
	cmd.Execute()
}
