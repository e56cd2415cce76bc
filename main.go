package main

import "household-ledger/cmd"

func main() {
	cmd.Execute()
}
