package main

import "github.com/CalistaJajalla/nochebuena-budget-tracker/cmd"

func main() {
	cmd.Execute()
}
