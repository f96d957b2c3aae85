/*
Copyright © 2026 Mats Funke (matsjfunke)
*/
package main

import "github.com/matsjfunke/website/cmd"

func main() {
	cmd.Execute()
}
