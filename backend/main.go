package main

import "courtside/backend/cli"

func main() {
	cli.Execute()
}
