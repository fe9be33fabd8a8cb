package main

import "yqhp/reports/internal/cli"

func main() {
	cli.Execute()
}
