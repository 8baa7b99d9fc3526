package main

import "gcs-food-backend/cmd/cli"

func main() {
	cli.Execute()
}
