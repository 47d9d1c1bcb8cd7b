package main

import "github.com/programmersnake/avro-viewer-app/cmd"

func main() {
	cmd.Execute()
}
