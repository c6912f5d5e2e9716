package main

import "github.com/worklog-dev/worklog/cmd"

func main() {
	cmd.Execute()
}
