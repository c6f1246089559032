package main

import "github.com/KenyaRunnerApps/roadhotmeal/cmd"

func main() {
	cmd.Execute()
}
