package main

import "github.com/KaramelBytes/tidyweek-cli/cmd"

func main() {
	cmd.Execute()
}
