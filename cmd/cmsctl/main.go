package main

import "cms_backend/cmd/cmsctl/commands"

func main() {
	commands.Execute()
}
