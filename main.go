package main

import "github.com/datagrid/datagrid-apis/cmd"

func main() {
	cmd.Execute()
}
