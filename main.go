// Package main provides the entry point for the budget-chat CLI application.
package main

import (
	"os"

	"fjacquet/budget-chat/cmd/chat"
	"fjacquet/budget-chat/cmd/export"
	"fjacquet/budget-chat/cmd/receipt"
	"fjacquet/budget-chat/cmd/root"
)

func main() {
	root.Init()

	root.Cmd.AddCommand(chat.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(receipt.Cmd)

	if err := root.Cmd.Execute(); err != nil {
		root.Log.Error(err)
		os.Exit(1)
	}
}
