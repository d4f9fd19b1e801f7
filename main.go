package main

import (
	"fmt"
	"os"

	"fjacquet/creditlens/cmd/analyze"
	"fjacquet/creditlens/cmd/apply"
	"fjacquet/creditlens/cmd/auth"
	"fjacquet/creditlens/cmd/batch"
	"fjacquet/creditlens/cmd/common"
	"fjacquet/creditlens/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(apply.Cmd)
	root.Cmd.AddCommand(auth.Commands()...)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, common.UserMessage(err))
		os.Exit(1)
	}
}
