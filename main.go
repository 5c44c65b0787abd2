package main

import (
	"fmt"
	"os"

	"fjacquet/notas-pedidos/cmd/consolidate"
	"fjacquet/notas-pedidos/cmd/ledger"
	"fjacquet/notas-pedidos/cmd/root"
	"fjacquet/notas-pedidos/internal/config"
)

func init() {
	// .env values must be in the environment before viper reads NOTAS_* variables.
	_, _ = config.LoadEnv()

	root.Init()
	root.Cmd.AddCommand(consolidate.Cmd)
	root.Cmd.AddCommand(ledger.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
