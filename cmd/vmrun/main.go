// Copyright 2022-2026 The lessvm-go Authors
// This file is part of the lessvm-go library.
//
// The lessvm-go library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The lessvm-go library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the lessvm-go library. If not, see <http://www.gnu.org/licenses/>.

// Command vmrun is a minimal bytecode loader and executor: it is not
// the project-scaffolding/build/deploy CLI that spec.md excludes, only
// a thin harness that loads a flat bytecode artifact and runs it
// through one VM.execute call.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/lessvm/lessvm-go/internal/vm"
	"github.com/lessvm/lessvm-go/log"
	"github.com/lessvm/lessvm-go/params"
)

func main() {
	app := &cli.App{
		Name:      "vmrun",
		Usage:     "load and execute a flat LessVM bytecode artifact",
		UsageText: "vmrun [options] <bytecode-file>",
		Version:   params.VersionWithCommit(params.GitCommit),
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:  "gas",
				Usage: "gas limit for the execution",
				Value: vm.DefaultLimits().GasLimit,
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "log one structured line per executed opcode",
			},
			&cli.StringFlag{
				Name:  "log.level",
				Usage: "trace/debug/info/warn/error",
				Value: "info",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "vmrun: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return cli.Exit("exactly one bytecode file argument is required", 1)
	}
	path := c.Args().Get(0)

	switch c.String("log.level") {
	case "trace":
		log.SetLevel(log.LvlTrace)
	case "debug":
		log.SetLevel(log.LvlDebug)
	case "warn":
		log.SetLevel(log.LvlWarn)
	case "error":
		log.SetLevel(log.LvlError)
	default:
		log.SetLevel(log.LvlInfo)
	}

	bytecode, err := loadBytecode(path)
	if err != nil {
		return cli.Exit(err, 1)
	}

	limits := vm.DefaultLimits()
	limits.GasLimit = c.Uint64("gas")

	cfg := vm.Config{}
	if c.Bool("trace") {
		cfg.Tracer = vm.NewLogTracer(log.Root())
	}

	lamports := uint64(0)
	accounts := vm.SliceAccountView{
		{Owner: [32]byte{}, Signer: true, Writable: true, Lamports: &lamports},
	}

	var programID [32]byte
	machine := vm.New(programID, accounts, nil, limits, cfg)

	result, err := machine.Execute(bytecode)
	gasUsed := machine.GasUsed()
	if err != nil {
		fmt.Printf("execution failed after %d gas: %v\n", gasUsed, err)
		return cli.Exit("", 1)
	}

	fmt.Printf("gas used: %d\n", gasUsed)
	if result != nil {
		fmt.Printf("return value: %d (0x%x)\n", uint64(*result), uint64(*result))
	} else {
		fmt.Println("return value: (none)")
	}
	return nil
}

// loadBytecode reads path as raw bytes, unless its contents are valid
// hex (a convenience for inline test artifacts), in which case they
// are decoded first.
func loadBytecode(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	trimmed := trimSpace(raw)
	if decoded, decErr := hex.DecodeString(string(trimmed)); decErr == nil {
		return decoded, nil
	}
	return raw, nil
}

func trimSpace(b []byte) []byte {
	start, end := 0, len(b)
	for start < end && isSpace(b[start]) {
		start++
	}
	for end > start && isSpace(b[end-1]) {
		end--
	}
	return b[start:end]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
