/*
 * Copyright (c) 2023. Anton Starikov -- All Rights Reserved
 *
 * This file is part of HPTHERMO project.
 *
 * HPTHERMO is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as the Free Software Foundation,
 * either version 3 of the License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/antst/hpthermo/internal/config"
	"github.com/antst/hpthermo/internal/refrigerant"
	"github.com/antst/hpthermo/internal/thermo"

	"github.com/pborman/getopt/v2"
	"github.com/pkg/errors"
)

// Build version, overridden with flag during build.
var version = "devel"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func usage(set *getopt.Set, w io.Writer) {
	set.PrintUsage(w)
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "Commands:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s %s\n", name, params(commands[name]))
	}
}

func params(cmd command) string {
	out := make([]string, len(cmd.params))
	for i, p := range cmd.params {
		out[i] = "<" + p + ">"
	}
	return strings.Join(out, " ")
}

func calculator(name, resolution string) (*thermo.Calculator, error) {
	r, res, err := config.BuiltinRefrigerant()
	if err != nil {
		return nil, err
	}
	if name != "" {
		if r, err = refrigerant.Parse(name); err != nil {
			return nil, err
		}
	}
	if resolution != "" {
		if res, err = refrigerant.ParseResolution(resolution); err != nil {
			return nil, err
		}
	}
	return thermo.NewFor(r, res)
}

func run(args []string, stdout, stderr io.Writer) int {
	set := getopt.New()
	set.SetParameters("<command> <values...>")
	refr := set.StringLong("refrigerant", 'r', "", "refrigerant: R410A, R32, R290 (default: built-in)")
	tables := set.StringLong("tables", 't', "", "table resolution: coarse, fine (default: built-in)")
	human := set.BoolLong("human", 'H', "human readable values")
	help := set.BoolLong("help", 'h', "display help")
	showVersion := set.BoolLong("version", 'V', "display version")

	if err := set.Getopt(args, nil); err != nil {
		fmt.Fprintln(stderr, err)
		usage(set, stderr)
		return 1
	}
	if *help {
		usage(set, stdout)
		return 0
	}
	if *showVersion {
		fmt.Fprintf(stdout, "thermocalc %s\n", version)
		return 0
	}

	rest := set.Args()
	if len(rest) == 0 {
		usage(set, stderr)
		return 1
	}

	name := rest[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintln(stderr, "Function not found:", name)
		return 1
	}
	if len(rest)-1 < len(cmd.params) {
		fmt.Fprintf(stderr, "Usage: %s %s %s\n", set.Program(), name, params(cmd))
		return 1
	}

	calc, err := calculator(*refr, *tables)
	if err != nil {
		fmt.Fprintln(stderr, errors.WithMessage(err, "thermocalc"))
		return 1
	}

	values := make([]int64, len(cmd.params))
	for i := range values {
		values[i] = atoi(rest[i+1])
	}

	res := cmd.eval(calc, values)
	fmt.Fprintf(stdout, "%s: %s\n", res.label, res.format(*human))
	return 0
}
