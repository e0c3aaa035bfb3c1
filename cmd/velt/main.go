package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

const usage = `velt - operator dispatch playground

usage:
  velt            start an interactive session (or read stdin when piped)
  velt FILE       evaluate FILE line by line

Each line is one expression or assignment. Demo classes: Number(n),
Complex(re, im). Try: x = Number(5); x + 1; x < 6; x == 5; x += 2
`

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-h", "--help", "help":
			fmt.Print(usage)
			return
		default:
			f, err := os.Open(os.Args[1])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			defer f.Close()
			os.Exit(runLines(bufio.NewScanner(f)))
		}
	}

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		os.Exit(runRepl())
	}
	os.Exit(runLines(bufio.NewScanner(os.Stdin)))
}

func runLines(scanner *bufio.Scanner) int {
	s := newSession()
	status := 0
	for scanner.Scan() {
		out, err := s.ExecLine(scanner.Text())
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			status = 1
			continue
		}
		if out != "" {
			fmt.Println(out)
		}
	}
	return status
}
