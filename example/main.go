package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/Jumpaku/go-abspath"
)

var sc = func() *bufio.Scanner {
	sc := bufio.NewScanner(os.Stdin)
	sc.Split(bufio.ScanLines)
	return sc
}()

func main() {
	current, err := os.Getwd()
	if err != nil {
		log.Panic(err)
	}
	fmt.Printf("resolving against %s (one path per line, EOF to quit)\n", current)

	for sc.Scan() {
		resolved, err := abspath.Resolve(current, sc.Text())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(resolved)
	}
}
