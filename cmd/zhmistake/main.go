// Command zhmistake generates noisy Chinese sentences for error-correction
// training.
//
// Usage:
//
//	zhmistake generate -i corpus.txt -n 2 --seed 7 > noisy.jsonl
//	zhmistake makers
package main

import "github.com/katalvlaran/zhmistake/internal/cli"

func main() {
	cli.Execute()
}
