// Command memcontention estimates memory-module contention for a fixed number
// of processors over a range of module counts.
package main

import "github.com/sarchlab/memcontention/cmd/memcontention/cmd"

func main() {
	cmd.Execute()
}
