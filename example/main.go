package main

import (
	"strings"

	"github.com/mgnsk/linkedlist/list"
)

func main() {
	lines := list.New(
		list.WithCapacity[string](8),
		list.WithEqual(strings.EqualFold),
	)

	lines.Add("a")
	lines.Add("b")

	// Insert reports false for an index past the end.
	if !lines.Insert("x", 1) {
		panic("insert failed")
	}

	// Removes and returns "x".
	removed, ok := lines.RemoveAt(1)
	if !ok {
		panic("remove failed")
	}
	println("removed", removed)

	// Matches "A" with the default equality configured above.
	println("removed a:", lines.Remove("A", nil))

	lines.Do(func(line string) bool {
		println(line)
		return true
	})

	lines.Destroy()
}
