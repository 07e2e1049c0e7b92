package main

import (
	"fmt"

	"github.com/karlseguin/dlist"
)

func main() {
	list := dlist.From(dlist.NewArenaList[int](), 0, 1, 2)
	fmt.Println(list) // [2, 1, 0] - From inserts at the front

	list.PushBack(9)
	fmt.Println(list) // [2, 1, 0, 9]

	value, _ := list.Nth(3)
	fmt.Println(value) // 9

	shared := dlist.Fill(dlist.NewSharedList[string](), "spice", 3)
	shared.WithFrontMut(func(value *string) { *value = "worm" })
	fmt.Println(shared) // [worm, spice, spice]

	// draining consumes the list
	drain := shared.Drain()
	for value, ok := drain.Next(); ok; value, ok = drain.Next() {
		fmt.Println(value)
	}
	fmt.Println(shared.IsEmpty()) // true
}
