package dlist

// From pushes each value onto the front of list, in argument order, and
// returns the list. Because every insertion happens at the front, the
// front-to-back order of the result is the REVERSE of the argument order:
//
//	From(NewArenaList[int](), 0, 1, 2).String() == "[2, 1, 0]"
//
// That reversal is part of the contract, not an accident. Callers that want
// the literal order front-to-back should reverse their input, or build with
// PushBack themselves.
func From[T any, L List[T]](list L, values ...T) L {
	for _, value := range values {
		list.PushFront(value)
	}
	return list
}

// Fill pushes n copies of value onto the front of list and returns the
// list.
func Fill[T any, L List[T]](list L, value T, n int) L {
	for i := 0; i < n; i++ {
		list.PushFront(value)
	}
	return list
}
