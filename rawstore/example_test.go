package rawstore_test

import (
	"fmt"

	"github.com/katalvlaran/dynarr/rawstore"
)

// Example_ownershipTransfer shows the storage lifecycle an owning
// container drives: allocate, fill slots it accounts as live, hand the
// block to a bigger storage via Swap, release the old one.
func Example_ownershipTransfer() {
	old, err := rawstore.New[int](2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	*old.At(0), *old.At(1) = 10, 20

	grown, err := rawstore.New[int](4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	// Relocate, then exchange blocks in O(1).
	*grown.At(0), *grown.At(1) = *old.At(0), *old.At(1)
	old.Swap(&grown)
	grown.Release()

	fmt.Println("capacity:", old.Cap())
	fmt.Println("slot 1:", *old.At(1))
	// Output:
	// capacity: 4
	// slot 1: 20
}
