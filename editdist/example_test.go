package editdist_test

import (
	"fmt"

	"github.com/katalvlaran/zhmistake/editdist"
)

// ExampleDistance compares two tone-numbered readings.
func ExampleDistance() {
	opts := editdist.DefaultOptions()
	d, _, err := editdist.Distance([]rune("zhong1"), []rune("zong3"), &opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d)
	// Output: 2
}
