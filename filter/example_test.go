package filter_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/resonance/filter"
	"github.com/katalvlaran/resonance/numeric"
)

// ExampleAdmits exercises the filter in isolation, the way diagnostics and
// collaborator tests do.
func ExampleAdmits() {
	n := big.NewInt(1073217479) // 32749 × 32771
	ctx := numeric.NewContext(n.BitLen(), 50)
	sqrtN, err := ctx.SqrtInt(n)
	if err != nil {
		fmt.Println("anomaly:", err)
		return
	}

	cfg := filter.DefaultConfig()
	fmt.Println(filter.Admits(n, big.NewInt(32749), sqrtN, cfg, ctx)) // true factor
	fmt.Println(filter.Admits(n, big.NewInt(2), sqrtN, cfg, ctx))     // implausibly small
	// Output:
	// true
	// false
}
