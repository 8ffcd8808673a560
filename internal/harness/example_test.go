package harness_test

import (
	"context"
	"fmt"

	"github.com/agbru/mulbench/internal/harness"
	"github.com/agbru/mulbench/internal/multiply"
)

func ExampleRunner_Run() {
	plan, err := harness.NewPlan(harness.PlanConfig{MinSize: 10, MaxSize: 100, Steps: 4, Pairs: 2, Seed: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	naive, _ := multiply.GlobalFactory().Algorithm("naive")
	karatsuba, _ := multiply.GlobalFactory().Algorithm("karatsuba")

	r := &harness.Runner{Verify: true}
	res, err := r.Run(context.Background(), plan, []multiply.Algorithm{naive, karatsuba})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Sizes, res.Algorithms, res.Complete)
	// Output:
	// [10 40 70 100] [Naive Karatsuba] true
}
