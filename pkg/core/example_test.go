package core_test

import (
	"context"
	"fmt"

	"github.com/scanalign/scanalign/pkg/core"
)

// ExampleAlignScans registers a scanner that sees the reference beacons
// from ten units along x.
func ExampleAlignScans() {
	input := `--- reference ---
1,2,3
4,8,15
16,23,42
--- moved ---
-9,2,3
-6,8,15
6,23,42
`
	scans, err := core.ParseScans("scans.txt", []byte(input))
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := core.AlignScans(context.Background(), scans, core.Config{MinOverlap: 3})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, f := range res.Frames {
		fmt.Printf("%s at %s\n", f.Name, f.Offset)
	}
	fmt.Println("beacons:", len(res.Beacons))
	fmt.Println("max distance:", core.MaxManhattan(res.Offsets()))
	// Output:
	// reference at 0,0,0
	// moved at 10,0,0
	// beacons: 3
	// max distance: 10
}
