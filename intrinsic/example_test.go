package intrinsic_test

import (
	"fmt"

	"github.com/soypat/go-locobasic/intrinsic"
)

// Literals &H8000 to &HFFFF read as negative 16-bit integers.
func ExampleParseHex() {
	v, _ := intrinsic.ParseHex("FFFE")
	fmt.Println(v)
	// Output:
	// -2
}

func ExampleROUND() {
	fmt.Println(intrinsic.ROUND(2.5, 0), intrinsic.ROUND(-2.5, 0), intrinsic.ROUND(3.14159, 2))
	// Output:
	// 3 -3 3.14
}
