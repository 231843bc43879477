package spikeknit_test

import (
	"fmt"
	"strings"

	"github.com/spikeknit/spikeknit"
)

func ExampleInstructions() {
	lines, err := spikeknit.Instructions(2, 1)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, line := range lines {
		fmt.Println(strings.TrimSuffix(line, ", "))
	}

	// Output:
	// Instructions:
	// Rows 1-2: k8
	// Row 3: k2, sk2p, k2, kyok
	// Row 4: k1, sk2p, k2, kyok, k1
	// Rows 5-6: k8
	// Row 7: k1, kyok, k2, sk2p, k1
	// Row 8: k2, kyok, k2, sk2p
	// Repeat from Row 1
}

func ExampleGenerate() {
	p, err := spikeknit.Generate(4, 4)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(p.Len(), "rows,", p.Width(), "stitches wide")

	// Output:
	// 12 rows, 18 stitches wide
}

func ExampleEncode() {
	p, _ := spikeknit.Generate(3, 2)

	data, err := spikeknit.Encode(p)
	if err != nil {
		fmt.Println(err)
		return
	}

	decoded, err := spikeknit.Decode(data)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(decoded.Equal(p))

	// Output:
	// true
}
