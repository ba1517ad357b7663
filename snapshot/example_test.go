package snapshot_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlplan/snapshot"
)

// ExampleEncode writes a snapshot to YAML and reads it back.
func ExampleEncode() {
	var buf strings.Builder
	if err := snapshot.Encode(&buf, duplex(), snapshot.FormatYAML); err != nil {
		fmt.Println("error:", err)
		return
	}

	got, err := snapshot.Decode(strings.NewReader(buf.String()), snapshot.FormatYAML)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(got.Name, len(got.Rooms), got.Rooms[2].Type)
	// Output: duplex 3 bedroom
}
