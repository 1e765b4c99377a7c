package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/npillmayer/dotmatrix/gb"
	"github.com/thatisuday/commando"
)

// runGenmapCommand writes the full Unicode→GB2312 mapping table as JSON,
// keys are decimal code points, values are [high, low] byte arrays. The
// output is the resource format OpenRegistry expects in a font directory.
func runGenmapCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	outPath := args["output"].Value
	table, err := gb.TableFromCharmap()
	if err != nil {
		fatalf("cannot derive mapping table: %v", err)
	}

	entries := make(map[string][2]int, table.Len())
	for r := rune(0x80); r <= 0xFFFF; r++ {
		if code, ok := table.Lookup(r); ok {
			entries[strconv.Itoa(int(r))] = [2]int{int(code.High), int(code.Low)}
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		fatalf("cannot encode mapping table: %v", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		fatalf("cannot write %s: %v", outPath, err)
	}
	fmt.Printf("wrote %d mappings to %s\n", len(entries), outPath)
}
