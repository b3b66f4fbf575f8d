package vcdgen

import (
	"bytes"
	"testing"

	"github.com/efficientgo/tools/core/pkg/testutil"
)

func TestWriteDumpVars(t *testing.T) {
	c := BuildCatalog(&IDAllocator{}, []string{"top"}, 2, 2, []int{8, 16})

	var buf bytes.Buffer
	w := NewWriter(&buf)
	testutil.Ok(t, WriteDumpVars(w, c))
	testutil.Ok(t, w.Flush())

	testutil.Equals(t, `$dumpvars
0!
0"
b00000000 #
b0000000000000000 $
$end
`, buf.String())
}

func TestWriteDumpVars_Empty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	testutil.Ok(t, WriteDumpVars(w, &Catalog{}))
	testutil.Ok(t, w.Flush())
	testutil.Equals(t, "$dumpvars\n$end\n", buf.String())
}
