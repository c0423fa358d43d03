package bitmap

import (
	"github.com/RoaringBitmap/roaring"
)

// Range is a half-open run [Start, End) of byte offsets.
type Range struct {
	Start uint32
	End   uint32
}

// Diff returns the offsets at which got and want differ. Bytes present in
// only one of the two count as differing.
func Diff(got, want []byte) *roaring.Bitmap {
	bm := roaring.New()
	n := min(len(got), len(want))
	for i := 0; i < n; i++ {
		if got[i] != want[i] {
			bm.Add(uint32(i))
		}
	}
	if longest := max(len(got), len(want)); n < longest {
		bm.AddRange(uint64(n), uint64(longest))
	}
	return bm
}

// Ranges folds the offsets in bm into contiguous runs, returning at most
// limit of them. A limit <= 0 returns every run.
func Ranges(bm *roaring.Bitmap, limit int) []Range {
	var ranges []Range
	it := bm.Iterator()
	for it.HasNext() {
		off := it.Next()
		if last := len(ranges) - 1; last >= 0 && ranges[last].End == off {
			ranges[last].End++
			continue
		}
		if limit > 0 && len(ranges) == limit {
			break
		}
		ranges = append(ranges, Range{Start: off, End: off + 1})
	}
	return ranges
}
