package chart

import "math"

// set3 is the twelve color qualitative palette used for the notebook bars.
var set3 = []Color{
	{0x8d, 0xd3, 0xc7}, {0xff, 0xff, 0xb3}, {0xbe, 0xba, 0xda}, {0xfb, 0x80, 0x72},
	{0x80, 0xb1, 0xd3}, {0xfd, 0xb4, 0x62}, {0xb3, 0xde, 0x69}, {0xfc, 0xcd, 0xe5},
	{0xd9, 0xd9, 0xd9}, {0xbc, 0x80, 0xbd}, {0xcc, 0xeb, 0xc5}, {0xff, 0xed, 0x6f},
}

// sampleSet3 picks n colors spread evenly over the palette, first and last included.
func sampleSet3(n int) []Color {
	out := make([]Color, n)
	for i := range out {
		v := 0.0
		if n > 1 {
			v = float64(i) / float64(n-1)
		}
		idx := int(math.Floor(v * float64(len(set3))))
		if idx >= len(set3) {
			idx = len(set3) - 1
		}
		out[i] = set3[idx]
	}
	return out
}

// parseColors parses each color, failing on the first invalid one.
func parseColors(specs ...string) ([]Color, error) {
	out := make([]Color, len(specs))
	for i, s := range specs {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
