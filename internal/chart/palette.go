package chart

// Color tiers keyed by column count. The tier lists are fixed so that column
// i always receives the same color for a given matrix width, no matter how
// often the figure is re-rendered.
var (
	paletteTwo  = []string{"#f1c40f", "#2ecc71"}
	paletteFive = []string{"#f1c40f", "#2ecc71", "#9b59b6", "#e74c3c", "#bababa"}
	paletteSix  = []string{"#f1c40f", "#2ecc71", "#9b59b6", "#e74c3c", "#bababa", "#0f3cf1"}
	paletteFull = []string{
		"#f1c40f", "#2ecc71", "#9b59b6", "#e74c3c", "#bababa", "#0f3cf1",
		"#cc2e89", "#b69b59", "#5974b6", "#3cd7e7", "#7d2eff", "#adf10f",
		"#abecc7",
	}
)

// Palette returns a deterministic color list with at least n entries. Small
// column counts get their dedicated tier; wider matrices fall through to the
// full list, repeated when n outgrows it.
func Palette(n int) []string {
	var base []string
	switch {
	case n <= 2:
		base = paletteTwo
	case n == 3:
		base = paletteFive
	case n == 4:
		base = paletteSix
	case n == 5:
		base = append(paletteSix[:len(paletteSix):len(paletteSix)], "#cc2e89")
	default:
		base = paletteFull
	}

	if n <= len(base) {
		return base
	}

	// Extend by cycling; the leading assignments stay stable.
	extended := make([]string, 0, n)
	for i := 0; i < n; i++ {
		extended = append(extended, base[i%len(base)])
	}
	return extended
}
