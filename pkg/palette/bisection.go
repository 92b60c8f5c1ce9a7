package palette

import "math"

// chromaBisection collects hues cycle by cycle. Cycle k samples every 60/k
// degrees; hues are computed as j*60/k so equal angles from different cycles
// produce identical float64 keys.
func (g *generator) chromaBisection(count int) Palette {
	p := make(Palette, 0, count)
	used := make(map[float64]struct{}, count)

	for k := 1; len(p) < count; k++ {
		candidates := cycleCandidates(k, used)
		if k > deterministicCycles {
			g.rng.Shuffle(len(candidates), func(i, j int) {
				candidates[i], candidates[j] = candidates[j], candidates[i]
			})
		}
		for _, hue := range candidates {
			if len(p) == count {
				break
			}
			used[hue] = struct{}{}
			p = append(p, g.entry(hue))
		}
	}
	return p
}

// cycleCandidates returns the unused hues of cycle k in wheel order.
func cycleCandidates(k int, used map[float64]struct{}) []float64 {
	var out []float64
	seen := make(map[float64]struct{})
	for j := 1; j <= 6*k; j++ {
		hue := math.Mod(float64(j*60)/float64(k), 360)
		if _, ok := used[hue]; ok {
			continue
		}
		if _, ok := seen[hue]; ok {
			continue
		}
		seen[hue] = struct{}{}
		out = append(out, hue)
	}
	return out
}
