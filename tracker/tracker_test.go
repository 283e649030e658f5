package tracker

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// Test_Next_DocumentedTrajectory mirrors the Hillenbrand-style vowel
// trajectory in the documented scenario: num_formants=3, seed
// [140, 230, 320], three successive frames.
func Test_Next_DocumentedTrajectory(t *testing.T) {
	trk := New(3, []float64{140, 230, 320})

	frames := [][]float64{
		{100, 150, 200, 240, 300},
		{110, 180, 210, 230, 310},
		{230, 270, 290, 350, 360},
	}
	want := [][]float64{
		{150, 240, 300},
		{180, 230, 310},
		{230, 270, 290},
	}

	for i, frame := range frames {
		got := trk.Next(frame)
		assert.Equal(t, want[i], append([]float64(nil), got...))
	}
}

// vowelFormants gives each case's seed as adult-male F1/F2/F3 in Hz,
// labeled by the Hillenbrand vowel category names the teacher's
// speech/vowels package carries ("ae", "ah", ... "uw") rather than by
// anonymous numbers.
var vowelFormants = []struct {
	name   string
	f1f2f3 [3]float64
}{
	{"iy", [3]float64{342, 2322, 3000}}, // "beet"
	{"ah", [3]float64{768, 1333, 2522}}, // "bob"
	{"uw", [3]float64{378, 997, 2343}},  // "boot"
	{"er", [3]float64{474, 1379, 1710}}, // "bird"
}

// Test_Next_VowelTrajectories tracks each vowel's steady-state formants
// through a frame carrying far more resonance peaks than tracked
// formants (the ordinary case: up to 32 candidate resonances against
// 3 tracked slots), checking the tracker locks onto the exact triple
// and ignores the distractor peaks.
func Test_Next_VowelTrajectories(t *testing.T) {
	for _, v := range vowelFormants {
		t.Run(v.name, func(t *testing.T) {
			f1, f2, f3 := v.f1f2f3[0], v.f1f2f3[1], v.f1f2f3[2]
			trk := New(3, []float64{f1, f2, f3})

			frame := append([]float64{50, 600, 1600, 4000, 4800, 5200}, f1, f2, f3)
			sort.Float64s(frame)

			got := trk.Next(frame)
			assert.Equal(t, []float64{f1, f2, f3}, append([]float64(nil), got...))
		})
	}
}

func Test_Next_TailSlotsUnchangedOnShortFrame(t *testing.T) {
	trk := New(4, []float64{300, 900, 2200, 3300})
	got := trk.Next([]float64{305, 890})
	assert.GreaterOrEqual(t, len(got), 2)
	// the two closest-matching slots track the short frame; trailing
	// slots with no peak to claim are dropped rather than fabricated.
	assert.Contains(t, got, float64(305))
}

func Test_Next_AlwaysSortedNoDuplicates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		numFormants := rapid.IntRange(2, 5).Draw(t, "numFormants")
		seed := make([]float64, numFormants)
		for i := range seed {
			seed[i] = float64(200 + i*400)
		}
		trk := New(numFormants, seed)

		for step := 0; step < 5; step++ {
			nPeaks := rapid.IntRange(0, 8).Draw(t, "nPeaks")
			frame := make([]float64, nPeaks)
			for i := range frame {
				frame[i] = rapid.Float64Range(80, 4000).Draw(t, "peak")
			}
			sort.Float64s(frame)

			got := trk.Next(frame)
			assert.True(t, sort.Float64sAreSorted(got))
			seen := map[float64]bool{}
			for _, v := range got {
				assert.False(t, seen[v], "duplicate estimate %v", v)
				seen[v] = true
			}
		}
	})
}

func Test_Reset_ReplacesEstimates(t *testing.T) {
	trk := New(3, []float64{140, 230, 320})
	trk.Reset([]float64{90, 1400, 2600})
	assert.Equal(t, []float64{90, 1400, 2600}, trk.Estimates())
}
