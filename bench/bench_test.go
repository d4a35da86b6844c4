package bench

import (
	"math"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inf = math.Inf(1)

func TestLoadEmbedded(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	for _, m := range []*Measurements{set.Time, set.Backtracks} {
		n := len(m.Strategies())
		assert.Equal(t, 5, n, m.Name())
		for _, sc := range m.Scenarios() {
			v, ok := m.Values(sc)
			require.True(t, ok, sc)
			assert.Len(t, v, n, "%s/%s", m.Name(), sc)
		}
	}

	v, ok := set.Time.Value("Castle 32x32", "Standard Backtracking")
	require.True(t, ok)
	assert.True(t, IsDNF(v))

	v, ok = set.Backtracks.Value("Summer 32x32", "Fixed Node")
	require.True(t, ok)
	assert.Equal(t, 261.7, v)

	c, ok := set.Decisions.Counts("Castle 64x64")
	require.True(t, ok)
	assert.Equal(t, map[int]int{2: 1759, 3: 653, 4: 3, 5: 1, 29: 1}, c)
}

func TestAccessorsReturnCopies(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	v, _ := set.Time.Values("Floorplan 32x32")
	v[0] = -1
	again, _ := set.Time.Values("Floorplan 32x32")
	assert.NotEqual(t, -1.0, again[0])

	sc := set.Time.Scenarios()
	sc[0] = "changed"
	assert.Equal(t, "Castle 32x32", set.Time.Scenarios()[0])

	c, _ := set.Decisions.Counts("Summer 32x32")
	c[2] = 0
	c2, _ := set.Decisions.Counts("Summer 32x32")
	assert.Equal(t, 484, c2[2])
}

func TestNewMeasurementsLengthMismatch(t *testing.T) {
	_, err := NewMeasurements("m", "", "", []string{"A", "B", "C"}, []string{"X 32x32"},
		map[string][]float64{"X 32x32": {1, 2}})
	assert.ErrorIs(t, err, ErrLength)
}

func TestNewMeasurementsMissingAndExtra(t *testing.T) {
	_, err := NewMeasurements("m", "", "", []string{"A"}, []string{"X 32x32", "Y 32x32"},
		map[string][]float64{"X 32x32": {1}})
	assert.ErrorIs(t, err, ErrMissingScenario)

	_, err = NewMeasurements("m", "", "", []string{"A"}, []string{"X 32x32"},
		map[string][]float64{"X 32x32": {1}, "Z 8x8": {2}})
	assert.ErrorIs(t, err, ErrExtraScenario)
}

func TestNewMeasurementsRejectsNaN(t *testing.T) {
	_, err := NewMeasurements("m", "", "", []string{"A", "B"}, []string{"X 32x32"},
		map[string][]float64{"X 32x32": {math.NaN(), 1}})
	assert.ErrorIs(t, err, ErrBadValue)

	_, err = NewMeasurements("m", "", "", []string{"A", "B"}, []string{"X 32x32"},
		map[string][]float64{"X 32x32": {inf, 1}})
	assert.NoError(t, err)
}

func TestFilterScenarios(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	for _, size := range set.Time.Sizes() {
		got, err := set.Time.BySize(size)
		require.NoError(t, err)
		require.NotEmpty(t, got)

		// order preserving subset of the declared list
		all := set.Time.Scenarios()
		j := 0
		for _, sc := range got {
			for j < len(all) && all[j] != sc {
				j++
			}
			require.Less(t, j, len(all), "%q out of order", sc)
		}
	}

	got := FilterScenarios(set.Time.Scenarios(), "32x32")
	want := []string{"Castle 32x32", "Floorplan 32x32", "Summer 32x32"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FilterScenarios mismatch:\n%s", diff)
	}

	_, err = set.Time.BySize("16x16")
	assert.ErrorIs(t, err, ErrNoScenarios)
}

func TestSizesAndSlug(t *testing.T) {
	got := Sizes([]string{"Castle 32x32", "Summer 32x32", "Castle 128x128"})
	if diff := cmp.Diff([]string{"32x32", "128x128"}, got); diff != "" {
		t.Errorf("Sizes mismatch:\n%s", diff)
	}
	assert.Equal(t, "floorplan_128x128", Slug("Floorplan 128x128"))
	assert.Equal(t, "", SizeOf(""))
}

func TestAllNodesAscending(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)
	want := []int{2, 3, 4, 5, 6, 29, 40, 56}
	if diff := cmp.Diff(want, set.Decisions.AllNodes()); diff != "" {
		t.Errorf("AllNodes mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 3, 4, 5, 40}, set.Decisions.Nodes("Summer 32x32")); diff != "" {
		t.Errorf("Nodes mismatch:\n%s", diff)
	}
}

func TestNewDistributionRejectsBadCounts(t *testing.T) {
	_, err := NewDistribution("d", "", []string{"X 32x32"}, map[string]map[int]int{"X 32x32": {2: -1}})
	assert.ErrorIs(t, err, ErrBadValue)

	_, err = NewDistribution("d", "", []string{"X 32x32"}, map[string]map[int]int{})
	assert.ErrorIs(t, err, ErrMissingScenario)
}

func TestLoadFSBadLength(t *testing.T) {
	fsys := fstest.MapFS{
		DecisionNodesFile: {Data: []byte("name: d\nscenarios: [X 32x32]\ncounts:\n  X 32x32: {2: 1}\n")},
		TimeFile:          {Data: []byte("name: time\nstrategies: [A, B]\nscenarios: [X 32x32]\nvalues:\n  X 32x32: [.inf]\n")},
		BacktracksFile:    {Data: []byte("name: bt\nstrategies: [A]\nscenarios: [X 32x32]\nvalues:\n  X 32x32: [1]\n")},
	}
	_, err := LoadFS(fsys)
	assert.ErrorIs(t, err, ErrLength)
}

func TestLoadFSParsesInf(t *testing.T) {
	fsys := fstest.MapFS{
		DecisionNodesFile: {Data: []byte("name: d\nscenarios: [X 32x32]\ncounts:\n  X 32x32: {2: 1}\n")},
		TimeFile:          {Data: []byte("name: time\nstrategies: [A, B, C]\nscenarios: [X 32x32]\nvalues:\n  X 32x32: [.inf, 1.0, 2.0]\n")},
		BacktracksFile:    {Data: []byte("name: bt\nstrategies: [A]\nscenarios: [X 32x32]\nvalues:\n  X 32x32: [1]\n")},
	}
	set, err := LoadFS(fsys)
	require.NoError(t, err)
	v, _ := set.Time.Values("X 32x32")
	assert.True(t, IsDNF(v[0]))
	assert.Equal(t, []float64{1, 2}, v[1:])
}

func TestLoadDirMissing(t *testing.T) {
	_, err := LoadDir(t.TempDir() + "/nope")
	assert.Error(t, err)
}
