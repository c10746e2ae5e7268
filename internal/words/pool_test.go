package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleReturnsDistinctWords(t *testing.T) {
	pool := NewPool(Builtin())

	for i := 0; i < 50; i++ {
		sample := pool.Sample(3)
		require.Len(t, sample, 3)
		seen := map[string]bool{}
		for _, w := range sample {
			assert.False(t, seen[w], "duplicate %q in one sample", w)
			seen[w] = true
		}
	}
}

func TestSampleLargerThanPool(t *testing.T) {
	pool := NewPool([]Word{
		{Text: "uno", Difficulty: DifficultyEasy},
		{Text: "due", Difficulty: DifficultyEasy},
	})

	sample := pool.Sample(5)
	assert.ElementsMatch(t, []string{"uno", "due"}, sample)
}

func TestSampleCoversWholePool(t *testing.T) {
	list := []Word{
		{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}, {Text: "e"},
	}
	pool := NewPool(list)

	// Over many draws every word must show up; a sampler that favors a
	// fixed prefix of the list would fail this.
	counts := map[string]int{}
	for i := 0; i < 200; i++ {
		for _, w := range pool.Sample(2) {
			counts[w]++
		}
	}
	for _, w := range list {
		assert.Greater(t, counts[w.Text], 0, "word %q never sampled", w.Text)
	}
}

func TestBuiltinCoversAllTiers(t *testing.T) {
	tiers := map[Difficulty]int{}
	for _, w := range Builtin() {
		require.NotEmpty(t, w.Text)
		tiers[w.Difficulty]++
	}
	assert.Greater(t, tiers[DifficultyEasy], 0)
	assert.Greater(t, tiers[DifficultyMedium], 0)
	assert.Greater(t, tiers[DifficultyHard], 0)
}

func TestFromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	content := "casa,easy\ngatto,easy\nchitarra,medium\n,easy\narcheologia,hard\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	list, err := FromCSV(path)
	require.NoError(t, err)
	require.Len(t, list, 4, "the empty-word record is skipped")
	assert.Equal(t, Word{Text: "casa", Difficulty: DifficultyEasy}, list[0])
	assert.Equal(t, Word{Text: "archeologia", Difficulty: DifficultyHard}, list[3])
}

func TestFromCSVMissingFile(t *testing.T) {
	_, err := FromCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestFromCSVEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	_, err := FromCSV(path)
	assert.Error(t, err)
}
