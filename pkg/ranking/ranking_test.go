package ranking

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		score  float64
		want   []float64
	}{
		{"empty", nil, 90, []float64{90}},
		{"sorted", []float64{80, 100}, 90, []float64{80, 90, 100}},
		{"full, qualifies", []float64{1, 2, 3, 4, 5}, 2.5, []float64{1, 2, 2.5, 3, 4}},
		{"full, too slow", []float64{1, 2, 3, 4, 5}, 6, []float64{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]float64(nil), tt.scores...)
			assert.Equal(t, tt.want, Insert(in, tt.score, Size))
			assert.Equal(t, tt.scores, []float64(in))
		})
	}
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ranking.json")
	f := &FileStore{Path: path}

	scores, err := f.Load()
	require.NoError(t, err)
	assert.Empty(t, scores)

	b := NewBoard(f, zerolog.Nop())
	for _, s := range []float64{120, 95.5, 200, 101, 99, 300} {
		b.Submit(s)
	}
	got := b.Submit(150)
	assert.Equal(t, []float64{95.5, 99, 101, 120, 150}, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[95.5, 99, 101, 120, 150]`, string(data))
}

func TestBoardSurvivesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranking.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	b := NewBoard(&FileStore{Path: path}, zerolog.Nop())
	assert.Equal(t, []float64{42}, b.Submit(42))

	scores, err := (&FileStore{Path: path}).Load()
	require.NoError(t, err)
	assert.Equal(t, []float64{42}, scores)
}

func TestBoardBest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranking.json")
	b := NewBoard(&FileStore{Path: path}, zerolog.Nop())
	assert.Empty(t, b.Best())

	b.Submit(61.5)
	assert.Equal(t, []float64{61.5}, b.Best())

	require.NoError(t, os.WriteFile(path, []byte("]"), 0644))
	assert.Nil(t, b.Best())
}

type brokenStore struct{ loaded []float64 }

func (b *brokenStore) Load() ([]float64, error) { return b.loaded, nil }
func (b *brokenStore) Save([]float64) error     { return errors.New("disk full") }

func TestBoardWriteFailureStillRanks(t *testing.T) {
	b := NewBoard(&brokenStore{loaded: []float64{10, 30}}, zerolog.Nop())
	assert.Equal(t, []float64{10, 20, 30}, b.Submit(20))
}

func TestSQLStore(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "ranking.db"), zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	scores, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, scores)

	b := NewBoard(s, zerolog.Nop())
	for _, v := range []float64{300, 250, 400, 120, 180, 500} {
		b.Submit(v)
	}

	scores, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, []float64{120, 180, 250, 300, 400}, scores)

	var count int64
	require.NoError(t, s.DB.Model(&Score{}).Count(&count).Error)
	assert.EqualValues(t, Size, count)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	st, err := Open("json", filepath.Join(dir, "r.json"), zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, st)

	st, err = Open("sqlite", filepath.Join(dir, "r.db"), zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &SQLStore{}, st)
	require.NoError(t, st.(*SQLStore).Close())

	_, err = Open("redis", "", zerolog.Nop())
	assert.Error(t, err)
}
