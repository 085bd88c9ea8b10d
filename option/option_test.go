package option

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	opt, err := Parse([]byte("capacity: 128\narena_size: 65536\n"))
	assert.Nil(err)
	assert.Equal(128, opt.Capacity)
	assert.Equal(uint32(64*KB), opt.ArenaSize)

	// defaults.
	opt, err = Parse([]byte("arena_size: 1024\n"))
	assert.Nil(err)
	assert.Equal(DefaultOption.Capacity, opt.Capacity)
	assert.Equal(uint32(1024), opt.ArenaSize)

	opt, err = Parse(nil)
	assert.Nil(err)
	assert.Equal(*DefaultOption, *opt)

	// DefaultOption is not modified.
	assert.Equal(16, DefaultOption.Capacity)
}

func TestParseError(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse([]byte("capacity: 0\n"))
	assert.ErrorIs(err, ErrCapacity)

	_, err = Parse([]byte("capacity: [1, 2]\n"))
	assert.ErrorContains(err, "failed to parse option")
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "sortedlist.yaml")
	assert.Nil(os.WriteFile(path, []byte("capacity: 4\n"), 0644))

	opt, err := Load(path)
	assert.Nil(err)
	assert.Equal(4, opt.Capacity)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestGetLogger(t *testing.T) {
	assert := assert.New(t)
	assert.NotNil((&Option{}).GetLogger())
}
