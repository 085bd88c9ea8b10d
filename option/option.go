package option

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	KB = 1 << 10
	MB = 1 << 20
)

var (
	ErrCapacity = errors.New("option: capacity must be at least 1")
)

// Option for SortedList.
type Option struct {
	// Capacity is the number of slots allocated up front.
	Capacity int `yaml:"capacity"`

	// ArenaSize is the byte budget of the list buffer.
	// Zero means the buffer lives on the Go heap without limit.
	ArenaSize uint32 `yaml:"arena_size"`

	Logger *slog.Logger `yaml:"-"`
}

// DefaultOption
var DefaultOption = &Option{
	Capacity:  16,
	ArenaSize: 0,
}

// Validate
func (o *Option) Validate() error {
	if o.Capacity < 1 {
		return fmt.Errorf("%w: %d", ErrCapacity, o.Capacity)
	}
	return nil
}

// GetLogger return the configured logger or slog.Default.
func (o *Option) GetLogger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Parse decodes a yaml document, missing fields keep DefaultOption values.
func Parse(data []byte) (*Option, error) {
	opt := *DefaultOption
	if err := yaml.Unmarshal(data, &opt); err != nil {
		return nil, fmt.Errorf("failed to parse option: %w", err)
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return &opt, nil
}

// Load reads option from a yaml file.
func Load(path string) (*Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read option: %w", err)
	}
	return Parse(data)
}
