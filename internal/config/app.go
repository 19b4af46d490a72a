package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultAddr         = ":8080"
	defaultMaxDimension = 100
)

// LoadEnv reads a .env file from the working directory, or the given files,
// into the environment. Variables that are already set win. A missing default
// .env file is not an error.
func LoadEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if len(filenames) == 0 && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func Addr() string {
	if addr, ok := os.LookupEnv("APP_ADDR"); ok {
		return addr
	}
	return defaultAddr
}

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

// MaxDimension caps the width and height of mazes served over HTTP.
func MaxDimension() (int, error) {
	s, ok := os.LookupEnv("MAZE_MAX_DIMENSION")
	if !ok {
		return defaultMaxDimension, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to parse MAZE_MAX_DIMENSION: %w", err)
	}
	if n < 1 {
		return 0, fmt.Errorf("MAZE_MAX_DIMENSION must be positive, got %d", n)
	}
	return n, nil
}
