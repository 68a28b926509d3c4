package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gomeboy-core/internal/cartridge"
	"github.com/thelolagemann/gomeboy-core/internal/gameboy"
)

func testROM() []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x134:], "BENCH")
	return rom
}

func TestBench(t *testing.T) {
	times, err := bench(gameboy.NewGameBoy(testROM()), 3)
	require.NoError(t, err)
	assert.Len(t, times, 3)

	var buf bytes.Buffer
	report(&buf, times)
	assert.Contains(t, buf.String(), "Frames:     3")
}

func TestBench_Stops(t *testing.T) {
	rom := testROM()
	rom[0x100] = 0xDD

	times, err := bench(gameboy.NewGameBoy(rom), 3)
	assert.Error(t, err)
	assert.Empty(t, times)

	var buf bytes.Buffer
	report(&buf, times)
	assert.Equal(t, "No frames completed\n", buf.String())
}

func TestPlotFrameTimes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.png")
	require.NoError(t, plotFrameTimes([]time.Duration{time.Millisecond, 2 * time.Millisecond}, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestPrintInfo(t *testing.T) {
	var buf bytes.Buffer
	printInfo(&buf, cartridge.NewCartridge(testROM()))

	out := buf.String()
	assert.Contains(t, out, "Title:       BENCH")
	assert.Contains(t, out, "Type:        0x00 ROM ONLY")
	assert.Contains(t, out, fmt.Sprintf("Image:       %d bytes\n", len(testROM())))
	assert.True(t, strings.Contains(out, "Checksum:    0x00 mismatch"))
}

func TestRunConfig(t *testing.T) {
	_, _, err := runConfig{logLevel: "info", palette: "green"}.options()
	assert.NoError(t, err)

	_, _, err = runConfig{logLevel: "loud", palette: "green"}.options()
	assert.Error(t, err)

	_, _, err = runConfig{logLevel: "info", palette: "blue"}.options()
	assert.Error(t, err)
}
