package utils

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/sqweek/dialog"
	"golang.design/x/clipboard"
	"golang.org/x/image/draw"
)

// CopyImage copies img to the system clipboard as a PNG.
func CopyImage(img image.Image) error {
	err := clipboard.Init()
	if err != nil {
		return err
	}

	// encode image to byte slice
	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		return err
	}

	clipboard.Write(clipboard.FmtImage, b.Bytes())

	return nil
}

// SaveImage asks the user where to save img, and writes it there.
func SaveImage(img image.Image) error {
	filename, err := dialog.File().Filter("PNG Image", "png").Title("Save Image").Save()
	if err != nil {
		return err
	}

	return WriteImage(filename, img)
}

// WriteImage writes img as a PNG to filename, appending a .png
// extension if it is missing.
func WriteImage(filename string, img image.Image) error {
	if !strings.HasSuffix(strings.ToLower(filename), ".png") {
		filename += ".png"
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Scale resizes img to width x height using nearest neighbour
// sampling, which keeps the pixel art sharp.
func Scale(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
