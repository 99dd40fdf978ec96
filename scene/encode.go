package scene

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var Formats = []string{"png", "jpeg", "bmp", "tiff"}

// Encode writes img to w in the named container format.
func Encode(w io.Writer, img Image, format string) error {
	var err error
	switch strings.ToLower(format) {
	case "png", "":
		err = png.Encode(w, img)
	case "jpeg", "jpg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff", "tif":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unknown image format %q, expected one of %s", format, strings.Join(Formats, ", "))
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	return nil
}
