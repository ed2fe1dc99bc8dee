// Package raster converts an arbitrary image.Image into the
// BitImageBand strips the SelectBitImageMode command carries, applying
// Floyd-Steinberg dithering to reduce grayscale input to the 1-bit
// canvas a thermal head can fire.
package raster

import (
	"image"
	"image/color"

	"github.com/kovidgoyal/imaging"

	"github.com/thermalcode/escpos"
)

// Bands rasterizes img into a sequence of BitImageBand values, each
// mode.Rows() dots tall, left to right across img's full width and top
// to bottom across its full height. The final band is padded with blank
// rows if img's height is not a multiple of mode.Rows().
func Bands(img image.Image, mode escpos.BitImageMode) []escpos.BitImageBand {
	binary := dither(img)
	bounds := binary.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	rowsPerBand := mode.Rows()

	var bands []escpos.BitImageBand
	for top := 0; top < height; top += rowsPerBand {
		canvas := make([]bool, width*rowsPerBand)
		for y := 0; y < rowsPerBand; y++ {
			srcY := top + y
			if srcY >= height {
				break
			}
			for x := 0; x < width; x++ {
				r, _, _, _ := binary.At(bounds.Min.X+x, bounds.Min.Y+srcY).RGBA()
				canvas[y*width+x] = r == 0
			}
		}
		bands = append(bands, escpos.BitImageBand{
			Mode:       mode,
			RawMode:    modeByte(mode),
			WidthCols:  width,
			HeightRows: rowsPerBand,
			Canvas:     canvas,
		})
	}
	return bands
}

// modeByte recovers the canonical ESC 0x2A selector byte for a density
// mode, the inverse of the parser's bitImageModeFromByte.
func modeByte(mode escpos.BitImageMode) byte {
	switch mode {
	case escpos.BitImageSingle8:
		return 0
	case escpos.BitImageDouble8:
		return 1
	case escpos.BitImageSingle24:
		return 32
	case escpos.BitImageDouble24:
		return 33
	default:
		return 32
	}
}

// dither converts img to a pure black-and-white image via Floyd-Steinberg
// error diffusion: the source is composited over white, grayscaled,
// inverted, then quantized with diffusion so printed output reproduces
// midtones as a dot pattern rather than a hard threshold.
func dither(imgSource image.Image) *image.NRGBA {
	rgba := imaging.Clone(imgSource)
	bounds := rgba.Bounds()
	white := imaging.New(bounds.Max.X, bounds.Max.Y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	composited := imaging.OverlayCenter(white, rgba, 1.0)
	gray := imaging.Grayscale(composited)
	inverted := imaging.Invert(gray)
	return floydSteinberg(inverted)
}

func floydSteinberg(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	binary := imaging.New(width, height, color.White)

	errs := make([][]float64, height)
	for i := range errs {
		errs[i] = make([]float64, width)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			r, _, _, _ := c.RGBA()
			oldPixel := float64(r>>8) + errs[y][x]
			newPixel := 0.0
			if oldPixel >= 128 {
				newPixel = 255.0
			}
			if newPixel != 0 {
				binary.Set(x, y, color.Black)
			}

			quantError := oldPixel - newPixel
			if x+1 < width {
				errs[y][x+1] += quantError * 7.0 / 16.0
			}
			if y+1 < height {
				if x-1 >= 0 {
					errs[y+1][x-1] += quantError * 3.0 / 16.0
				}
				errs[y+1][x] += quantError * 5.0 / 16.0
				if x+1 < width {
					errs[y+1][x+1] += quantError * 1.0 / 16.0
				}
			}
		}
	}

	return binary
}
