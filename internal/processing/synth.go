package processing

import (
	"bytes"
	"crypto/rand"
	"image"
	"image/color"
	"image/png"
)

const frameSize = 32

// stagePalettes tint each stage's synthesized frame so the progression is
// visibly distinct: grayscale segmentation, blue normalisation, green
// extraction, amber encoding.
var stagePalettes = [][3]float64{
	{1, 1, 1},
	{0.4, 0.6, 1},
	{0.4, 1, 0.5},
	{1, 0.8, 0.3},
}

// synthFrame produces a small tinted noise PNG standing in for the stage's
// output imagery.
func synthFrame(stage int) ([]byte, error) {
	noise := make([]byte, frameSize*frameSize)
	if _, err := rand.Read(noise); err != nil {
		return nil, err
	}

	palette := stagePalettes[stage%len(stagePalettes)]
	img := image.NewRGBA(image.Rect(0, 0, frameSize, frameSize))
	for y := 0; y < frameSize; y++ {
		for x := 0; x < frameSize; x++ {
			v := float64(noise[y*frameSize+x])
			img.Set(x, y, color.RGBA{
				R: uint8(v * palette[0]),
				G: uint8(v * palette[1]),
				B: uint8(v * palette[2]),
				A: 0xFF,
			})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
