package motion

import (
	"encoding/hex"
	"image"

	"golang.org/x/crypto/blake2b"
	xdraw "golang.org/x/image/draw"
)

const hashSize = 16

// FrameHash computes a cheap perceptual hash of a frame: the image is
// reduced to a 16x16 grayscale thumbnail and digested. Two visually
// identical frames produce the same hash, letting the scheduler skip
// duplicate frames from near-static scenes.
func FrameHash(img image.Image) string {
	thumb := image.NewGray(image.Rect(0, 0, hashSize, hashSize))
	xdraw.ApproxBiLinear.Scale(thumb, thumb.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	sum := blake2b.Sum256(thumb.Pix)
	return hex.EncodeToString(sum[:16])
}
