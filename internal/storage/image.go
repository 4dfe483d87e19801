package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const maxAvatarDim = 512

// EncodeAvatar decodes a JPEG or PNG, downscales it so neither side
// exceeds 512px, and re-encodes it as lossy webp.
func EncodeAvatar(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > maxAvatarDim || h > maxAvatarDim {
		if w >= h {
			h = h * maxAvatarDim / w
			w = maxAvatarDim
		} else {
			w = w * maxAvatarDim / h
			h = maxAvatarDim
		}
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 80}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
