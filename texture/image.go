package texture

import (
	stdimage "image"
	"math"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/gazed/rayna/colour"
	"github.com/gazed/rayna/internal/rng"
	"github.com/gazed/rayna/mesh"
	"golang.org/x/image/draw"
)

// Image is a texture backed by a decoded raster image, sampled by the
// intersection's UV coordinate after an affine scale/offset, the way the
// original source's ImageTexture does (spec.md §4.5: `Image(image, scale,
// offset)`).
type Image struct {
	pix          *colour.Image[colour.Colour]
	scaleX, offX float64
	scaleY, offY float64
}

// NewImageTexture wraps an already-decoded linear colour buffer with the
// given UV scale and offset.
func NewImageTexture(pix *colour.Image[colour.Colour], scaleX, scaleY, offX, offY float64) Image {
	return Image{pix: pix, scaleX: scaleX, scaleY: scaleY, offX: offX, offY: offY}
}

// DecodeImage loads a raster image from path (any format bild/imgio
// supports), resamples it to the given resolution with bilinear filtering,
// and converts its 8-bit sRGB samples to the engine's linear-RGB radiance
// representation. Resampling down to a fixed working resolution up-front
// keeps every later lookup a plain array index rather than a per-sample
// image decode.
func DecodeImage(path string, width, height int) (*colour.Image[colour.Colour], error) {
	src, err := imgio.Open(path)
	if err != nil {
		return nil, err
	}
	rgba := clone.AsRGBA(src)

	dst := stdimage.NewRGBA(stdimage.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), rgba, rgba.Bounds(), draw.Over, nil)

	out := colour.NewImage[colour.Colour](width, height)
	out.Each(func(x, y int, p *colour.Colour) {
		i := dst.PixOffset(x, y)
		*p = FromSRGB8(dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2])
	})
	return out, nil
}

func (im Image) Value(hit mesh.Intersection, _ *rng.Source) colour.Colour {
	u := im.offX + hit.UV[0]*im.scaleX
	v := im.offY + hit.UV[1]*im.scaleY
	v = 1 - v // flip to image row order, which runs top-to-bottom

	x := int(u * float64(im.pix.Width()))
	y := int(v * float64(im.pix.Height()))
	if x < 0 || x >= im.pix.Width() || y < 0 || y >= im.pix.Height() {
		return ErrorColour
	}
	return im.pix.At(x, y)
}

// FromSRGB8 converts an 8-bit sRGB-ish sample to linear radiance by
// inverting the §6 output transform (c ← c^(1/2.2)): c_linear = (c/255)^2.2.
func FromSRGB8(r, g, b uint8) colour.Colour {
	conv := func(c uint8) float32 {
		return float32(math.Pow(float64(c)/255, 2.2))
	}
	return colour.Colour{R: conv(r), G: conv(g), B: conv(b)}
}
