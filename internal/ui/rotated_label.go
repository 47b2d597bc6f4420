package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// RotatedLabel shows a short static caption rotated 90° counter-clockwise so
// it reads bottom to top, for captions beside vertical controls. The text is
// rasterized once at construction and the bitmap reused, so this is only
// suitable for static labels.
type RotatedLabel struct {
	text      string
	col       color.Color
	img       *canvas.Image
	target    fyne.Size
	hasTarget bool
}

// NewRotatedLabel creates a rotated caption in the theme foreground color.
func NewRotatedLabel(text string) *RotatedLabel {
	r := &RotatedLabel{text: text, col: theme.ForegroundColor()}
	r.render()
	return r
}

// CanvasObject exposes the underlying image for layout containers.
func (r *RotatedLabel) CanvasObject() fyne.CanvasObject { return r.img }

// SetTargetSize constrains the label to the given box, scaling the bitmap
// proportionally inside it.
func (r *RotatedLabel) SetTargetSize(w, h float32) {
	r.target = fyne.NewSize(w, h)
	r.hasTarget = true
	if r.img == nil {
		return
	}
	r.img.FillMode = canvas.ImageFillContain
	r.img.SetMinSize(r.target)
}

func (r *RotatedLabel) render() {
	face := pickCaptionFace()
	if closer, ok := face.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	src := rasterizeCaption(r.text, r.col, face)
	out := rotate90CCW(src)

	img := canvas.NewImageFromImage(out)
	img.FillMode = canvas.ImageFillContain
	if r.hasTarget {
		img.SetMinSize(r.target)
	} else {
		img.SetMinSize(fyne.NewSize(float32(out.Bounds().Dx()), float32(out.Bounds().Dy())))
	}
	r.img = img
}

// rasterizeCaption draws text into a fresh bitmap with padding on every side
// so no glyph clips at the border.
func rasterizeCaption(text string, col color.Color, face font.Face) *image.RGBA {
	const pad = 8
	d := &font.Drawer{Face: face}
	metrics := face.Metrics()
	w := int(d.MeasureString(text)>>6) + pad
	h := int((metrics.Ascent+metrics.Descent)>>6) + pad
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = dst
	d.Src = image.NewUniform(color.NRGBAModel.Convert(col))
	d.Dot = fixed.P(pad/2, int(metrics.Ascent>>6)+pad/2)
	d.DrawString(text)
	return dst
}

// rotate90CCW returns a new image turned a quarter turn counter-clockwise, so
// the left edge of src becomes the bottom edge of the result.
func rotate90CCW(src *image.RGBA) *image.RGBA {
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for dy := 0; dy < w; dy++ {
		for dx := 0; dx < h; dx++ {
			dst.Set(dx, dy, src.RGBAAt((w-1)-dy, dx))
		}
	}
	return dst
}

// pickCaptionFace loads the theme font at a caption size, falling back to a
// bitmap face when parsing fails.
func pickCaptionFace() font.Face {
	size := float64(theme.TextSize())
	if size <= 0 {
		size = 14
	}
	size *= currentScale() * 0.75
	if size < 6 {
		size = 6
	}
	if res := theme.TextFont(); res != nil {
		if data := res.Content(); len(data) > 0 {
			if ttf, err := opentype.Parse(data); err == nil {
				face, err := opentype.NewFace(ttf, &opentype.FaceOptions{Size: size, DPI: 96, Hinting: font.HintingFull})
				if err == nil {
					return face
				}
			}
		}
	}
	return basicfont.Face7x13
}
