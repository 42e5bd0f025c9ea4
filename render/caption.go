// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/go-text/typesetting/di"
	tsfont "github.com/go-text/typesetting/font"
	tslang "github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCaptionSize is the caption font size in points at 72 DPI.
const DefaultCaptionSize = 14

// RunCaption formats the standard caption for a generated tree, with
// English digit grouping.
func RunCaption(seed uint64, nodes int) string {
	return message.NewPrinter(language.English).Sprintf("%d nodes, seed %d", nodes, seed)
}

// Caption is a single line of text anchored to the bottom-right corner of
// a canvas.
type Caption struct {
	Text   string
	Size   float64
	Color  color.RGBA
	Margin int
}

// NewCaption returns a black caption of the default size.
func NewCaption(text string) Caption {
	return Caption{
		Text:   text,
		Size:   DefaultCaptionSize,
		Color:  color.RGBA{A: 0xff},
		Margin: 8,
	}
}

// goRegular holds the embedded Go Regular font parsed by both font stacks.
// Parsed fonts are read-only and safe for concurrent use.
var goRegular struct {
	once   sync.Once
	sfnt   *opentype.Font
	shaped *tsfont.Font
	err    error
}

func loadGoRegular() error {
	goRegular.once.Do(func() {
		goRegular.sfnt, goRegular.err = opentype.Parse(goregular.TTF)
		if goRegular.err != nil {
			return
		}
		face, err := tsfont.ParseTTF(bytes.NewReader(goregular.TTF))
		if err != nil {
			goRegular.err = err
			return
		}
		goRegular.shaped = face.Font
	})
	if goRegular.err != nil {
		return fmt.Errorf("render: caption font: %w", goRegular.err)
	}
	return nil
}

// Measure returns the shaped advance width of the caption in pixels.
func (c Caption) Measure() (float64, error) {
	if c.Text == "" {
		return 0, nil
	}
	if err := loadGoRegular(); err != nil {
		return 0, err
	}
	runes := []rune(c.Text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      tsfont.NewFace(goRegular.shaped),
		Size:      fixed.Int26_6(c.Size * 64),
		Script:    tslang.Latin,
		Language:  tslang.NewLanguage("en"),
	}
	var shaper shaping.HarfbuzzShaper
	out := shaper.Shape(input)
	return float64(out.Advance) / 64, nil
}

// Draw renders the caption onto dst.
func (c Caption) Draw(dst *Canvas) error {
	if c.Text == "" {
		return nil
	}
	width, err := c.Measure()
	if err != nil {
		return err
	}
	face, err := opentype.NewFace(goRegular.sfnt, &opentype.FaceOptions{
		Size:    c.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("render: caption face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	x := float64(dst.Width()-c.Margin) - width
	y := float64(dst.Height()-c.Margin) - float64(face.Metrics().Descent)/64
	d := &font.Drawer{
		Dst:  dst.img,
		Src:  image.NewUniform(c.Color),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(c.Text)
	return nil
}
