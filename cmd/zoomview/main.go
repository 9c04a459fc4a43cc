// SPDX-License-Identifier: Unlicense OR MIT

package main

// zoomview shows an image fitted to the window. Pinch, Ctrl+scroll
// or the buttons zoom it.

import (
	"flag"
	"fmt"
	"image"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/zoomview/zoomview/internal/imgload"
	zwidget "github.com/zoomview/zoomview/widget"
)

var (
	imagePath = flag.String("image", "", "image file to display; a test pattern is shown if empty")
	width     = flag.Int("width", 400, "window width in dp")
	height    = flag.Int("height", 600, "window height in dp")
	debug     = flag.Bool("debug", false, "enable debug logging")
)

// Zoom button steps.
const (
	zoomInStep  = 1.25
	zoomOutStep = 1 / zoomInStep
)

type (
	C = layout.Context
	D = layout.Dimensions
)

type viewer struct {
	log *logrus.Logger

	image   zwidget.ZoomImage
	zoomIn  widget.Clickable
	zoomOut widget.Clickable
	inIcon  *widget.Icon
	outIcon *widget.Icon
	fitted  bool
}

func main() {
	flag.Parse()
	logger := initLogger(*debug)

	img, format, err := imgload.Load(*imagePath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load image")
	}
	logger.WithFields(logrus.Fields{
		"path":   *imagePath,
		"format": format,
		"size":   img.Bounds().Size(),
	}).Info("Image loaded")

	go func() {
		w := app.NewWindow(
			app.Title("Zoom View"),
			app.Size(unit.Dp(*width), unit.Dp(*height)),
		)
		if err := loop(w, img, logger); err != nil {
			logger.WithError(err).Fatal("Window closed with error")
		}
		logger.Info("Window closed")
		os.Exit(0)
	}()
	app.Main()
}

func initLogger(debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	return logger
}

func loop(w *app.Window, img image.Image, logger *logrus.Logger) error {
	th := material.NewTheme(gofont.Collection())
	v, err := newViewer(img, logger)
	if err != nil {
		return err
	}
	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			v.Layout(gtx, th)
			e.Frame(gtx.Ops)
		}
	}
	return nil
}

func newViewer(img image.Image, logger *logrus.Logger) (*viewer, error) {
	in, err := widget.NewIcon(icons.ContentAdd)
	if err != nil {
		return nil, fmt.Errorf("zoom in icon: %w", err)
	}
	out, err := widget.NewIcon(icons.ContentRemove)
	if err != nil {
		return nil, fmt.Errorf("zoom out icon: %w", err)
	}
	return &viewer{
		log:     logger,
		image:   zwidget.ZoomImage{Src: paint.NewImageOp(img)},
		inIcon:  in,
		outIcon: out,
	}, nil
}

func (v *viewer) Layout(gtx C, th *material.Theme) D {
	for v.zoomIn.Clicked() {
		v.zoom(zoomInStep)
	}
	for v.zoomOut.Clicked() {
		v.zoom(zoomOutStep)
	}
	dims := layout.Stack{Alignment: layout.SE}.Layout(gtx,
		layout.Expanded(v.image.Layout),
		layout.Stacked(func(gtx C) D {
			return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx C) D {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(material.IconButton(th, &v.zoomIn, v.inIcon, "Zoom in").Layout),
					layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
					layout.Rigid(material.IconButton(th, &v.zoomOut, v.outIcon, "Zoom out").Layout),
				)
			})
		}),
	)
	if !v.fitted {
		v.fitted = true
		b := v.image.Baseline()
		v.log.WithFields(logrus.Fields{
			"fit": b.Fit,
			"min": b.Min,
			"max": b.Max,
		}).Debug("Image fitted")
	}
	return dims
}

func (v *viewer) zoom(factor float32) {
	changed := v.image.Zoom(factor)
	v.log.WithFields(logrus.Fields{
		"factor":  factor,
		"scale":   v.image.Scale(),
		"changed": changed,
	}).Debug("Zoom button")
}
