// Renders an arena layout to a PNG thumbnail.
//
// go run ./tools/levelpreview -seed 7 -out arena.png
// go run ./tools/levelpreview -level assets/arena.json

package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/Veekshithkadaveru/NightmareHorde-sub000/engine/maplib"
)

var (
	floorColor    = color.RGBA{24, 22, 28, 255}
	obstacleColor = color.RGBA{96, 96, 108, 255}
	startColor    = color.RGBA{64, 200, 88, 255}
)

func main() {
	levelPath := flag.String("level", "", "Level JSON to preview (empty generates one)")
	out := flag.String("out", "preview.png", "Output PNG path")
	width := flag.Float64("width", 1600, "Generated arena width")
	height := flag.Float64("height", 1200, "Generated arena height")
	seed := flag.Int64("seed", 0, "Generation seed (0 uses the clock)")
	maxDim := flag.Int("px", 480, "Longest edge of the preview image")
	save := flag.String("save", "", "Also write the level JSON here")
	flag.Parse()

	var (
		level *maplib.Level
		err   error
	)
	if *levelPath != "" {
		level, err = maplib.LoadJSON(*levelPath)
		if err != nil {
			log.Fatalf("load %s: %v", *levelPath, err)
		}
	} else {
		s := *seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		level = maplib.Generate("preview", *width, *height, s)
	}

	if *save != "" {
		if err := level.SaveJSON(*save); err != nil {
			log.Fatalf("save %s: %v", *save, err)
		}
		fmt.Printf("  → %s\n", *save)
	}

	full := rasterize(level)
	tw, th := fit(full.Bounds().Dx(), full.Bounds().Dy(), *maxDim)
	thumb := image.NewRGBA(image.Rect(0, 0, tw, th))
	xdraw.CatmullRom.Scale(thumb, thumb.Bounds(), full, full.Bounds(), xdraw.Over, nil)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()
	if err := png.Encode(f, thumb); err != nil {
		log.Fatalf("encode %s: %v", *out, err)
	}
	fmt.Printf("  → %s (%dx%d, %d obstacles)\n", *out, tw, th, len(level.Obstacles))
}

// rasterize paints the arena at one pixel per world unit
func rasterize(l *maplib.Level) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(l.Width), int(l.Height)))
	fillRect(img, 0, 0, l.Width, l.Height, floorColor)
	for _, o := range l.Obstacles {
		switch o.Shape {
		case maplib.ShapeBox:
			fillRect(img, o.X-o.HalfW, o.Y-o.HalfH, 2*o.HalfW, 2*o.HalfH, obstacleColor)
		case maplib.ShapeCircle:
			fillCircle(img, o.X, o.Y, o.Radius, obstacleColor)
		}
	}
	fillCircle(img, l.PlayerStart.X, l.PlayerStart.Y, 10, startColor)
	return img
}

func fillRect(img *image.RGBA, x, y, w, h float64, c color.RGBA) {
	b := img.Bounds()
	x0, y0 := clampInt(int(x), b.Min.X, b.Max.X), clampInt(int(y), b.Min.Y, b.Max.Y)
	x1, y1 := clampInt(int(x+w), b.Min.X, b.Max.X), clampInt(int(y+h), b.Min.Y, b.Max.Y)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			img.SetRGBA(px, py, c)
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	b := img.Bounds()
	x0, y0 := clampInt(int(cx-r), b.Min.X, b.Max.X), clampInt(int(cy-r), b.Min.Y, b.Max.Y)
	x1, y1 := clampInt(int(cx+r)+1, b.Min.X, b.Max.X), clampInt(int(cy+r)+1, b.Min.Y, b.Max.Y)
	r2 := r * r
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			dx := float64(px) + 0.5 - cx
			dy := float64(py) + 0.5 - cy
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(px, py, c)
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// fit scales the raster dimensions so the longest edge is maxDim
func fit(w, h, maxDim int) (int, int) {
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= maxDim {
		return w, h
	}
	ratio := float64(maxDim) / float64(longest)
	tw, th := int(float64(w)*ratio), int(float64(h)*ratio)
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}
	return tw, th
}
