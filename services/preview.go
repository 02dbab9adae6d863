package services

import (
	"bytes"
	"fmt"
	"freevector_app_go/models"
	"freevector_app_go/services/catalog"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Open Graph card size
const (
	PreviewWidth  = 1200
	PreviewHeight = 630
)

// Tile colors cycle like the hero showcase grid
var previewTileColors = []string{"#3b82f6", "#a855f7", "#ec4899"}

// PreviewRenderer draws Open Graph PNG cards for the catalog and its
// categories. Rendered cards are cached by catalog fingerprint.
type PreviewRenderer struct {
	bold    *text.FontSource
	regular *text.FontSource

	mu    sync.Mutex
	cache map[string][]byte
}

// NewPreviewRenderer loads the embedded Go fonts
func NewPreviewRenderer() (*PreviewRenderer, error) {
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	return &PreviewRenderer{bold: bold, regular: regular, cache: make(map[string][]byte)}, nil
}

// Render returns the PNG card for a category; All renders the catalog card.
// Undeclared categories are catalog.ErrInvalidCategory.
func (p *PreviewRenderer) Render(store *catalog.Store, category models.IconCategory) ([]byte, error) {
	records, err := store.ByCategory(category)
	if err != nil {
		return nil, err
	}

	key := store.Fingerprint() + "/" + category.Slug()
	p.mu.Lock()
	defer p.mu.Unlock()
	if png, ok := p.cache[key]; ok {
		return png, nil
	}

	title := "FreeVectorIcons"
	subtitle := "Beautiful vector icons for modern designers"
	if category != models.CategoryAll {
		title = string(category)
		subtitle = "FreeVectorIcons"
	}

	png, err := p.draw(title, subtitle, len(records))
	if err != nil {
		return nil, err
	}
	p.cache[key] = png
	return png, nil
}

func (p *PreviewRenderer) draw(title, subtitle string, count int) ([]byte, error) {
	dc := gg.NewContext(PreviewWidth, PreviewHeight)
	defer dc.Close()

	dc.SetHexColor("#f8fafc")
	dc.Clear()

	// Accent blobs in opposite corners
	dc.SetHexColor("#e0e7ff")
	dc.DrawCircle(PreviewWidth, 0, 260)
	if err := dc.Fill(); err != nil {
		return nil, err
	}
	dc.SetHexColor("#fce7f3")
	dc.DrawCircle(0, PreviewHeight, 200)
	if err := dc.Fill(); err != nil {
		return nil, err
	}

	dc.SetHexColor("#ffffff")
	dc.DrawRoundedRectangle(60, 60, PreviewWidth-120, PreviewHeight-120, 32)
	if err := dc.Fill(); err != nil {
		return nil, err
	}

	dc.SetHexColor("#111827")
	dc.SetFont(p.bold.Face(64))
	dc.DrawString(title, 110, 190)

	dc.SetHexColor("#6b7280")
	dc.SetFont(p.regular.Face(32))
	dc.DrawString(subtitle, 110, 245)

	dc.SetHexColor("#4f46e5")
	dc.SetFont(p.bold.Face(40))
	dc.DrawString(fmt.Sprintf("%d icons", count), 110, 505)

	// One tile per icon, capped at the gallery display limit
	tiles := count
	if tiles > catalog.DisplayLimit {
		tiles = catalog.DisplayLimit
	}
	const tile, gap, perRow = 56.0, 16.0, 8
	originX := float64(PreviewWidth) - 110 - perRow*tile - (perRow-1)*gap
	for i := 0; i < tiles; i++ {
		x := originX + float64(i%perRow)*(tile+gap)
		y := 300 + float64(i/perRow)*(tile+gap)
		dc.SetHexColor(previewTileColors[i%len(previewTileColors)])
		dc.DrawRoundedRectangle(x, y, tile, tile, 12)
		if err := dc.Fill(); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}
	return buf.Bytes(), nil
}
