// pkg/render/font.go
package render

import (
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Faces bundles the font faces used by the HUD and menus.
type Faces struct {
	Text  font.Face // regular lines: HUD, descriptions, hints
	Title font.Face // champion names
	Big   font.Face // screen titles
}

// LoadFaces builds the three faces from the embedded Go Regular font.
func LoadFaces() *Faces {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("Failed to parse font: %v", err)
	}
	return &Faces{
		Text:  newFace(tt, 16),
		Title: newFace(tt, 20),
		Big:   newFace(tt, 28),
	}
}

func newFace(tt *opentype.Font, size float64) font.Face {
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatalf("Failed to create font face (size %v): %v", size, err)
	}
	return face
}
