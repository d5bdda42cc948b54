// internal/ui/card.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-cartoon-survivor/internal/config"
)

const (
	cardWidth  = 280
	cardHeight = 180

	// Смещения строк от центра карточки
	cardNameOffset = -64
	cardDescOffset = -24
	cardHintOffset = 36
)

// Card — карточка чемпиона на экране выбора.
type Card struct {
	CX, CY    float32
	titleFace font.Face
	textFace  font.Face
}

// NewCard создает карточку с центром в (cx, cy).
func NewCard(cx, cy float32, titleFace, textFace font.Face) *Card {
	return &Card{CX: cx, CY: cy, titleFace: titleFace, textFace: textFace}
}

// Draw отрисовывает подложку карточки, имя, описание и подсказку.
func (c *Card) Draw(screen *ebiten.Image, name, desc, hint string) {
	vector.DrawFilledRect(screen, c.CX-cardWidth/2, c.CY-cardHeight/2, cardWidth, cardHeight, config.CardColor, true)

	cx, cy := int(c.CX), int(c.CY)
	DrawCenteredText(screen, c.titleFace, name, cx, cy+cardNameOffset, config.TextLightColor)
	DrawCenteredText(screen, c.textFace, desc, cx, cy+cardDescOffset, config.TextMutedColor)
	DrawCenteredText(screen, c.textFace, hint, cx, cy+cardHintOffset, config.TextHintColor)
}
