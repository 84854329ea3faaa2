package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/chatdeck/internal/feed"
)

// DrawCard draws one news or event card filling the slot (x, y, w, h).
// img may be nil while the image is loading or when the card has none.
func DrawCard(dst *ebiten.Image, card feed.Card, img *ebiten.Image, x, y, w, h float64, hovered bool) {
	x += CardInset
	w -= CardInset * 2
	if w <= 0 || h <= 0 {
		return
	}

	border := ColorBorder
	if hovered {
		border = ColorFocusBorder
	}
	DrawFilledRoundRect(dst, float32(x-1), float32(y-1), float32(w+2), float32(h+2), CardRadius+1, border)
	DrawFilledRoundRect(dst, float32(x), float32(y), float32(w), float32(h), CardRadius, ColorSurface)

	imgH := h * CardImageRatio
	if img != nil {
		DrawImageCover(Clip(dst, x, y, w, imgH), img, x, y, w, imgH)
	} else {
		vector.DrawFilledRect(dst, float32(x), float32(y+CardRadius), float32(w), float32(imgH-CardRadius), ColorPlaceholder, false)
		DrawFilledRoundRect(dst, float32(x), float32(y), float32(w), float32(CardRadius*2), CardRadius, ColorPlaceholder)
		label := "News"
		if card.Kind == feed.CardEvent {
			label = "Event"
		}
		DrawTextCentered(dst, label, x+w/2, y+imgH/2, FontSizeHeading, ColorTextMuted)
	}

	if card.Kind == feed.CardEvent && card.Upcoming {
		bw, _ := MeasureText("Upcoming", FontSizeCaption)
		DrawFilledRoundRect(dst, float32(x+10), float32(y+10), float32(bw+16), 20, 10, ColorUpcoming)
		DrawText(dst, "Upcoming", x+18, y+13, FontSizeCaption, ColorSurface)
	}

	tx := x + CardPadding
	tw := w - CardPadding*2
	ty := y + imgH + CardPadding

	// Meta line: date and category or location
	meta := card.Date
	if meta != "" || card.Tag != "" {
		mx := tx
		if card.Kind == feed.CardEvent && meta != "" {
			drawCalendarIcon(dst, float32(mx+5), float32(ty+FontSizeSmall/2+1), 5, ColorTextSecondary)
			mx += 16
		}
		if meta != "" {
			DrawText(dst, meta, mx, ty, FontSizeSmall, ColorTextSecondary)
			mw, _ := MeasureText(meta, FontSizeSmall)
			mx += mw + 12
		}
		if card.Tag != "" {
			if card.Kind == feed.CardEvent {
				drawPinIcon(dst, float32(mx+5), float32(ty+FontSizeSmall/2), 5, ColorPrimary)
				mx += 16
			}
			tag := TruncateText(card.Tag, tx+tw-mx, FontSizeSmall)
			DrawText(dst, tag, mx, ty, FontSizeSmall, ColorPrimary)
		}
		ty += LineHeight(FontSizeSmall) + 4
	}

	ty += DrawTextWrapped(dst, card.Title, tx, ty, tw, FontSizeBody, 2, ColorText) + 4

	// Summary fills whatever height is left
	lines := int((y + h - CardPadding - ty) / LineHeight(FontSizeSmall))
	if lines > 0 && card.Summary != "" {
		DrawTextWrapped(dst, card.Summary, tx, ty, tw, FontSizeSmall, lines, ColorTextSecondary)
	}
}
