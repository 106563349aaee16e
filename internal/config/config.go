// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	// Раскладка грязи по сетке с небольшим случайным сдвигом.
	LayoutMarginX   = 50
	LayoutMarginY   = 50
	LayoutCellW     = 240
	LayoutCellH     = 130
	LayoutJitter    = 18.0
	DirtHeight      = 100.0
	DirtMinWidth    = 140.0
	DirtMaxWidth    = 220.0
	DirtCharWidth   = 7.0
	DirtLabelMax    = 30
	DirtLabelInsetX = 10
	DirtLabelInsetY = 10

	IndicatorOffsetX = 30
	IndicatorRadius  = 12.0
	ClickCooldown    = 300 // ms

	// Зона, внутри которой указатель считается над холстом.
	PointerSurfaceMargin = 0
	ParticleOffscreen    = 50.0
)

var (
	BackgroundColor = color.RGBA{0x33, 0x33, 0x33, 0xff}
	DirtBaseColor   = color.RGBA{0x8b, 0x45, 0x13, 0xff}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}

	// Оттенки грязи выбираются по хешу id записи.
	DirtTints = []color.RGBA{
		{0x8b, 0x45, 0x13, 0xff},
		{0x7a, 0x4a, 0x1e, 0xff},
		{0x6b, 0x54, 0x2a, 0xff},
		{0x80, 0x3c, 0x18, 0xff},
		{0x5e, 0x48, 0x33, 0xff},
	}

	ArchiveColor      = color.RGBA{0x21, 0x96, 0xf3, 0xff}
	ArchiveColorLight = color.RGBA{0x64, 0xb5, 0xf6, 0xff}
	DeleteColor       = color.RGBA{0xf4, 0x43, 0x36, 0xff}
	DeleteColorLight  = color.RGBA{0xef, 0x53, 0x50, 0xff}
)
