package game

import (
	"github.com/Pharap/arduboy-ravine-despoiler/internal/core"
)

// Character-cell renditions of the original bitmap assets. Sprites face
// right; the draw call flips them when a body moves the other way.

// PlaneSprite is the player's biplane.
var PlaneSprite = core.NewSprite(
	`    __`,
	` __|__|__`,
	`(________)>`,
)

// ZeppelinSprite is the background dirigible. It faces left because the
// zeppelin enters from the right edge drifting left.
var ZeppelinSprite = core.NewSprite(
	`  ___________`,
	` (___________)==<`,
	`    \_____/`,
)

// LogoSprite is the studio splash shown on boot.
var LogoSprite = core.NewSprite(
	`  ._________________.`,
	`  |  TINY  HANGAR   |`,
	`  |      GAMES      |`,
	`  '-----------------'`,
	`       presents`,
)

// TitleSprite is the title card.
var TitleSprite = core.NewSprite(
	` ____   ___  _   _ _____ _   _ _____`,
	`|  _ \ / _ \| | | |_   _| \ | | ____|`,
	`| |_) | |_| | | | | | | |  \| |  _|`,
	`|  _ <|  _  |\ \/ /_| |_| |\  | |___`,
	`|_| \_\_| |_| \__/|_____|_| \_|_____|`,
	`        D E S P O I L E R`,
)

// PressASprite is the start prompt overlaid on the title screen.
var PressASprite = core.NewSprite(
	`[ PRESS A TO START ]`,
)
