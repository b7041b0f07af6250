package stage

// sprite is fixed ASCII art with a parallel mask naming the part each glyph
// belongs to. A space in the mask is transparent.
type sprite struct {
	glyphs []string
	mask   []string
}

func (sp sprite) width() int {
	w := 0
	for _, row := range sp.glyphs {
		w = max(w, len([]rune(row)))
	}
	return w
}

func (sp sprite) height() int { return len(sp.glyphs) }

// origin anchors the sprite to the bottom centre of r.
func (sp sprite) origin(r cellRect) (col, row int) {
	return r.centerX() - sp.width()/2, r.bottom() - sp.height() + 1
}

// Mask letters.
const (
	partBody    = 'S'
	partTurban  = 'T'
	partFace    = 'F'
	partDrape   = 'D'
	partVeil    = 'V'
	partSari    = 'R'
	partFlame   = 'C'
	partBrass   = 'B'
	partHands   = 'H'
	partFlowers = 'P'
)

var maleSprite = sprite{
	glyphs: []string{
		`    .==.    `,
		`   (####)   `,
		`    (..)    `,
		`   _/~~\_   `,
		`  / |~~| \  `,
		` /  |~~|  \ `,
		`    |~~|    `,
		`    |  |    `,
		`   _|  |_   `,
		`  (__/\__)  `,
	},
	mask: []string{
		`    TTTT    `,
		`   TTTTTT   `,
		`    FFFF    `,
		`   SSDDSS   `,
		`  S SDDS S  `,
		` S  SDDS  S `,
		`    SDDS    `,
		`    SSSS    `,
		`   SSSSSS   `,
		`  SSSSSSSS  `,
	},
}

var femaleSprite = sprite{
	glyphs: []string{
		`    .--.    `,
		`   /VVVV\   `,
		`   |(..)|   `,
		`   |/~~\|   `,
		`   /~~~~\   `,
		`  /~~~~~~\  `,
		`  |~~~~~~|  `,
		` /~~~~~~~~\ `,
		`/~~~~~~~~~~\`,
		`^^^^^^^^^^^^`,
	},
	mask: []string{
		`    VVVV    `,
		`   VVVVVV   `,
		`   VFFFFV   `,
		`   VRRRRV   `,
		`   RRRRRR   `,
		`  RRRRRRRR  `,
		`  RRRRRRRR  `,
		` RRRRRRRRRR `,
		`RRRRRRRRRRRR`,
		`RRRRRRRRRRRR`,
	},
}

// handsSprite is the king's hands holding the first lit diya.
var handsSprite = sprite{
	glyphs: []string{
		`  ^  `,
		` (_)=`,
	},
	mask: []string{
		`  C  `,
		` BBBH`,
	},
}

// diyaSprite is one clay lamp of the foreground cluster.
var diyaSprite = sprite{
	glyphs: []string{
		` ^ `,
		`\_/`,
	},
	mask: []string{
		` C `,
		`BBB`,
	},
}

// tray rows below the tray lamps.
const (
	trayFlowers = `(*o*o*o*)`
	trayBase    = `\_______/`
)

// handsRow and trayRow are the sprite rows the props are held at.
const (
	handsRow = 4
	trayRow  = 5
)
