package config

import "github.com/lixenwraith/glitchgrid/grid"

// Preset is a named inside color triple
type Preset struct {
	Name   string
	Inside []string
}

// Presets are the demo color schemes
var Presets = []Preset{
	{"Cyberpunk Neon", []string{"#6afbcb", "#00b8ff", "#d600ff"}},
	{"Sunset Neon", []string{"#ff92b3", "#ff9900", "#ff00cc"}},
	{"Matrix Green", []string{"#7dff9a", "#00ff00", "#003b00"}},
	{"Electric Purple", []string{"#ff7fcc", "#ff00ff", "#9900ff"}},
	{"Ice Blue", []string{"#62fafa", "#0099ff", "#0000ff"}},
	{"High Voltage", []string{"#ffff7d", "#ffcc00", "#ff9900"}},
	{"Red Alert", []string{"#ffa5a5", "#ff0000", "#990000"}},
	{"Acid Green", []string{"#9dff85", "#ffffff", "#00ff00"}},
	{"Firestorm", []string{"#ff6a00", "#ffcc00", "#fff200"}},
	{"Aqua Plasma", []string{"#00ffe1", "#00aaff", "#0055ff"}},
	{"Deep Violet", []string{"#b388ff", "#7c4dff", "#651fff"}},
	{"Hot Pink", []string{"#ff4081", "#f50057", "#c51162"}},
	{"Cyan Beam", []string{"#18ffff", "#00e5ff", "#00b0ff"}},
	{"Toxic Slime", []string{"#76ff03", "#64dd17", "#33691e"}},
	{"Amber Glow", []string{"#ffd740", "#ffab00", "#ff6f00"}},
	{"Mint Pulse", []string{"#69f0ae", "#00e676", "#00c853"}},
	{"Electric Blue", []string{"#40c4ff", "#2979ff", "#1a237e"}},
	{"Crimson Flash", []string{"#ff5252", "#ff1744", "#d50000"}},
}

// CharacterSets are the demo glyph sets
var CharacterSets = []string{
	"☰☱☲☳☴☵☶☷",
	"▤▥▦▧▨▩",
	"♚♛♜♝♞♟♔♕♖♗♘♙",
	"▖▗▘▙▚▛▜▝▞▟■",
	"◐◑◒◓◔◕",
	"◰◱◲◳◴◵◶◷",
	"10",
	"✻✼❄❅❆❇❈❉❊❋",
	"⣿⣷⣯⣟⡿⢿⣻⣽",
	"αβγδεζηθικλμ",
	"⚀⚁⚂⚃⚄⚅",
	"ᚠᚡᚢᚣᚤᚥᚦᚧᚨᚩᚪᚫ",
	"◢◣◤◥",
	"♠♥♦♣♤♢♧♡",
	"✽✾✿❀❁❂❃",
	"┌┐└┘├┤┬┴┼─",
	"╓╔╕╖╗╘╙╚╛╜╝",
	"⋐⋑⋒⋓",
}

// PresetPalette returns preset i (modulo the table) over the given outside colors
func PresetPalette(i int, outside []grid.Color) (grid.Palette, error) {
	n := len(Presets)
	i %= n
	if i < 0 {
		i += n
	}
	inside, err := ParsePalette(Presets[i].Inside)
	if err != nil {
		return grid.Palette{}, err
	}
	return grid.Palette{Inside: inside, Outside: outside}, nil
}

// PresetCharset returns glyph set i (modulo the table), filtered for the output
func PresetCharset(i int, terminal bool) []rune {
	n := len(CharacterSets)
	i %= n
	if i < 0 {
		i += n
	}
	return Charset(CharacterSets[i], terminal)
}
