// apps/go-server/internal/puzzles/catalog.go
//
// The curated puzzle data. Connections groups are ordered easiest to
// hardest (yellow, green, blue, purple). Accepted-word lists for the letter
// sets only contain words spellable from the set's seven letters, each
// containing the center letter.

package puzzles

import "github.com/robalobadob/wordplay/apps/go-server/internal/connections"

var connectionsCatalog = [][]connections.Group{
	{
		{Category: "Shades of blue", Difficulty: connections.DifficultyYellow,
			Words: []string{"NAVY", "TEAL", "AZURE", "COBALT"}},
		{Category: "___ bear", Difficulty: connections.DifficultyGreen,
			Words: []string{"POLAR", "GRIZZLY", "PANDA", "SUN"}},
		{Category: "Chess pieces", Difficulty: connections.DifficultyBlue,
			Words: []string{"KING", "QUEEN", "ROOK", "BISHOP"}},
		{Category: "___ board", Difficulty: connections.DifficultyPurple,
			Words: []string{"KEY", "SURF", "CARD", "DASH"}},
	},
	{
		{Category: "Breakfast foods", Difficulty: connections.DifficultyYellow,
			Words: []string{"WAFFLE", "BAGEL", "TOAST", "CEREAL"}},
		{Category: "Card games", Difficulty: connections.DifficultyGreen,
			Words: []string{"POKER", "BRIDGE", "HEARTS", "RUMMY"}},
		{Category: "Units of time", Difficulty: connections.DifficultyBlue,
			Words: []string{"SECOND", "MINUTE", "HOUR", "DECADE"}},
		{Category: "___ trip", Difficulty: connections.DifficultyPurple,
			Words: []string{"ROAD", "GUILT", "EGO", "FIELD"}},
	},
	{
		{Category: "Citrus fruits", Difficulty: connections.DifficultyYellow,
			Words: []string{"LEMON", "LIME", "ORANGE", "POMELO"}},
		{Category: "Weather events", Difficulty: connections.DifficultyGreen,
			Words: []string{"STORM", "DRIZZLE", "HAIL", "GALE"}},
		{Category: "Guitar parts", Difficulty: connections.DifficultyBlue,
			Words: []string{"FRET", "NECK", "NUT", "SADDLE"}},
		{Category: "Anagrams of LISTEN", Difficulty: connections.DifficultyPurple,
			Words: []string{"SILENT", "ENLIST", "TINSEL", "INLETS"}},
	},
}

var secretCatalog = []SecretEntry{
	{Target: "lighthouse", Category: "place"},
	{Target: "penguin", Category: "animal"},
	{Target: "accordion", Category: "object"},
	{Target: "volcano", Category: "place"},
	{Target: "jellyfish", Category: "animal"},
	{Target: "typewriter", Category: "object"},
	{Target: "scarecrow", Category: "object"},
	{Target: "glacier", Category: "place"},
	{Target: "chameleon", Category: "animal"},
	{Target: "submarine", Category: "object"},
	{Target: "windmill", Category: "place"},
	{Target: "porcupine", Category: "animal"},
}

var letterSetCatalog = []LetterSetEntry{
	{
		Center: "A",
		Outer:  []string{"B", "C", "E", "L", "R", "T"},
		Accepted: []string{
			"ABLE", "BEAR", "CART", "LACE", "LATE", "RACE", "REAL", "TALE", "TEAL",
			"BLEAT", "CABLE", "CATER", "CRATE", "TABLE", "TRACE",
			"BATTLE", "CARTEL", "CATTLE", "CLARET", "RATTLE",
			"BRACELET",
		},
	},
	{
		Center: "O",
		Outer:  []string{"D", "G", "H", "N", "T", "U"},
		Accepted: []string{
			"DOTH", "GOUT", "HOOT", "ONTO", "THOU", "TOOT", "UNTO",
			"DONUT", "DOUGH", "HOUND", "OUGHT", "TOUGH",
			"DUGOUT", "HOTDOG", "NOUGHT",
			"DOUGHNUT",
		},
	},
	{
		Center: "I",
		Outer:  []string{"C", "G", "K", "L", "N", "O"},
		Accepted: []string{
			"COIN", "ICON", "KICK", "KILN", "LICK", "LION", "NICK", "OINK",
			"CLICK", "CLING", "LOGIC",
			"COILING", "COOKING", "COOLING", "LINING",
			"LOCKING",
		},
	},
}
