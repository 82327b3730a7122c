package games

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KirkDiggler/murahdahla/internal/models"
)

// codePatchAddress is the ROM address of the five file select code items
const codePatchAddress = "1573397"

var codeItems = [32]string{
	"Bow", "Boomerang", "Hookshot", "Bombs", "Mushroom", "Powder", "Ice Rod", "Pendant",
	"Bombos", "Ether", "Quake", "Lamp", "Hammer", "Shovel", "Flute", "Net",
	"Book", "Empty Bottle", "Green Potion", "Somaria", "Cape", "Mirror", "Boots", "Gloves",
	"Flippers", "Pearl", "Shield", "Tunic", "Heart", "Map", "Compass", "Key",
}

var (
	z3rModes = map[string]string{
		"open":     "Open",
		"standard": "Standard",
		"inverted": "Inverted",
		"retro":    "Retro",
	}
	z3rGoals = map[string]string{
		"ganon":         "Defeat Ganon",
		"fast_ganon":    "Fast Ganon",
		"dungeons":      "All Dungeons",
		"pedestal":      "Pedestal",
		"triforce-hunt": "Triforce Hunt",
	}
	z3rDungeonItems = map[string]string{
		"standard": "Standard",
		"mc":       "MC",
		"mcs":      "MCS",
		"full":     "Keysanity",
	}
	z3rShuffles = map[string]string{
		"none":       "Vanilla Shuffle",
		"simple":     "Simple Shuffle",
		"restricted": "Restricted Shuffle",
		"full":       "Full Shuffle",
		"crossed":    "Crossed Shuffle",
		"insanity":   "Insanity Shuffle",
	}
	z3rLogic = map[string]string{
		"NoGlitches":        "No Glitches",
		"OverworldGlitches": "Overworld Glitches",
		"MajorGlitches":     "Major Glitches",
		"None":              "No Logic",
	}
)

type z3rPatch struct {
	Spoiler struct {
		Meta z3rMeta `json:"meta"`
	} `json:"spoiler"`
	Patch []map[string]json.RawMessage `json:"patch"`
}

type z3rMeta struct {
	Spoilers     string          `json:"spoilers"`
	Mode         string          `json:"mode"`
	Goal         string          `json:"goal"`
	TowerEntry   json.RawMessage `json:"entry_crystals_tower"`
	GanonEntry   json.RawMessage `json:"entry_crystals_ganon"`
	DungeonItems string          `json:"dungeon_items"`
	Shuffle      string          `json:"shuffle"`
	Logic        string          `json:"logic"`
}

type z3rDescriptor struct {
	client  *Client
	baseURL string
	url     string
	hash    string
}

func (d *z3rDescriptor) Name() models.GameTag {
	return models.GameTagALTTPR
}

func (d *z3rDescriptor) SourceURL() string {
	return d.url
}

// SettingsSummary reads the seed's patch file, e.g.
// "Open Defeat Ganon 7/7 (Bow/Hookshot/Bombs/Lamp/Map)"
func (d *z3rDescriptor) SettingsSummary(ctx context.Context) (string, error) {
	if d.hash == "" {
		return "", fmt.Errorf("%w: missing seed hash", ErrInvalidSeed)
	}

	var patch z3rPatch
	if err := d.client.GetJSON(ctx, d.baseURL+d.hash+".json", &patch); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	code, err := patchCode(patch.Patch)
	if err != nil {
		return "", err
	}

	meta := patch.Spoiler.Meta
	if meta.Spoilers == "mystery" {
		return fmt.Sprintf("Mystery (%s)", code), nil
	}

	parts := []string{
		lookup(z3rModes, meta.Mode, "Unknown State"),
		lookup(z3rGoals, meta.Goal, "Unknown Goal"),
		fmt.Sprintf("%s/%s", rawNumber(meta.TowerEntry), rawNumber(meta.GanonEntry)),
	}
	if items := lookup(z3rDungeonItems, meta.DungeonItems, "Unknown Dungeon Item Shuffle"); items != "Standard" {
		parts = append(parts, items)
	}
	if meta.Shuffle != "" {
		if shuffle := lookup(z3rShuffles, meta.Shuffle, "Unknown Shuffle"); shuffle != "Vanilla Shuffle" {
			parts = append(parts, shuffle)
		}
	}
	if logic := lookup(z3rLogic, meta.Logic, "Unknown Logic"); logic != "No Glitches" {
		parts = append(parts, logic)
	}
	parts = append(parts, "("+code+")")

	return strings.Join(parts, " "), nil
}

// patchCode finds the code item bytes, their position in the patch list varies
func patchCode(patch []map[string]json.RawMessage) (string, error) {
	for _, entry := range patch {
		raw, ok := entry[codePatchAddress]
		if !ok {
			continue
		}

		var values []int
		if err := json.Unmarshal(raw, &values); err != nil {
			return "", fmt.Errorf("%w: bad code bytes: %v", ErrInvalidSeed, err)
		}

		names := make([]string, 0, len(values))
		for _, v := range values {
			if v >= 0 && v < len(codeItems) {
				names = append(names, codeItems[v])
			} else {
				names = append(names, "Unknown")
			}
		}
		return strings.Join(names, "/"), nil
	}

	return "", fmt.Errorf("%w: no code in patch", ErrInvalidSeed)
}

func lookup(table map[string]string, key, fallback string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

// rawNumber accepts crystal counts sent either as numbers or strings
func rawNumber(raw json.RawMessage) string {
	s := strings.Trim(string(raw), `"`)
	if s == "" || s == "null" {
		return "?"
	}
	return s
}
