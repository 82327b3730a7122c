package games

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/KirkDiggler/murahdahla/internal/models"
)

type variaParams struct {
	Preset            string `json:"preset"`
	MajorsSplit       string `json:"majorsSplit"`
	AreaRandomization string `json:"areaRandomization"`
	BossRandomization string `json:"bossRandomization"`
	DoorsColorsRando  string `json:"doorsColorsRando"`
}

var variaSplits = map[string]string{
	"Major": "Major/Minor",
	"Full":  "Full",
	"Chozo": "Chozo",
}

type variaDescriptor struct {
	client *Client
	apiURL string
	url    string
	guid   string
}

func (d *variaDescriptor) Name() models.GameTag {
	return models.GameTagSMVARIA
}

func (d *variaDescriptor) SourceURL() string {
	return d.url
}

func (d *variaDescriptor) SettingsSummary(ctx context.Context) (string, error) {
	if d.guid == "" {
		return "", fmt.Errorf("%w: missing seed guid", ErrInvalidSeed)
	}

	// the service answers with a JSON string holding the parameter document
	var encoded string
	if err := d.client.PostFormJSON(ctx, d.apiURL, url.Values{"guid": {d.guid}}, &encoded); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	var params variaParams
	if err := json.Unmarshal([]byte(encoded), &params); err != nil {
		return "", fmt.Errorf("%w: bad parameters: %v", ErrInvalidSeed, err)
	}

	parts := []string{
		fmt.Sprintf("%q", params.Preset),
		lookup(variaSplits, params.MajorsSplit, "Unknown Item Split"),
	}
	if params.AreaRandomization == "on" {
		parts = append(parts, "Area Rando")
	}
	if params.BossRandomization == "on" {
		parts = append(parts, "Boss Rando")
	}
	if params.DoorsColorsRando == "on" {
		parts = append(parts, "Door Color Rando")
	}

	return strings.Join(parts, " "), nil
}
