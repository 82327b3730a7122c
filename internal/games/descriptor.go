package games

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/KirkDiggler/murahdahla/internal/models"
)

// maxTextDescription bounds the settings text of games without a seed URL
const maxTextDescription = 400

// Descriptor supplies the descriptive text of a race at start time
//
//go:generate mockgen -package=mocks -destination=mocks/mock_descriptor.go github.com/KirkDiggler/murahdahla/internal/games Descriptor
type Descriptor interface {
	// Name is the game being raced
	Name() models.GameTag

	// SettingsSummary describes the seed settings, fetching them if needed
	SettingsSummary(ctx context.Context) (string, error)

	// SourceURL is the seed link, or empty
	SourceURL() string
}

// ResolverConfig holds the seed site endpoints. Empty fields use the
// public endpoints
type ResolverConfig struct {
	Client *Client

	ALTTPRPatchURL string
	SMZ3SeedURL    string
	SMTotalSeedURL string
	SMVARIAAPIURL  string
}

const (
	defaultALTTPRPatchURL = "https://s3.us-east-2.amazonaws.com/alttpr-patches/"
	defaultSMZ3SeedURL    = "https://samus.link/api/seed/"
	defaultSMTotalSeedURL = "https://sm.samus.link/api/seed/"
	defaultSMVARIAAPIURL  = "https://variabeta.pythonanywhere.com/randoParamsWebServiceAPI"
)

// Resolver turns the argument of a start command into a Descriptor
type Resolver struct {
	client         *Client
	alttprPatchURL string
	smz3SeedURL    string
	smTotalSeedURL string
	smVARIAAPIURL  string
}

// NewResolver creates a descriptor resolver
func NewResolver(cfg *ResolverConfig) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Client == nil {
		return nil, errors.New("http client cannot be nil")
	}

	return &Resolver{
		client:         cfg.Client,
		alttprPatchURL: withDefault(cfg.ALTTPRPatchURL, defaultALTTPRPatchURL),
		smz3SeedURL:    withDefault(cfg.SMZ3SeedURL, defaultSMZ3SeedURL),
		smTotalSeedURL: withDefault(cfg.SMTotalSeedURL, defaultSMTotalSeedURL),
		smVARIAAPIURL:  withDefault(cfg.SMVARIAAPIURL, defaultSMVARIAAPIURL),
	}, nil
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// ResolveInput is the raw start argument and an optional explicit game
// for text-only races
type ResolveInput struct {
	Args string
	Game models.GameTag
}

// Resolve picks the descriptor for a start command. Seed URLs are
// recognised by host; anything else becomes a text description
func (r *Resolver) Resolve(ctx context.Context, input *ResolveInput) (Descriptor, error) {
	if input == nil || strings.TrimSpace(input.Args) == "" {
		return nil, fmt.Errorf("%w: nothing to describe", ErrUnknownGame)
	}
	args := strings.TrimSpace(input.Args)

	tag := DetermineGame(args)
	if tag == models.GameTagOther && input.Game != "" {
		tag = input.Game
	}

	switch tag {
	case models.GameTagALTTPR:
		return &z3rDescriptor{client: r.client, baseURL: r.alttprPatchURL, url: args, hash: lastSegment(args)}, nil
	case models.GameTagSMZ3:
		return &samusDescriptor{client: r.client, game: tag, baseURL: r.smz3SeedURL, url: args, slug: lastSegment(args)}, nil
	case models.GameTagSMTotal:
		if isURL(args) {
			return &samusDescriptor{client: r.client, game: tag, baseURL: r.smTotalSeedURL, url: args, slug: lastSegment(args)}, nil
		}
	case models.GameTagSMVARIA:
		if isURL(args) {
			return &variaDescriptor{client: r.client, apiURL: r.smVARIAAPIURL, url: args, guid: lastSegment(args)}, nil
		}
	}

	return NewTextDescriptor(tag, args)
}

// DetermineGame sniffs the game from a seed URL, Other when unrecognised
func DetermineGame(raw string) models.GameTag {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return models.GameTagOther
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch {
	case host == "alttpr.com" && strings.Contains(u.Path, "/h/"):
		return models.GameTagALTTPR
	case host == "samus.link" && strings.Contains(u.Path, "/seed"):
		return models.GameTagSMZ3
	case host == "sm.samus.link" && strings.Contains(u.Path, "/seed"):
		return models.GameTagSMTotal
	case (host == "varia.run" || host == "randommetroidsolver.pythonanywhere.com") && strings.Contains(u.Path, "/customizer"):
		return models.GameTagSMVARIA
	}

	return models.GameTagOther
}

func isURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Host != ""
}

func lastSegment(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return path.Base(strings.TrimSuffix(u.Path, "/"))
}

// textDescriptor is a race described by free text instead of a seed URL
type textDescriptor struct {
	game models.GameTag
	text string
}

// NewTextDescriptor describes a race with moderator supplied text
func NewTextDescriptor(game models.GameTag, text string) (Descriptor, error) {
	if len([]rune(text)) > maxTextDescription {
		return nil, fmt.Errorf("%w: %d characters allowed", ErrDescriptionTooLong, maxTextDescription)
	}
	if game == "" {
		game = models.GameTagOther
	}
	return &textDescriptor{game: game, text: text}, nil
}

func (d *textDescriptor) Name() models.GameTag {
	return d.game
}

func (d *textDescriptor) SettingsSummary(ctx context.Context) (string, error) {
	return d.text, nil
}

func (d *textDescriptor) SourceURL() string {
	return ""
}
