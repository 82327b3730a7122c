package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/murahdahla/internal/games"
	"github.com/KirkDiggler/murahdahla/internal/logger"
	"github.com/KirkDiggler/murahdahla/internal/metrics"
	"github.com/KirkDiggler/murahdahla/internal/models"
	"github.com/KirkDiggler/murahdahla/internal/services/group"
	"github.com/KirkDiggler/murahdahla/internal/services/ledger"
	"github.com/KirkDiggler/murahdahla/internal/services/race"
)

// Subcommands of /async
const (
	SubcommandStart            = "start"
	SubcommandStop             = "stop"
	SubcommandRefresh          = "refresh"
	SubcommandChangeTime       = "changetime"
	SubcommandChangeCollection = "changecollection"
	SubcommandRemoveTime       = "removetime"
	SubcommandAddGroup         = "addgroup"
	SubcommandListGroups       = "listgroups"
	SubcommandRemoveGroup      = "removegroup"
)

// Option names
const (
	optionSeed       = "seed"
	optionGame       = "game"
	optionType       = "type"
	optionRunner     = "runner"
	optionTime       = "time"
	optionCollection = "collection"
	optionDefinition = "definition"
	optionName       = "name"
)

// AsyncCommandConfig holds the dependencies of the /async command
type AsyncCommandConfig struct {
	RaceService   race.Service
	LedgerService ledger.Service
	GroupService  group.Service
	Resolver      Resolver
	Downloader    Downloader

	// Notifier and MaintenanceUserID receive unexpected failures
	Notifier          Notifier
	MaintenanceUserID string

	Logger  logrus.FieldLogger
	Metrics *metrics.Metrics
}

// AsyncCommand handles the /async command
type AsyncCommand struct {
	BaseCommand
	raceService       race.Service
	ledgerService     ledger.Service
	groupService      group.Service
	resolver          Resolver
	downloader        Downloader
	notifier          Notifier
	maintenanceUserID string
	log               logrus.FieldLogger
	metrics           *metrics.Metrics
}

// CommandRequest is an /async invocation stripped of Discord types
type CommandRequest struct {
	ServerID   string
	ChannelID  string
	UserID     string
	Subcommand string

	Strings  map[string]string
	Integers map[string]int64

	// Attachments maps option names to attachment URLs
	Attachments map[string]string
}

func (r *CommandRequest) stringOption(name string) (string, error) {
	v, ok := r.Strings[name]
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingOption, name)
	}
	return v, nil
}

func runnerOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        optionRunner,
		Description: "Runner name as shown on the leaderboard",
		Required:    true,
	}
}

// NewAsyncCommand creates the /async command handler
func NewAsyncCommand(cfg *AsyncCommandConfig) (*AsyncCommand, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RaceService == nil {
		return nil, ErrNilRaceService
	}

	if cfg.LedgerService == nil {
		return nil, ErrNilLedgerService
	}

	if cfg.GroupService == nil {
		return nil, ErrNilGroupService
	}

	if cfg.Resolver == nil {
		return nil, ErrNilResolver
	}

	if cfg.Downloader == nil {
		return nil, ErrNilDownloader
	}

	gameChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.AllGameTags))
	for _, tag := range models.AllGameTags {
		gameChoices = append(gameChoices, &discordgo.ApplicationCommandOptionChoice{Name: tag.String(), Value: tag.String()})
	}

	return &AsyncCommand{
		BaseCommand: BaseCommand{
			Name:        "async",
			Description: "Async race commands",
			Permissions: discordgo.PermissionManageMessages,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandStart,
					Description: "Start a race in this group, archiving the current one",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionSeed,
							Description: "Seed URL or a description of the race",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionGame,
							Description: "Game, when the seed is not a recognised URL",
							Choices:     gameChoices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionType,
							Description: "Rank by in-game time or real time",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "RTA", Value: string(models.RaceTypeRTA)},
								{Name: "IGT", Value: string(models.RaceTypeIGT)},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandStop,
					Description: "Stop the race and archive its leaderboard",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandRefresh,
					Description: "Rebuild the leaderboard",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandChangeTime,
					Description: "Change a runner's time",
					Options: []*discordgo.ApplicationCommandOption{
						runnerOption(),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionTime,
							Description: "New time, H:MM:SS",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandChangeCollection,
					Description: "Change a runner's collection rate",
					Options: []*discordgo.ApplicationCommandOption{
						runnerOption(),
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        optionCollection,
							Description: "New collection rate",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandRemoveTime,
					Description: "Remove a runner from the leaderboard",
					Options:     []*discordgo.ApplicationCommandOption{runnerOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandAddGroup,
					Description: "Add a channel group from a YAML file",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionAttachment,
							Name:        optionDefinition,
							Description: "YAML with group_name, submission, leaderboard, spoiler and spoiler_role",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandListGroups,
					Description: "List the channel groups of this server",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandRemoveGroup,
					Description: "Remove a channel group",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionName,
							Description: "Group name",
							Required:    true,
						},
					},
				},
			},
		},
		raceService:       cfg.RaceService,
		ledgerService:     cfg.LedgerService,
		groupService:      cfg.GroupService,
		resolver:          cfg.Resolver,
		downloader:        cfg.Downloader,
		notifier:          cfg.Notifier,
		maintenanceUserID: cfg.MaintenanceUserID,
		log:               logger.Component(cfg.Logger, "discord"),
		metrics:           cfg.Metrics,
	}, nil
}

// Handle processes a Discord interaction for the async command
func (c *AsyncCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	if i.Member == nil || i.GuildID == "" {
		return RespondWithEphemeralMessage(s, i, ErrNotInServer.Error())
	}

	if i.Member.Permissions&discordgo.PermissionManageMessages == 0 {
		return RespondWithEphemeralMessage(s, i, capitalize(ErrMissingPermission.Error())+".")
	}

	// seed lookups and leaderboard edits can outlast the response window
	if err := DeferEphemeral(s, i); err != nil {
		return fmt.Errorf("failed to defer response: %w", err)
	}

	reply, err := c.Execute(context.Background(), newCommandRequest(i, data))
	if err != nil {
		reply = c.reportError(context.Background(), data.Options[0].Name, err)
	}

	return EditDeferred(s, i, reply)
}

func newCommandRequest(i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) *CommandRequest {
	sub := data.Options[0]
	req := &CommandRequest{
		ServerID:    i.GuildID,
		ChannelID:   i.ChannelID,
		UserID:      i.Member.User.ID,
		Subcommand:  sub.Name,
		Strings:     make(map[string]string),
		Integers:    make(map[string]int64),
		Attachments: make(map[string]string),
	}

	for _, opt := range sub.Options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionString:
			req.Strings[opt.Name] = opt.StringValue()
		case discordgo.ApplicationCommandOptionInteger:
			req.Integers[opt.Name] = opt.IntValue()
		case discordgo.ApplicationCommandOptionAttachment:
			id, _ := opt.Value.(string)
			if data.Resolved != nil {
				if att, ok := data.Resolved.Attachments[id]; ok {
					req.Attachments[opt.Name] = att.URL
				}
			}
		}
	}

	return req
}

// reportError turns a failure into the reply text, notifying the
// maintainer when the user could not have caused it
func (c *AsyncCommand) reportError(ctx context.Context, subcommand string, err error) string {
	c.metrics.CommandFailed(subcommand)

	msg, userCaused := userMessage(err)
	if userCaused {
		return msg
	}

	c.log.WithError(err).WithField("subcommand", subcommand).Error("Command failed")
	if c.notifier != nil && c.maintenanceUserID != "" {
		if dmErr := c.notifier.DirectMessage(ctx, c.maintenanceUserID, fmt.Sprintf("/async %s failed: %v", subcommand, err)); dmErr != nil {
			c.log.WithError(dmErr).Warn("Could not message maintenance user")
		}
	}

	return msg
}

// Execute runs a subcommand and returns the reply text
func (c *AsyncCommand) Execute(ctx context.Context, req *CommandRequest) (string, error) {
	switch req.Subcommand {
	case SubcommandAddGroup:
		return c.addGroup(ctx, req)
	case SubcommandListGroups:
		return c.listGroups(ctx, req)
	case SubcommandRemoveGroup:
		return c.removeGroup(ctx, req)
	case SubcommandStart, SubcommandStop, SubcommandRefresh,
		SubcommandChangeTime, SubcommandChangeCollection, SubcommandRemoveTime:
	default:
		return "", ErrUnknownSubcommand
	}

	// race commands run in a group's submission channel
	found, err := c.groupService.FindGroup(ctx, &group.FindGroupInput{ChannelID: req.ChannelID})
	if err != nil {
		return "", err
	}
	if found.Group == nil {
		return "", ErrNotSubmissionChannel
	}
	g := found.Group

	switch req.Subcommand {
	case SubcommandStart:
		return c.start(ctx, req, g)
	case SubcommandStop:
		out, err := c.raceService.StopRace(ctx, &race.StopRaceInput{Group: g})
		if err != nil {
			return "", err
		}
		return renderStopped(out), nil
	case SubcommandRefresh:
		out, err := c.raceService.RefreshRace(ctx, &race.RefreshRaceInput{Group: g})
		if err != nil {
			return "", err
		}
		return renderRefreshed(out), nil
	default:
		return c.amend(ctx, req, g)
	}
}

func (c *AsyncCommand) start(ctx context.Context, req *CommandRequest, g *models.ChannelGroup) (string, error) {
	seed, err := req.stringOption(optionSeed)
	if err != nil {
		return "", err
	}

	input := &games.ResolveInput{Args: seed}
	if name, ok := req.Strings[optionGame]; ok {
		tag, ok := models.ParseGameTag(name)
		if !ok {
			return "", games.ErrUnknownGame
		}
		input.Game = tag
	}

	raceType := models.RaceTypeRTA
	if name, ok := req.Strings[optionType]; ok {
		if parsed, ok := models.ParseRaceType(name); ok {
			raceType = parsed
		}
	}

	descriptor, err := c.resolver.Resolve(ctx, input)
	if err != nil {
		return "", err
	}

	out, err := c.raceService.StartRace(ctx, &race.StartRaceInput{
		Group:      g,
		Descriptor: descriptor,
		Type:       raceType,
	})
	if err != nil {
		return "", err
	}

	return renderStarted(out), nil
}

// amend handles the commands that correct a runner's submission, then
// refreshes the leaderboard
func (c *AsyncCommand) amend(ctx context.Context, req *CommandRequest, g *models.ChannelGroup) (string, error) {
	runner, err := req.stringOption(optionRunner)
	if err != nil {
		return "", err
	}

	active, err := c.raceService.GetActiveRace(ctx, &race.GetActiveRaceInput{GroupID: g.ID})
	if err != nil {
		return "", err
	}
	if active.Race == nil {
		return "", race.ErrRaceNotActive
	}
	r := active.Race

	var reply string
	switch req.Subcommand {
	case SubcommandChangeTime:
		text, err := req.stringOption(optionTime)
		if err != nil {
			return "", err
		}
		d, err := ledger.ParseDuration(text)
		if err != nil {
			return "", err
		}
		out, err := c.ledgerService.AmendTime(ctx, &ledger.AmendTimeInput{Race: r, RunnerName: runner, Duration: d})
		if err != nil {
			return "", err
		}
		reply = renderTimeChanged(out.Submission)
	case SubcommandChangeCollection:
		score, ok := req.Integers[optionCollection]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrMissingOption, optionCollection)
		}
		out, err := c.ledgerService.AmendScore(ctx, &ledger.AmendScoreInput{Race: r, RunnerName: runner, Score: int(score)})
		if err != nil {
			return "", err
		}
		reply = renderScoreChanged(out.Submission)
	case SubcommandRemoveTime:
		out, err := c.ledgerService.Remove(ctx, &ledger.RemoveInput{Race: r, Group: g, RunnerName: runner})
		if err != nil {
			return "", err
		}
		reply = fmt.Sprintf("Removed %s from the leaderboard.", out.Submission.RunnerName)
	}

	if _, err := c.raceService.RefreshRace(ctx, &race.RefreshRaceInput{Group: g}); err != nil {
		return "", fmt.Errorf("submission updated but refresh failed: %w", err)
	}

	return reply, nil
}

func (c *AsyncCommand) addGroup(ctx context.Context, req *CommandRequest) (string, error) {
	url, ok := req.Attachments[optionDefinition]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingOption, optionDefinition)
	}

	document, err := c.downloader.Get(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to download group definition: %w", err)
	}

	out, err := c.groupService.ImportGroup(ctx, &group.ImportGroupInput{ServerID: req.ServerID, Document: document})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Added group %s.", out.Group.Name), nil
}

func (c *AsyncCommand) listGroups(ctx context.Context, req *CommandRequest) (string, error) {
	out, err := c.groupService.ListGroups(ctx, &group.ListGroupsInput{ServerID: req.ServerID})
	if err != nil {
		return "", err
	}
	return renderGroupList(out.Groups), nil
}

func (c *AsyncCommand) removeGroup(ctx context.Context, req *CommandRequest) (string, error) {
	name, err := req.stringOption(optionName)
	if err != nil {
		return "", err
	}

	out, err := c.groupService.RemoveGroup(ctx, &group.RemoveGroupInput{ServerID: req.ServerID, Name: name})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Removed group %s.", out.Group.Name), nil
}
