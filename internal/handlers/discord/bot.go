package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/murahdahla/internal/logger"
)

// messageTimeout bounds the handling of one submission message
const messageTimeout = 30 * time.Second

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	submissions *SubmissionHandler
	config      *Config
	log         logrus.FieldLogger
}

// Config holds the configuration for the bot
type Config struct {
	// Session is an unopened discordgo session
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	Commands    []CommandHandler
	Submissions *SubmissionHandler

	Logger logrus.FieldLogger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Session == nil {
		return nil, ErrNilSession
	}

	bot := &Bot{
		session:     cfg.Session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		submissions: cfg.Submissions,
		config:      cfg,
		log:         logger.Component(cfg.Logger, "bot"),
	}

	// Submissions are read from message content
	cfg.Session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	cfg.Session.AddHandler(bot.handleInteraction)
	if cfg.Submissions != nil {
		cfg.Session.AddHandler(bot.handleMessage)
	}

	return bot, nil
}

// Start opens the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range b.config.Commands {
		if err := b.RegisterCommand(cmd); err != nil {
			return err
		}
	}

	b.log.Info("Bot is now running")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.applicationID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.log.WithError(err).WithField("command", cmdName).Warn("Failed to delete command")
		}
	}

	return b.session.Close()
}

func (b *Bot) applicationID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, globally unless a
// guild ID is configured
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.applicationID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.log.WithFields(logrus.Fields{
		"command":  cmd.GetName(),
		"id":       createdCmd.ID,
		"guild_id": b.config.GuildID,
	}).Info("Registered command")

	return nil
}

// handleInteraction dispatches slash commands
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	if h, ok := b.commands[name]; ok {
		if err := h.Handle(s, i); err != nil {
			b.log.WithError(err).WithField("command", name).Error("Error handling command")
		}
	}
}

// handleMessage feeds guild messages to the submission handler
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.GuildID == "" {
		return
	}

	msg := &SubmissionMessage{
		ServerID:   m.GuildID,
		ChannelID:  m.ChannelID,
		MessageID:  m.ID,
		AuthorID:   m.Author.ID,
		AuthorName: displayName(m.Author, m.Member),
		AuthorBot:  m.Author.Bot,
		Content:    m.Content,
	}
	if len(m.Attachments) > 0 {
		msg.AttachmentURL = m.Attachments[0].URL
	}

	ctx, cancel := context.WithTimeout(context.Background(), messageTimeout)
	defer cancel()

	if err := b.submissions.HandleMessage(ctx, msg); err != nil {
		b.submissions.Report(ctx, err)
	}
}

// displayName prefers the server nickname, then the global display name
func displayName(user *discordgo.User, member *discordgo.Member) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}
