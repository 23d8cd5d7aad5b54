package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/siguint/ayabot/internal/dice"
	"github.com/siguint/ayabot/internal/services/duel"
	"github.com/siguint/ayabot/internal/services/engine"
)

// Button IDs
const (
	ButtonDuelThrow = "duel_throw"
)

// duelDieSides is the die thrown when a duel participant acts
const duelDieSides = 6

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	engine     engine.Service
	roller     dice.Roller
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// MaintainerID is the only user allowed to run /refresh
	MaintainerID string

	// Game engine
	Engine engine.Service

	// Roller produces slot machine reel values and duel throws
	Roller dice.Roller
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.Engine == nil {
		return nil, errors.New("engine cannot be nil")
	}

	if cfg.Roller == nil {
		return nil, errors.New("roller cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		engine:     cfg.Engine,
		roller:     cfg.Roller,
		config:     cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	handlers := []CommandHandler{
		NewSlotCommand(b.engine, b.roller),
		NewTopCommand(b.engine),
		NewDuelCommand(b.engine),
		NewDuelStatsCommand(b.engine),
		NewRefreshCommand(b.engine, b.config.MaintainerID),
	}

	for _, handler := range handlers {
		if err := b.RegisterCommand(handler); err != nil {
			return fmt.Errorf("failed to register %s command: %w", handler.GetName(), err)
		}
	}

	log.Info("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Remove all commands
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.WithError(err).Warnf("Failed to delete command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register the command for that specific
	// guild; otherwise register it globally
	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Infof("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		// Handle slash commands
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.WithError(err).Errorf("Error handling command %s", i.ApplicationCommandData().Name)
			}
		}
	case discordgo.InteractionMessageComponent:
		// Handle buttons and other components
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.WithError(err).Error("Error handling component interaction")
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	switch customID {
	case ButtonDuelThrow:
		return b.handleDuelThrowButton(s, i)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}

// handleDuelThrowButton handles one participant pressing the throw
// button on a duel announcement. The announcement message ID is the
// duel key, so the interaction itself tells us which duel this is.
func (b *Bot) handleDuelThrowButton(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	duelKey := i.Message.ID
	user := interactionUser(i)

	canAct, err := b.engine.CanAct(ctx, &duel.CanActInput{
		Key:      duelKey,
		PlayerID: user.ID,
	})
	if err != nil {
		return err
	}

	if !canAct.CanAct {
		return RespondWithEphemeralMessage(s, i, "This duel is not waiting on a throw from you.")
	}

	value := b.roller.Roll(duelDieSides)

	// Post the roll before registering it so its message ID rides the
	// verdict and gets cleaned up with the rest of the duel
	rollMessageID := ""
	rollMessage, err := s.ChannelMessageSend(i.ChannelID, renderRollMessage(interactionUserName(i), value))
	if err != nil {
		log.WithError(err).Warn("Failed to post roll message")
	} else {
		rollMessageID = rollMessage.ID
	}

	output, err := b.engine.RegisterThrow(ctx, &duel.RegisterThrowInput{
		Key:           duelKey,
		PlayerID:      user.ID,
		Value:         value,
		RollMessageID: rollMessageID,
	})
	if err != nil {
		return err
	}

	verdict := output.Verdict
	switch verdict.Kind {
	case duel.VerdictNone:
		// CanAct raced with another interaction; the store refused the throw
		return RespondWithEphemeralMessage(s, i, "This duel is no longer accepting throws.")
	case duel.VerdictPending:
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("You threw a %d. Waiting on your opponent.", value))
	}

	return b.finishDuel(s, i, verdict)
}

// finishDuel replaces the announcement with the verdict, cleans up the
// roll messages, and applies the loser's timeout
func (b *Bot) finishDuel(s *discordgo.Session, i *discordgo.InteractionCreate, verdict *duel.Verdict) error {
	// The button lives on the announcement message, so updating the
	// interaction updates the announcement in place
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{renderVerdictEmbed(verdict)},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{duelThrowButton(true)},
				},
			},
		},
	})
	if err != nil {
		log.WithError(err).Warn("Failed to update duel announcement")
	}

	for _, messageID := range verdict.RollMessageIDs {
		if err := s.ChannelMessageDelete(i.ChannelID, messageID); err != nil {
			log.WithError(err).Warnf("Failed to delete roll message %s", messageID)
		}
	}

	if verdict.Kind == duel.VerdictDecisive && i.GuildID != "" {
		until := time.Now().Add(time.Duration(verdict.PenaltyMinutes) * time.Minute)
		if err := s.GuildMemberTimeout(i.GuildID, verdict.LoserID, &until); err != nil {
			log.WithError(err).Warnf("Failed to time out duel loser %s", verdict.LoserID)
		}
	}

	return nil
}
