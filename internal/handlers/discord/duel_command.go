package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/siguint/ayabot/internal/services/duel"
	"github.com/siguint/ayabot/internal/services/engine"
)

// Penalty bounds enforced before a duel reaches the table. The store
// itself keeps whatever it is given.
const (
	minPenaltyMinutes     = 2
	maxPenaltyMinutes     = 15
	defaultPenaltyMinutes = 5
)

// clampPenalty bounds a requested mute duration
func clampPenalty(minutes int) int {
	if minutes < minPenaltyMinutes {
		return minPenaltyMinutes
	}
	if minutes > maxPenaltyMinutes {
		return maxPenaltyMinutes
	}
	return minutes
}

// DuelCommand handles the /duel command
type DuelCommand struct {
	BaseCommand
	engine engine.Service
}

// NewDuelCommand creates a new duel command handler
func NewDuelCommand(engine engine.Service) *DuelCommand {
	return &DuelCommand{
		BaseCommand: BaseCommand{
			Name:        "duel",
			Description: "Challenge another player to a dice duel",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "opponent",
					Description: "The player to challenge",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "minutes",
					Description: fmt.Sprintf("Mute duration for the loser (%d-%d minutes)", minPenaltyMinutes, maxPenaltyMinutes),
					Required:    false,
				},
			},
		},
		engine: engine,
	}
}

// Handle processes a Discord interaction for the duel command
func (c *DuelCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	challenger := interactionUser(i)

	var opponent *discordgo.User
	penaltyMinutes := defaultPenaltyMinutes
	for _, option := range i.ApplicationCommandData().Options {
		switch option.Name {
		case "opponent":
			opponent = option.UserValue(s)
		case "minutes":
			penaltyMinutes = int(option.IntValue())
		}
	}
	penaltyMinutes = clampPenalty(penaltyMinutes)

	if opponent == nil {
		return RespondWithError(s, i, "Pick an opponent to duel.")
	}

	if opponent.ID == challenger.ID {
		return RespondWithEphemeralMessage(s, i, "You cannot duel yourself.")
	}

	if opponent.Bot {
		return RespondWithEphemeralMessage(s, i, "Bots do not take duels. Pick a human.")
	}

	challengerName := interactionUserName(i)
	opponentName := opponent.Username

	// Post the announcement first; its message ID is the duel key
	err := RespondWithEmbedAndButtons(s, i,
		renderDuelAnnouncementEmbed(challengerName, opponentName, penaltyMinutes),
		[]discordgo.MessageComponent{duelThrowButton(false)},
	)
	if err != nil {
		return fmt.Errorf("failed to post duel announcement: %w", err)
	}

	announcement, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		return fmt.Errorf("failed to fetch duel announcement: %w", err)
	}

	_, err = c.engine.OpenDuel(context.Background(), &duel.OpenInput{
		Key:            announcement.ID,
		FirstID:        challenger.ID,
		FirstName:      challengerName,
		SecondID:       opponent.ID,
		SecondName:     opponentName,
		PenaltyMinutes: penaltyMinutes,
	})
	if err != nil {
		// The announcement is up but the duel never opened; retire the
		// button so it does not dangle
		log.WithError(err).Error("Failed to open duel")
		disabled := []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{duelThrowButton(true)},
			},
		}
		if _, editErr := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
			Channel:    i.ChannelID,
			ID:         announcement.ID,
			Components: &disabled,
		}); editErr != nil {
			log.WithError(editErr).Warn("Failed to disable dangling duel button")
		}
		return err
	}

	return nil
}

// DuelStatsCommand handles the /duelstats command
type DuelStatsCommand struct {
	BaseCommand
	engine engine.Service
}

// NewDuelStatsCommand creates a new duelstats command handler
func NewDuelStatsCommand(engine engine.Service) *DuelStatsCommand {
	return &DuelStatsCommand{
		BaseCommand: BaseCommand{
			Name:        "duelstats",
			Description: "Show the duel standings",
		},
		engine: engine,
	}
}

// Handle processes a Discord interaction for the duelstats command
func (c *DuelStatsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	output, err := c.engine.GetDuelStandings(context.Background(), &duel.GetStandingsInput{})
	if err != nil {
		return RespondWithError(s, i, "Failed to fetch the duel standings.")
	}

	return RespondWithEmbed(s, i, renderDuelStandingsEmbed(output.Records))
}
