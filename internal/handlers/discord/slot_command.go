package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/siguint/ayabot/internal/dice"
	"github.com/siguint/ayabot/internal/services/casino"
	"github.com/siguint/ayabot/internal/services/engine"
	"github.com/siguint/ayabot/internal/slot"
)

// SlotCommand handles the /slot command
type SlotCommand struct {
	BaseCommand
	engine engine.Service
	roller dice.Roller
}

// NewSlotCommand creates a new slot command handler
func NewSlotCommand(engine engine.Service, roller dice.Roller) *SlotCommand {
	return &SlotCommand{
		BaseCommand: BaseCommand{
			Name:        "slot",
			Description: "Spin the slot machine (3 spins a day)",
		},
		engine: engine,
		roller: roller,
	}
}

// Handle processes a Discord interaction for the slot command
func (c *SlotCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	ctx := context.Background()
	user := interactionUser(i)

	// The reel is just a die with one face per raw value
	rawValue := c.roller.Roll(slot.MaxRaw)

	output, err := c.engine.TrySpin(ctx, &casino.TrySpinInput{
		PlayerID:   user.ID,
		PlayerName: interactionUserName(i),
		RawValue:   rawValue,
	})
	if err != nil {
		return RespondWithError(s, i, "The slot machine is jammed. Try again later.")
	}

	if output.Denied {
		return RespondWithEphemeralMessage(s, i, "You're out of spins for today. Come back after the refresh!")
	}

	return RespondWithEmbed(s, i, renderSpinEmbed(interactionUserName(i), output))
}

// TopCommand handles the /top command
type TopCommand struct {
	BaseCommand
	engine engine.Service
}

// NewTopCommand creates a new top command handler
func NewTopCommand(engine engine.Service) *TopCommand {
	return &TopCommand{
		BaseCommand: BaseCommand{
			Name:        "top",
			Description: "Show the slot machine standings",
		},
		engine: engine,
	}
}

// Handle processes a Discord interaction for the top command
func (c *TopCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	output, err := c.engine.GetCasinoStandings(context.Background(), &casino.GetStandingsInput{})
	if err != nil {
		return RespondWithError(s, i, "Failed to fetch the standings.")
	}

	return RespondWithEmbed(s, i, renderCasinoStandingsEmbed(output.Entries))
}
