package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/siguint/ayabot/internal/services/engine"
)

// RefreshCommand handles the /refresh command. It is the manual twin of
// the daily refresh tick and only the configured maintainer may run it.
type RefreshCommand struct {
	BaseCommand
	engine       engine.Service
	maintainerID string
}

// NewRefreshCommand creates a new refresh command handler
func NewRefreshCommand(engine engine.Service, maintainerID string) *RefreshCommand {
	return &RefreshCommand{
		BaseCommand: BaseCommand{
			Name:        "refresh",
			Description: "Restore everyone's spin allowance (maintainer only)",
		},
		engine:       engine,
		maintainerID: maintainerID,
	}
}

// Handle processes a Discord interaction for the refresh command
func (c *RefreshCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	user := interactionUser(i)
	if c.maintainerID == "" || user.ID != c.maintainerID {
		return RespondWithEphemeralMessage(s, i, "Only the bot maintainer can refresh spins.")
	}

	output, err := c.engine.Refresh(context.Background(), &engine.RefreshInput{})
	if err != nil {
		log.WithError(err).Error("Manual refresh failed")
		return RespondWithError(s, i, "Refresh failed.")
	}

	return RespondWithEphemeralMessage(s, i,
		fmt.Sprintf("Spin allowances restored for %d player(s).", output.PlayersRefreshed))
}
