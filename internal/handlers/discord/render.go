package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/siguint/ayabot/internal/models"
	"github.com/siguint/ayabot/internal/services/casino"
	"github.com/siguint/ayabot/internal/services/duel"
)

// Embed colors
const (
	colorGold  = 0xf1c40f
	colorGreen = 0x2ecc71
	colorGrey  = 0x95a5a6
	colorRed   = 0xe74c3c
)

// renderSpinEmbed renders the public result of a slot machine spin
func renderSpinEmbed(playerName string, output *casino.TrySpinOutput) *discordgo.MessageEmbed {
	description := fmt.Sprintf("%s — no luck this time.", playerName)
	color := colorGrey

	if output.PointsWon > 0 {
		description = fmt.Sprintf("%s hit **%s** and won **%d** point(s)!", playerName, output.Outcome.Display(), output.PointsWon)
		color = colorGold
	}

	return &discordgo.MessageEmbed{
		Title:       "🎰 Slot Machine",
		Description: description,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Points",
				Value:  fmt.Sprintf("%d", output.Points),
				Inline: true,
			},
			{
				Name:   "Spins left today",
				Value:  fmt.Sprintf("%d", output.SpinsRemaining),
				Inline: true,
			},
		},
	}
}

// renderCasinoStandingsEmbed renders the slot machine leaderboard
func renderCasinoStandingsEmbed(entries []*models.LedgerEntry) *discordgo.MessageEmbed {
	if len(entries) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "🏆 Slot Machine Standings",
			Description: "Nobody has spun yet. Be the first with /slot!",
			Color:       colorGrey,
		}
	}

	var sb strings.Builder
	for rank, entry := range entries {
		fmt.Fprintf(&sb, "%s **%s** — %d point(s) over %d spin(s)\n",
			rankBadge(rank), entry.Name, entry.Points, entry.TotalSpins)
	}

	return &discordgo.MessageEmbed{
		Title:       "🏆 Slot Machine Standings",
		Description: sb.String(),
		Color:       colorGold,
	}
}

// renderDuelStandingsEmbed renders the duel leaderboard
func renderDuelStandingsEmbed(records []*models.DuelRecord) *discordgo.MessageEmbed {
	if len(records) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "⚔️ Duel Standings",
			Description: "No duels yet. Challenge someone with /duel!",
			Color:       colorGrey,
		}
	}

	var sb strings.Builder
	for rank, record := range records {
		fmt.Fprintf(&sb, "%s **%s** — %d win(s), %d loss(es)\n",
			rankBadge(rank), record.Name, record.Wins, record.Losses)
	}

	return &discordgo.MessageEmbed{
		Title:       "⚔️ Duel Standings",
		Description: sb.String(),
		Color:       colorGold,
	}
}

// rankBadge returns the marker shown before a standings row
func rankBadge(rank int) string {
	switch rank {
	case 0:
		return "🥇"
	case 1:
		return "🥈"
	case 2:
		return "🥉"
	default:
		return fmt.Sprintf("%d.", rank+1)
	}
}

// renderDuelAnnouncementEmbed renders the challenge message a duel
// lives on. Its message ID becomes the duel key.
func renderDuelAnnouncementEmbed(firstName, secondName string, penaltyMinutes int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "⚔️ Duel!",
		Description: fmt.Sprintf("**%s** challenges **%s**!\nBoth of you, press the button to throw a die. Higher throw wins; the loser is muted for **%d minute(s)**.",
			firstName, secondName, penaltyMinutes),
		Color: colorRed,
	}
}

// renderVerdictEmbed renders a resolved duel
func renderVerdictEmbed(verdict *duel.Verdict) *discordgo.MessageEmbed {
	if verdict.Kind == duel.VerdictDraw {
		return &discordgo.MessageEmbed{
			Title:       "⚔️ Draw!",
			Description: fmt.Sprintf("Both threw **%d**. Nobody gets muted today.", verdict.WinnerThrow),
			Color:       colorGrey,
		}
	}

	return &discordgo.MessageEmbed{
		Title: "⚔️ Duel resolved!",
		Description: fmt.Sprintf("**%s** (🎲 %d) defeats **%s** (🎲 %d).\n%s is muted for **%d minute(s)**.",
			verdict.WinnerName, verdict.WinnerThrow, verdict.LoserName, verdict.LoserThrow,
			verdict.LoserName, verdict.PenaltyMinutes),
		Color: colorGreen,
	}
}

// renderRollMessage renders the channel message announcing one throw
func renderRollMessage(playerName string, value int) string {
	return fmt.Sprintf("🎲 %s throws a **%d**!", playerName, value)
}

// duelThrowButton returns the throw button attached to a duel
// announcement
func duelThrowButton(disabled bool) discordgo.MessageComponent {
	return discordgo.Button{
		Label:    "Throw",
		Style:    discordgo.PrimaryButton,
		CustomID: ButtonDuelThrow,
		Disabled: disabled,
		Emoji: &discordgo.ComponentEmoji{
			Name: "🎲",
		},
	}
}
