package handler

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"odyssey-voice/internal/logger"
)

// menu posts the button panel for managing the channel the requester is in.
// The buttons carry no target, so only the target-less operations appear;
// everything else stays on its slash command.
func (h *Handler) menu(_ context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Manage the temporary channel you are connected to:",
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    "Claim",
							Style:    discordgo.PrimaryButton,
							CustomID: componentPrefix + "claim",
						},
						discordgo.Button{
							Label:    "Private",
							Style:    discordgo.SecondaryButton,
							CustomID: componentPrefix + "private",
						},
						discordgo.Button{
							Label:    "Public",
							Style:    discordgo.SecondaryButton,
							CustomID: componentPrefix + "public",
						},
					},
				},
			},
		},
	})
	if err != nil {
		logger.Warningf("responding with menu failed: %v", err)
	}
}
