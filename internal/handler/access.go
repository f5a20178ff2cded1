package handler

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"odyssey-voice/internal/service"
)

func (h *Handler) addUser(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	target := options(i)["user"].UserValue(s)
	channelID := voiceChannelOf(s, i.GuildID, i.Member.User.ID)
	if channelID == "" {
		respond(s, i, notInVoice)
		return
	}

	outcome, _ := h.svc.AddWhitelisted(ctx, channelID, i.Member.User.ID, target.ID)
	switch outcome {
	case service.OutcomeOK:
		respond(s, i, fmt.Sprintf("User **%s** can now join your channel.", target.Username))
	case service.OutcomeForbidden:
		respond(s, i, "You can only add users to a private channel that you own.")
	default:
		respond(s, i, defaultMessage(outcome))
	}
}

func (h *Handler) removeUser(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	target := options(i)["user"].UserValue(s)
	channelID := voiceChannelOf(s, i.GuildID, i.Member.User.ID)
	if channelID == "" {
		respond(s, i, notInVoice)
		return
	}

	outcome, _ := h.svc.RemoveWhitelisted(ctx, channelID, i.Member.User.ID, target.ID)
	switch outcome {
	case service.OutcomeOK, service.OutcomeAlreadyInState:
		respond(s, i, fmt.Sprintf("User **%s** no longer has access to your channel.", target.Username))
	case service.OutcomeForbidden:
		respond(s, i, "You can only remove users from a private channel that you own.")
	default:
		respond(s, i, defaultMessage(outcome))
	}
}

func (h *Handler) ban(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	target := options(i)["user"].UserValue(s)
	channelID := voiceChannelOf(s, i.GuildID, i.Member.User.ID)
	if channelID == "" {
		respond(s, i, notInVoice)
		return
	}

	outcome, _ := h.svc.Ban(ctx, i.GuildID, channelID, i.Member.User.ID, target.ID)
	switch outcome {
	case service.OutcomeOK:
		respond(s, i, fmt.Sprintf("User **%s** has been blocked from this channel.", target.Username))
	case service.OutcomeAlreadyInState:
		respond(s, i, fmt.Sprintf("User **%s** is already blocked from this channel.", target.Username))
	case service.OutcomeForbidden:
		respond(s, i, "You cannot block this user.")
	default:
		respond(s, i, defaultMessage(outcome))
	}
}

func (h *Handler) unban(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	target := options(i)["user"].UserValue(s)
	channelID := voiceChannelOf(s, i.GuildID, i.Member.User.ID)
	if channelID == "" {
		respond(s, i, notInVoice)
		return
	}

	outcome, _ := h.svc.Unban(ctx, channelID, i.Member.User.ID, target.ID)
	switch outcome {
	case service.OutcomeOK:
		respond(s, i, fmt.Sprintf("User **%s** is no longer blocked from this channel.", target.Username))
	case service.OutcomeAlreadyInState:
		respond(s, i, fmt.Sprintf("User **%s** is not blocked from this channel.", target.Username))
	case service.OutcomeForbidden:
		respond(s, i, "Only the channel owner can use this command.")
	default:
		respond(s, i, defaultMessage(outcome))
	}
}
