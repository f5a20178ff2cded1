package handler

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"odyssey-voice/internal/service"
)

const notInVoice = "You must be connected to a voice channel to use this command."

func (h *Handler) claim(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	channelID := voiceChannelOf(s, i.GuildID, i.Member.User.ID)
	if channelID == "" {
		respond(s, i, notInVoice)
		return
	}

	outcome, _ := h.svc.Claim(ctx, i.GuildID, channelID, i.Member.User.ID)
	switch outcome {
	case service.OutcomeOK:
		respond(s, i, "You are now the owner of this channel.")
	case service.OutcomeAlreadyInState:
		respond(s, i, "You already own this channel.")
	case service.OutcomeConflict:
		respond(s, i, "This channel has already been claimed by another user.")
	default:
		respond(s, i, defaultMessage(outcome))
	}
}

func (h *Handler) transfer(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	target := options(i)["user"].UserValue(s)
	channelID := voiceChannelOf(s, i.GuildID, i.Member.User.ID)
	if channelID == "" {
		respond(s, i, notInVoice)
		return
	}

	outcome, _ := h.svc.Transfer(ctx, i.GuildID, channelID, i.Member.User.ID, target.ID)
	switch outcome {
	case service.OutcomeOK:
		respond(s, i, fmt.Sprintf("You have transferred ownership of the channel to **%s**.", target.Username))
	case service.OutcomeForbidden:
		respond(s, i, "Only the channel owner can transfer ownership.")
	default:
		respond(s, i, defaultMessage(outcome))
	}
}

func (h *Handler) rename(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := options(i)["name"].StringValue()
	channelID := voiceChannelOf(s, i.GuildID, i.Member.User.ID)
	if channelID == "" {
		respond(s, i, notInVoice)
		return
	}

	outcome, _ := h.svc.Rename(ctx, channelID, i.Member.User.ID, name)
	switch outcome {
	case service.OutcomeOK:
		respond(s, i, fmt.Sprintf("The channel has been renamed to **%s**.", name))
	case service.OutcomeForbidden:
		respond(s, i, "Only the channel owner can rename it.")
	default:
		respond(s, i, defaultMessage(outcome))
	}
}

func (h *Handler) private(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.setPrivacy(ctx, s, i, true)
}

func (h *Handler) public(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.setPrivacy(ctx, s, i, false)
}

func (h *Handler) setPrivacy(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, private bool) {
	channelID := voiceChannelOf(s, i.GuildID, i.Member.User.ID)
	if channelID == "" {
		respond(s, i, notInVoice)
		return
	}

	mode := "public"
	if private {
		mode = "private"
	}

	outcome, _ := h.svc.SetPrivacy(ctx, i.GuildID, channelID, i.Member.User.ID, private)
	switch outcome {
	case service.OutcomeOK:
		respond(s, i, fmt.Sprintf("The channel is now %s.", mode))
	case service.OutcomeAlreadyInState:
		respond(s, i, fmt.Sprintf("The channel is already %s.", mode))
	case service.OutcomeForbidden:
		respond(s, i, "Only the owner of the channel can change its visibility.")
	default:
		respond(s, i, defaultMessage(outcome))
	}
}

func (h *Handler) createTempChannel(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := options(i)
	name := opts["name"].StringValue()
	limit := int(opts["limit"].IntValue())
	private := false
	if opt, ok := opts["private"]; ok {
		private = opt.BoolValue()
	}

	channelID, outcome, _ := h.svc.CreateTempChannel(ctx, i.GuildID, i.Member.User.ID, name, limit, private)
	if outcome != service.OutcomeOK {
		respond(s, i, defaultMessage(outcome))
		return
	}

	mode := "public"
	if private {
		mode = "private"
	}
	respond(s, i, fmt.Sprintf("The channel **%s** has been created (%s, limit %d): https://discord.com/channels/%s/%s",
		name, mode, limit, i.GuildID, channelID))
}
