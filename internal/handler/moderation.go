package handler

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"odyssey-voice/internal/service"
)

func (h *Handler) kick(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	target := options(i)["user"].UserValue(s)
	channelID := voiceChannelOf(s, i.GuildID, i.Member.User.ID)
	if channelID == "" {
		respond(s, i, notInVoice)
		return
	}

	outcome, _ := h.svc.Kick(ctx, i.GuildID, channelID, i.Member.User.ID, target.ID)
	switch outcome {
	case service.OutcomeOK:
		respond(s, i, fmt.Sprintf("User **%s** has been kicked from the channel.", target.Username))
	case service.OutcomeNotFound:
		respond(s, i, "The user is not in your voice channel.")
	case service.OutcomeForbidden:
		respond(s, i, "You cannot kick this user.")
	default:
		respond(s, i, defaultMessage(outcome))
	}
}

func (h *Handler) mute(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.setMute(ctx, s, i, true)
}

func (h *Handler) unmute(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.setMute(ctx, s, i, false)
}

func (h *Handler) setMute(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, mute bool) {
	target := options(i)["user"].UserValue(s)
	channelID := voiceChannelOf(s, i.GuildID, i.Member.User.ID)
	if channelID == "" {
		respond(s, i, notInVoice)
		return
	}

	verb := "muted"
	if !mute {
		verb = "unmuted"
	}

	outcome, _ := h.svc.SetMemberMute(ctx, i.GuildID, channelID, i.Member.User.ID, target.ID, mute)
	switch outcome {
	case service.OutcomeOK:
		respond(s, i, fmt.Sprintf("User **%s** has been %s.", target.Username, verb))
	case service.OutcomeNotFound:
		respond(s, i, "The user is not in your voice channel.")
	case service.OutcomeForbidden:
		respond(s, i, "Only the owner of the channel can do that.")
	default:
		respond(s, i, defaultMessage(outcome))
	}
}

func (h *Handler) deafen(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.setDeaf(ctx, s, i, true)
}

func (h *Handler) undeafen(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.setDeaf(ctx, s, i, false)
}

func (h *Handler) setDeaf(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deaf bool) {
	target := options(i)["user"].UserValue(s)
	channelID := voiceChannelOf(s, i.GuildID, i.Member.User.ID)
	if channelID == "" {
		respond(s, i, notInVoice)
		return
	}

	verb := "deafened"
	if !deaf {
		verb = "undeafened"
	}

	outcome, _ := h.svc.SetMemberDeaf(ctx, i.GuildID, channelID, i.Member.User.ID, target.ID, deaf)
	switch outcome {
	case service.OutcomeOK:
		respond(s, i, fmt.Sprintf("User **%s** has been %s.", target.Username, verb))
	case service.OutcomeNotFound:
		respond(s, i, "The user is not in your voice channel.")
	case service.OutcomeForbidden:
		respond(s, i, "Only the owner of the channel can do that.")
	default:
		respond(s, i, defaultMessage(outcome))
	}
}
