package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"odyssey-voice/internal/service"
)

func (h *Handler) registerBaseChannel(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := options(i)
	channel := opts["channel"].ChannelValue(s)
	limit := int(opts["limit"].IntValue())

	outcome, _ := h.svc.RegisterBaseChannel(ctx, i.GuildID, i.Member.User.ID, channel.ID, channel.Name, channel.ParentID, limit)
	if outcome != service.OutcomeOK {
		respond(s, i, defaultMessage(outcome))
		return
	}
	respond(s, i, fmt.Sprintf("Channel **%s** has been registered as a base channel with a user limit of %d.", channel.Name, limit))
}

func (h *Handler) createBaseChannel(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := options(i)
	name := opts["name"].StringValue()
	limit := int(opts["limit"].IntValue())

	_, outcome, _ := h.svc.CreateBaseChannel(ctx, i.GuildID, i.Member.User.ID, name, limit)
	if outcome != service.OutcomeOK {
		respond(s, i, defaultMessage(outcome))
		return
	}
	respond(s, i, fmt.Sprintf("Base channel **%s** created. User limit for spawned channels: %d.", name, limit))
}

func (h *Handler) renameBaseChannel(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := options(i)
	channel := opts["channel"].ChannelValue(s)
	name := opts["name"].StringValue()

	outcome, _ := h.svc.RenameBaseChannel(ctx, i.GuildID, i.Member.User.ID, channel.ID, name)
	switch outcome {
	case service.OutcomeOK:
		respond(s, i, fmt.Sprintf("The base channel has been renamed to **%s**.", name))
	case service.OutcomeNotFound:
		respond(s, i, "This channel is not registered as a base channel.")
	default:
		respond(s, i, defaultMessage(outcome))
	}
}

func (h *Handler) deleteBaseChannel(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	channel := options(i)["channel"].ChannelValue(s)

	outcome, _ := h.svc.DeleteBaseChannel(ctx, i.GuildID, i.Member.User.ID, channel.ID)
	if outcome != service.OutcomeOK {
		respond(s, i, defaultMessage(outcome))
		return
	}
	respond(s, i, fmt.Sprintf("The base channel **%s** has been deleted.", channel.Name))
}

func (h *Handler) adminRole(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := options(i)
	role := opts["role"].RoleValue(s, i.GuildID)
	grant := opts["action"].StringValue() == "add"

	outcome, _ := h.svc.SetAdminRole(ctx, i.GuildID, i.Member.User.ID, role.ID, grant)
	switch {
	case outcome == service.OutcomeForbidden:
		respond(s, i, "Only administrators can use this command.")
	case outcome != service.OutcomeOK:
		respond(s, i, defaultMessage(outcome))
	case grant:
		respond(s, i, fmt.Sprintf("The role **%s** now has administrative privileges.", role.Name))
	default:
		respond(s, i, fmt.Sprintf("The role **%s** no longer has administrative privileges.", role.Name))
	}
}

func (h *Handler) activeChannels(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	active, outcome, _ := h.svc.ListActiveChannels(ctx, i.GuildID, i.Member.User.ID)
	if outcome != service.OutcomeOK {
		respond(s, i, defaultMessage(outcome))
		return
	}
	if len(active) == 0 {
		respond(s, i, "There are currently no active temporary channels.")
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Active temporary channels (%d):**\n", len(active))
	for _, ch := range active {
		owner := "unclaimed"
		if ch.Channel.OwnerName != nil {
			owner = *ch.Channel.OwnerName
		}
		fmt.Fprintf(&b, "- **%s** (%s), owner: %s, connected: %d\n",
			ch.Channel.Name, ch.Channel.ChannelID, owner, ch.Occupancy)
	}
	respond(s, i, b.String())
}
