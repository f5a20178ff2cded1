package handler

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"odyssey-voice/internal/crash"
	"odyssey-voice/internal/logger"
	"odyssey-voice/internal/service"
)

type commandFunc func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate)

// componentPrefix namespaces the custom ids of the menu buttons so other
// components on the same guild never collide with ours.
const componentPrefix = "voicemenu:"

// Handler is the slash-command surface. Each command handler is thin: it
// collects ids from the interaction, calls one engine operation and renders
// the outcome as an ephemeral reply. Menu buttons reuse the command handlers
// of the operations they trigger.
type Handler struct {
	svc        *service.Service
	routes     map[string]commandFunc
	components map[string]commandFunc
}

// New builds the handler with its static command table
func New(svc *service.Service) *Handler {
	h := &Handler{svc: svc}
	h.routes = map[string]commandFunc{
		"menu":                  h.menu,
		"register_base_channel": h.registerBaseChannel,
		"create_base_channel":   h.createBaseChannel,
		"rename_base_channel":   h.renameBaseChannel,
		"delete_base_channel":   h.deleteBaseChannel,
		"admin_role":            h.adminRole,
		"active_channels":       h.activeChannels,
		"create_temp_channel":   h.createTempChannel,
		"claim":                 h.claim,
		"transfer":              h.transfer,
		"rename":                h.rename,
		"private":               h.private,
		"public":                h.public,
		"add_user":              h.addUser,
		"remove_user":           h.removeUser,
		"ban":                   h.ban,
		"unban":                 h.unban,
		"kick":                  h.kick,
		"mute":                  h.mute,
		"unmute":                h.unmute,
		"deafen":                h.deafen,
		"undeafen":              h.undeafen,
		"search":                h.search,
		"help":                  h.help,
	}
	h.components = map[string]commandFunc{
		"claim":   h.claim,
		"private": h.private,
		"public":  h.public,
	}
	return h
}

// HandleInteraction routes an interaction to its command or component
// handler. Everything is guild-only; anything unrecognized is ignored.
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" || i.Member == nil {
		return
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		fn, ok := h.routes[name]
		if !ok {
			return
		}
		defer crash.RecoverWithStack("command-" + name)
		fn(context.Background(), s, i)
	case discordgo.InteractionMessageComponent:
		id := i.MessageComponentData().CustomID
		if !strings.HasPrefix(id, componentPrefix) {
			return
		}
		name := strings.TrimPrefix(id, componentPrefix)
		fn, ok := h.components[name]
		if !ok {
			return
		}
		defer crash.RecoverWithStack("component-" + name)
		fn(context.Background(), s, i)
	}
}

// respond sends an ephemeral reply to the interaction
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		logger.Warningf("responding to interaction failed: %v", err)
	}
}

// options indexes the interaction's options by name
func options(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

// voiceChannelOf returns the id of the voice channel the requester is
// connected to, or "" if they are not in voice.
func voiceChannelOf(s *discordgo.Session, guildID, userID string) string {
	vs, err := s.State.VoiceState(guildID, userID)
	if err != nil {
		return ""
	}
	return vs.ChannelID
}

// defaultMessage renders the non-success outcomes every command shares
func defaultMessage(o service.Outcome) string {
	switch o {
	case service.OutcomeAlreadyInState:
		return "Nothing to change."
	case service.OutcomeForbidden:
		return "You are not allowed to do that."
	case service.OutcomeConflict:
		return "Somebody else got there first."
	case service.OutcomeNotFound:
		return "Channel or user not found."
	case service.OutcomeExternalFailure:
		return "Something went wrong, please try again later."
	}
	return "Done."
}
