package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"gorm.io/gorm"

	"odyssey-voice/internal/config"
	"odyssey-voice/internal/events"
	"odyssey-voice/internal/handler"
	"odyssey-voice/internal/logger"
	"odyssey-voice/internal/platform"
	"odyssey-voice/internal/service"
)

// BotService owns the Discord session, the lifecycle engine built on top of
// it and the gateway event wiring between the two.
type BotService struct {
	Session    *discordgo.Session
	Engine     *service.Service
	dispatcher *events.Dispatcher
	handler    *handler.Handler
	status     string
}

// Start opens the gateway connection.
func (b *BotService) Start() error {
	return b.Session.Open()
}

// Stop closes the gateway connection.
func (b *BotService) Stop() {
	if err := b.Session.Close(); err != nil {
		logger.Warningf("closing discord session: %v", err)
	}
}

// Initialize builds the Discord session, the lifecycle engine on top of it
// and the gateway handlers wiring the two together. The session is not
// opened yet; call Start once everything else is up.
func Initialize(cfg *config.Config, db *gorm.DB) (*BotService, error) {
	if cfg.Bot.Token == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	session, err := discordgo.New("Bot " + cfg.Bot.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bot: %w", err)
	}

	// Voice-state deltas and guild channel metadata are all the engine needs.
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildVoiceStates
	session.State.TrackVoice = true

	svc := service.New(cfg, platform.NewDiscord(session), db)

	b := &BotService{
		Session: session,
		Engine:  svc,
		dispatcher: events.NewDispatcher(
			[]events.Handler{svc.HandleEntered, svc.HandleGuardEntered},
			[]events.Handler{svc.HandleLeft},
		),
		handler: handler.New(svc),
		status:  cfg.Bot.Status,
	}

	session.AddHandler(b.onReady)
	session.AddHandler(b.onGuildCreate)
	session.AddHandler(b.onVoiceStateUpdate)
	session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		b.handler.HandleInteraction(s, i)
	})

	return b, nil
}

func (b *BotService) onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Infof("logged in as %s#%s, serving %d guilds",
		r.User.Username, r.User.Discriminator, len(r.Guilds))

	if b.status != "" {
		if err := s.UpdateGameStatus(0, b.status); err != nil {
			logger.Warningf("setting bot status: %v", err)
		}
	}
}

// onGuildCreate registers the slash commands for the guild. The gateway
// replays GuildCreate for every guild after Ready, so this also covers
// reconnects and freshly joined guilds.
func (b *BotService) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	_, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, g.ID, handler.Commands())
	if err != nil {
		logger.Errorf("registering commands for guild %s: %v", g.ID, err)
		return
	}
	logger.Debugf("registered commands for guild %s (%s)", g.Name, g.ID)
}

// onVoiceStateUpdate reduces the raw state delta to presence transitions and
// hands them to the engine.
func (b *BotService) onVoiceStateUpdate(s *discordgo.Session, vs *discordgo.VoiceStateUpdate) {
	// Ignore the bot's own voice state.
	if s.State.User != nil && vs.UserID == s.State.User.ID {
		return
	}

	prev := ""
	if vs.BeforeUpdate != nil {
		prev = vs.BeforeUpdate.ChannelID
	}

	evs := events.Normalize(vs.GuildID, prev, vs.ChannelID, vs.UserID)
	if len(evs) == 0 {
		return
	}
	b.dispatcher.Dispatch(context.Background(), evs)
}
