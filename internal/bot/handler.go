package bot

import (
	"context"
	"strings"
	"time"

	"go.mau.fi/whatsmeow"
	waProto "go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"google.golang.org/protobuf/proto"

	"florbot/internal/commands"
	"florbot/internal/identity"
	"florbot/internal/providers"
	"florbot/internal/structures"
)

// Handler turns inbound transport events into command invocations. The sender
// identity is resolved to its canonical (phone-preferred) form before any
// command touches the economy.
type Handler struct {
	client   *whatsmeow.Client
	registry *commands.Registry
	canon    *identity.Canonicalizer
	resolver identity.Resolver
	conf     *structures.Config
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
}

func NewHandler(
	client *whatsmeow.Client,
	registry *commands.Registry,
	canon *identity.Canonicalizer,
	resolver identity.Resolver,
	conf *structures.Config,
	logger providers.Logger,
	metrics providers.MetricsProviderInterface,
) *Handler {
	return &Handler{
		client:   client,
		registry: registry,
		canon:    canon,
		resolver: resolver,
		conf:     conf,
		logger:   logger,
		metrics:  metrics,
	}
}

func (h *Handler) Register() {
	h.client.AddEventHandler(h.handleEvent)
}

func (h *Handler) handleEvent(evt interface{}) {
	switch v := evt.(type) {
	case *events.Message:
		h.handleMessage(v)
	case *events.LoggedOut:
		h.logger.Errorf(providers.TypeApp, "Logged out remotely, session is no longer valid")
	}
}

// realSender prefers the phone-namespace JID when the transport reports both.
func realSender(primary, alt types.JID) types.JID {
	if primary.Server == "lid" && !alt.IsEmpty() && alt.Server != "lid" {
		return alt
	}
	return primary
}

func extractText(msg *waProto.Message) string {
	if msg == nil {
		return ""
	}
	if text := msg.GetConversation(); text != "" {
		return text
	}
	if ext := msg.GetExtendedTextMessage(); ext != nil {
		return ext.GetText()
	}
	return ""
}

func (h *Handler) handleMessage(v *events.Message) {
	chat := v.Info.Chat
	if chat.String() == "status@broadcast" || chat.Server == "newsletter" {
		return
	}
	if v.Info.IsFromMe {
		return
	}

	body := strings.TrimSpace(extractText(v.Message))
	if !strings.HasPrefix(body, h.conf.Bot.Prefix) {
		return
	}

	fields := strings.Fields(strings.TrimPrefix(body, h.conf.Bot.Prefix))
	if len(fields) == 0 {
		return
	}
	name := strings.ToLower(fields[0])
	cmd, ok := h.registry.Lookup(name)
	if !ok {
		return
	}

	sender := realSender(v.Info.Sender, v.Info.SenderAlt)
	h.logger.Debugf(providers.TypeMsg, "Command %s from %s in %s", name, sender, chat)

	resolved, resolution := h.canon.ResolveToPhone(context.Background(), h.resolver, sender.String())
	if identity.IsLID(sender.String()) {
		h.metrics.IncLidResolutions(resolution.String())
	}

	tag := v.Info.PushName
	if tag == "" {
		tag = sender.User
	}
	if len(tag) > 32 {
		tag = tag[:32]
	}

	cctx := &commands.Context{
		Ctx:       context.Background(),
		Chat:      chat.String(),
		Sender:    resolved,
		SenderTag: tag,
		Args:      fields[1:],
		RawText:   body,
		Reply: func(text string) error {
			return h.sendText(chat, text)
		},
		React: func(emoji string) error {
			_, err := h.client.SendMessage(context.Background(), chat,
				h.client.BuildReaction(chat, v.Info.Sender, v.Info.ID, emoji))
			return err
		},
	}

	start := time.Now()
	err := cmd.Run(cctx)
	h.metrics.IncCommandsTotal(name, err == nil)
	h.metrics.ObserveCommandDuration(name, time.Since(start))
	if err != nil {
		h.logger.Errorf(providers.TypeCmd, "Command %s failed for %s: %s", name, resolved, err)
	}
}

func (h *Handler) sendText(chat types.JID, text string) error {
	_, err := h.client.SendMessage(context.Background(), chat, &waProto.Message{
		Conversation: proto.String(text),
	})
	return err
}
