package bot

import (
	"go.mau.fi/whatsmeow/types"

	"florbot/internal/identity"
)

// NewNormalizer adapts whatsmeow's JID parsing as the transport normalizer:
// device and agent suffixes are dropped so alias variants of the same user
// fold onto one JID.
func NewNormalizer() identity.Normalizer {
	return func(jid string) (string, error) {
		parsed, err := types.ParseJID(jid)
		if err != nil {
			return "", err
		}
		return types.NewJID(parsed.User, parsed.Server).String(), nil
	}
}
