// Package bot wires the whatsmeow transport to the command layer: client
// bootstrap, message dispatch and LID resolution against the session store.
package bot

import (
	"context"
	"fmt"
	"os"

	"github.com/mdp/qrterminal"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/store/sqlstore"
	waLog "go.mau.fi/whatsmeow/util/log"

	"florbot/internal/providers"
	"florbot/internal/structures"
)

func sessionDSN(conf *structures.Config) string {
	return fmt.Sprintf("file:%s/datastore.db?_foreign_keys=on", conf.Bot.SessionPath)
}

func NewClient(conf *structures.Config, logger providers.Logger) (*whatsmeow.Client, error) {
	if err := os.MkdirAll(conf.Bot.SessionPath, 0755); err != nil {
		return nil, err
	}

	ctx := context.Background()
	dbLog := waLog.Stdout("DB", "ERROR", true)
	sqlContainer, err := sqlstore.New(ctx, "sqlite3", sessionDSN(conf), dbLog)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	deviceStore, err := sqlContainer.GetFirstDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get device store: %w", err)
	}

	clientLog := waLog.Stdout("Client", "ERROR", true)
	client := whatsmeow.NewClient(deviceStore, clientLog)
	logger.Infof(providers.TypeApp, "WhatsApp client initialized (session: %s)", conf.Bot.SessionPath)
	return client, nil
}

// Connect logs in, rendering a terminal QR code when no session exists yet.
func Connect(client *whatsmeow.Client) error {
	if client.Store.ID == nil {
		qrChan, _ := client.GetQRChannel(context.Background())
		go func() {
			for evt := range qrChan {
				if evt.Event == "code" {
					qrterminal.GenerateHalfBlock(evt.Code, qrterminal.L, os.Stdout)
				}
			}
		}()
	}
	return client.Connect()
}
