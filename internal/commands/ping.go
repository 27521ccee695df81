package commands

import (
	"fmt"
	"time"
)

var startTime = time.Now()

func (r *Registry) pingCommand() *Command {
	return &Command{
		Names: []string{"ping"},
		Tags:  []string{"info"},
		Help:  "ping",
		Run: func(ctx *Context) error {
			uptime := time.Since(startTime).Round(time.Second)
			return ctx.Reply(fmt.Sprintf("🏓 Pong!\n> Uptime » *%s*", uptime))
		},
	}
}
