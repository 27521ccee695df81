package commands

import (
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"florbot/internal/providers"
)

func (r *Registry) aiCommand() *Command {
	return &Command{
		Names: []string{"ai", "ia", "gpt"},
		Tags:  []string{"ai"},
		Help:  "ai <pregunta>",
		Run: func(ctx *Context) error {
			if r.ai == nil {
				return ctx.Reply("「✦」El comando de IA no está configurado.")
			}
			prompt := strings.Join(ctx.Args, " ")
			if prompt == "" {
				return ctx.Reply("「✦」Uso: ai <pregunta>")
			}

			resp, err := r.ai.CreateChatCompletion(ctx.Ctx, openai.ChatCompletionRequest{
				Model: r.conf.AI.Model,
				Messages: []openai.ChatCompletionMessage{
					{Role: openai.ChatMessageRoleUser, Content: prompt},
				},
			})
			if err != nil {
				r.logger.Errorf(providers.TypeCmd, "AI request failed: %s", err)
				return ctx.Reply("「✦」No pude obtener una respuesta, inténtalo de nuevo.")
			}
			if len(resp.Choices) == 0 {
				return ctx.Reply("「✦」No pude obtener una respuesta, inténtalo de nuevo.")
			}
			return ctx.Reply(strings.TrimSpace(resp.Choices[0].Message.Content))
		},
	}
}
