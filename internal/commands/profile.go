package commands

import (
	"fmt"
	"strings"
	"time"

	"florbot/internal/economy"
)

func (r *Registry) profileCommand() *Command {
	return &Command{
		Names: []string{"profile", "perfil"},
		Tags:  []string{"profile"},
		Help:  "profile [birth dd/mm/yyyy | genre <g> | desc <texto>]",
		Run: func(ctx *Context) error {
			if len(ctx.Args) >= 2 {
				return r.setProfileField(ctx)
			}

			return r.store.Update(func(doc *economy.Document) error {
				user := r.store.GetUser(doc, ctx.Sender)
				orEmpty := func(s string) string {
					if s == "" {
						return "—"
					}
					return s
				}
				return ctx.Reply(fmt.Sprintf(
					"「✿」Perfil de *%s*\n\n> Cumpleaños » *%s*\n> Género » *%s*\n> Descripción » *%s*\n> Personajes » *%d*\n> Favorita » *%s*",
					ctx.SenderTag,
					orEmpty(user.Birth), orEmpty(user.Genre), orEmpty(user.Description),
					len(user.Waifus), orEmpty(user.FavWaifu),
				))
			})
		},
	}
}

func (r *Registry) setProfileField(ctx *Context) error {
	field := strings.ToLower(ctx.Args[0])
	value := strings.Join(ctx.Args[1:], " ")

	return r.store.Update(func(doc *economy.Document) error {
		user := r.store.GetUser(doc, ctx.Sender)

		switch field {
		case "birth", "cumple":
			t, err := time.Parse("02/01/2006", value)
			if err != nil {
				return ctx.Reply("「✦」Formato de fecha inválido.\n> Usa dd/mm/yyyy")
			}
			user.Birth = value
			user.BirthISO = t.Format("2006-01-02")
			user.BirthYear = int64(t.Year())
		case "genre", "genero":
			user.Genre = value
		case "desc", "descripcion":
			user.Description = value
		case "fav", "favorita":
			if _, ok := r.catalog.ByID(value); !ok {
				return ctx.Reply("「✦」Ese personaje no existe en el catálogo.")
			}
			user.FavWaifu = value
		default:
			return ctx.Reply("「✦」Campo desconocido.\n> Campos: birth, genre, desc, fav")
		}

		return ctx.Reply("「✿」Perfil actualizado.")
	})
}
