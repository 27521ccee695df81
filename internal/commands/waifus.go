package commands

import (
	"fmt"
	"sort"
	"strings"

	"florbot/internal/economy"
	"florbot/internal/gacha"
)

func (r *Registry) waifuInfoCommand() *Command {
	return &Command{
		Names: []string{"waifuinfo", "winfo", "buscar"},
		Tags:  []string{"gacha"},
		Help:  "waifuinfo <nombre>",
		Run: func(ctx *Context) error {
			query := strings.Join(ctx.Args, " ")
			matches := r.catalog.Search(query)
			if len(matches) == 0 {
				return ctx.Reply("「✦」No encontré ningún personaje con ese nombre.")
			}
			ch := matches[0]

			return r.store.Update(func(doc *economy.Document) error {
				state := r.store.GetWaifuState(doc, ch.ID)
				owner := "Libre"
				if state.Owner != "" {
					owner = "+" + numberOf(state.Owner)
				}

				lines := []string{
					fmt.Sprintf("「✿」*%s*", ch.Name),
					"",
					fmt.Sprintf("> Anime » *%s*", ch.Source),
					fmt.Sprintf("> Género » *%s*", ch.Gender),
					fmt.Sprintf("> Rareza » *%s*", gacha.RarityNames[ch.Rarity]),
					fmt.Sprintf("> Valor » *%s*", economy.FormatMoney(ch.Value)),
					fmt.Sprintf("> Dueño » *%s*", owner),
				}
				if entry := r.store.GetMarketEntry(doc, ch.ID); entry != nil {
					lines = append(lines, fmt.Sprintf("> En venta » *%s*", economy.FormatMoney(entry.Price)))
				}
				if len(matches) > 1 {
					lines = append(lines, "", fmt.Sprintf("> +%d resultados más", len(matches)-1))
				}
				return ctx.Reply(strings.Join(lines, "\n"))
			})
		},
	}
}

func (r *Registry) waifuBoardCommand() *Command {
	return &Command{
		Names: []string{"waifusboard", "wboard"},
		Tags:  []string{"gacha"},
		Help:  "waifusboard",
		Run: func(ctx *Context) error {
			return r.store.View(func(doc *economy.Document) error {
				type entry struct {
					jid   string
					count int
				}
				var entries []entry
				for jid, u := range doc.Users {
					if u != nil && len(u.Waifus) > 0 {
						entries = append(entries, entry{jid, len(u.Waifus)})
					}
				}
				sort.Slice(entries, func(i, j int) bool { return entries[i].count > entries[j].count })
				if len(entries) > 10 {
					entries = entries[:10]
				}

				var b strings.Builder
				b.WriteString("「✿」Top de coleccionistas\n")
				for i, e := range entries {
					fmt.Fprintf(&b, "\n> %d. +%s » *%d personajes*", i+1, numberOf(e.jid), e.count)
				}
				if len(entries) == 0 {
					b.WriteString("\n> Nadie ha reclamado personajes todavía.")
				}
				return ctx.Reply(b.String())
			})
		},
	}
}
