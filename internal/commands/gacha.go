package commands

import (
	"fmt"
	"time"

	"florbot/internal/economy"
	"florbot/internal/gacha"
)

const rollCooldown = 5 * time.Minute

func (r *Registry) rollCommand() *Command {
	return &Command{
		Names: []string{"rw", "roll", "rollwaifu"},
		Tags:  []string{"gacha"},
		Help:  "rw",
		Run: func(ctx *Context) error {
			if r.catalog.Len() == 0 {
				return ctx.Reply("「✦」El catálogo de personajes no está disponible.")
			}

			return r.store.Update(func(doc *economy.Document) error {
				user := r.store.GetUser(doc, ctx.Sender)

				if remain := economy.Cooldown(user, "roll"); remain > 0 {
					return ctx.Reply(fmt.Sprintf("《✧》Espera antes de volver a tirar.\n> Vuelve en » *%s*", economy.FormatDuration(remain)))
				}

				ch := r.catalog.Roll(r.rng)
				user.LastRoll = economy.LastRoll{ID: ch.ID, At: time.Now().UnixMilli()}
				economy.SetCooldown(user, "roll", rollCooldown)

				state := r.store.GetWaifuState(doc, ch.ID)
				status := "Libre — usa *.claim* para reclamar"
				if state.Owner != "" {
					status = fmt.Sprintf("Reclamada por +%s", numberOf(state.Owner))
				}

				return ctx.Reply(fmt.Sprintf(
					"「✿」¡Apareció *%s*!\n\n> Anime » *%s*\n> Rareza » *%s*\n> Valor » *%s*\n> Estado » %s",
					ch.Name, ch.Source, gacha.RarityNames[ch.Rarity], economy.FormatMoney(ch.Value), status,
				))
			})
		},
	}
}

func (r *Registry) claimCommand() *Command {
	return &Command{
		Names: []string{"claim", "c", "reclamar"},
		Tags:  []string{"gacha"},
		Help:  "claim",
		Run: func(ctx *Context) error {
			return r.store.Update(func(doc *economy.Document) error {
				user := r.store.GetUser(doc, ctx.Sender)

				if user.LastRoll.ID == "" {
					return ctx.Reply("「✦」No has tirado todavía.\n> Usa *.rw* primero.")
				}

				ch, ok := r.catalog.ByID(user.LastRoll.ID)
				if !ok {
					return ctx.Reply("「✦」Ese personaje ya no existe en el catálogo.")
				}

				state := r.store.GetWaifuState(doc, ch.ID)
				if state.Owner != "" {
					return ctx.Reply(fmt.Sprintf("「✦」*%s* ya fue reclamada por +%s.", ch.Name, numberOf(state.Owner)))
				}

				state.Owner = ctx.Sender
				state.ClaimedAt = time.Now().UnixMilli()
				user.Waifus = appendUnique(user.Waifus, ch.ID)

				if ctx.React != nil {
					_ = ctx.React("❤️")
				}
				return ctx.Reply(fmt.Sprintf("「✿」¡Reclamaste a *%s*! (%s)", ch.Name, gacha.RarityNames[ch.Rarity]))
			})
		},
	}
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
