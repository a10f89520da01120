package cli

import (
	"context"
	"errors"
	"io"
	"strings"
)

func (a *App) status() string {
	s := a.screen.String()
	if u := a.sessions.Current(); u.Authenticated() {
		s = u.Email + " " + s
	}
	return "(" + s + ")"
}

// Run starts the read–eval–print loop. It exits on EOF or "exit"/"quit";
// command errors are reported by the handlers themselves so the loop stays
// focused on I/O.
func (a *App) Run(ctx context.Context) {
	a.Start(ctx)
	a.printf("Teamspace client (type 'help' for commands)\n")

	for {
		a.printf("ts %s> ", a.status())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				a.logger.Error(ctx, "input error", "error", err)
			}
			return
		}
		if a.dispatch(ctx, line) {
			a.printf("Bye!\n")
			return
		}
	}
}

// dispatch executes one command line and reports whether the loop should
// exit. Available commands depend on the active screen.
func (a *App) dispatch(ctx context.Context, line string) (quit bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "exit", "quit":
		return true
	case "help":
		a.printHelp()
		return false
	case "logout":
		if a.isLoggedIn() {
			a.SignOut()
			return false
		}
	}

	switch a.screen {
	case ScreenLoggedOut:
		switch cmd {
		case "login":
			_ = a.SignIn(ctx)
		default:
			a.printf("Unknown command: %s\n", cmd)
		}

	case ScreenTeamList:
		switch cmd {
		case "l", "list":
			a.listTeams()
		case "create":
			_ = a.createTeam(ctx)
		case "open":
			if len(args) == 0 {
				a.printf("Usage: open <number>\n")
				return false
			}
			_ = a.openTeam(ctx, args[0])
		default:
			a.printf("Unknown command: %s\n", cmd)
		}

	case ScreenTeamDetail:
		switch cmd {
		case "photos":
			a.showGallery()
		case "next":
			a.gallery.Advance(1)
			a.showGallery()
		case "prev":
			a.gallery.Advance(-1)
			a.showGallery()
		case "focus":
			if len(args) == 0 {
				a.printf("Usage: focus <number>\n")
				return false
			}
			a.focusPhoto(args[0])
		case "unfocus":
			a.gallery.Unfocus()
		case "zoom":
			a.gallery.ToggleZoom()
		case "upload":
			a.uploadPhotos(ctx, args)
		case "delete":
			_ = a.deletePhoto(ctx)
		case "chat":
			a.showChat()
		case "say":
			_ = a.sendMessage(ctx, strings.Join(args, " "))
		case "voice":
			_ = a.voiceMessage(ctx)
		case "budget":
			a.printf("Budget: $%.2f\n", a.chatEngine.Total())
		case "back":
			_ = a.Back(ctx)
		default:
			a.printf("Unknown command: %s\n", cmd)
		}
	}
	return false
}

func (a *App) printHelp() {
	switch a.screen {
	case ScreenLoggedOut:
		a.printf("Commands: login, exit\n")
	case ScreenTeamList:
		a.printf("Commands: (l)ist, create, open <n>, logout, exit\n")
	case ScreenTeamDetail:
		a.printf("Commands: photos, next, prev, focus <n>, unfocus, zoom, upload <file...>, delete, chat, say <text>, voice, budget, back, logout, exit\n")
	}
}
