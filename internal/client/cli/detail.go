package cli

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"

	"teamspace/internal/client/chat"
	"teamspace/internal/client/voice"
)

// showGallery prints the photo sequence with the slide cursor.
func (a *App) showGallery() {
	photos := a.gallery.Photos()
	if len(photos) == 0 {
		a.printf("No photos yet.\n")
		return
	}
	for i, p := range photos {
		cursor := "  "
		if i == a.gallery.Index() {
			cursor = "> "
		}
		a.printf("%s%2d. %s (uploaded %s)\n", cursor, i+1, p.ID, p.UploadedAt.Format("2006-01-02"))
	}
}

// uploadPhotos reads each named file and uploads the batch. Unreadable
// files are skipped like any other per-file failure.
func (a *App) uploadPhotos(ctx context.Context, paths []string) {
	if len(paths) == 0 {
		a.printf("Usage: upload <file> [file...]\n")
		return
	}
	var files [][]byte
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			a.printf("Skipping %s: %v\n", path, err)
			continue
		}
		files = append(files, data)
	}
	a.gallery.Upload(ctx, files)
	a.printf("Gallery now has %d photos.\n", len(a.gallery.Photos()))
}

// focusPhoto opens the modal on the numbered photo.
func (a *App) focusPhoto(arg string) {
	n, err := strconv.Atoi(arg)
	photos := a.gallery.Photos()
	if err != nil || n < 1 || n > len(photos) {
		a.printf("Usage: focus <number>\n")
		return
	}
	a.gallery.Focus(photos[n-1])
	a.printf("Focused photo %s. Commands: zoom, delete, unfocus\n", photos[n-1].ID)
}

// deletePhoto removes the focused photo behind the confirmation gate.
func (a *App) deletePhoto(ctx context.Context) error {
	if _, ok := a.gallery.Focused(); !ok {
		a.printf("Focus a photo first.\n")
		return nil
	}
	if err := a.gallery.Delete(ctx); err != nil {
		a.printf("Could not delete photo: %v\n", err)
		return err
	}
	return nil
}

// showChat prints the message list; unconfirmed entries are marked.
func (a *App) showChat() {
	msgs := a.chatEngine.Messages()
	if len(msgs) == 0 {
		a.printf("No messages yet.\n")
		return
	}
	for _, m := range msgs {
		mark := ""
		switch m.Status {
		case chat.StatusPending:
			mark = " [sending]"
		case chat.StatusFailed:
			mark = " [failed]"
		}
		a.printf("%s: %s%s\n", m.SenderEmail, m.Text, mark)
	}
	a.printf("Budget: $%.2f\n", a.chatEngine.Total())
}

// sendMessage sends chat text; empty input is rejected inline.
func (a *App) sendMessage(ctx context.Context, text string) error {
	err := a.chatEngine.Send(ctx, text)
	if errors.Is(err, chat.ErrEmptyMessage) {
		a.printf("Nothing to send.\n")
		return nil
	}
	if err != nil {
		a.printf("Could not send message: %v\n", err)
		return err
	}
	a.printf("Budget: $%.2f\n", a.chatEngine.Total())
	return nil
}

// voiceMessage transcribes one utterance and feeds it to the chat input.
func (a *App) voiceMessage(ctx context.Context) error {
	text, err := a.recognizer.Transcribe(ctx)
	if err != nil {
		if errors.Is(err, voice.ErrUnavailable) {
			a.printf("Voice input is not available.\n")
			return nil
		}
		a.printf("Voice input failed: %v\n", err)
		return err
	}
	a.printf("Heard: %s\n", text)
	return a.sendMessage(ctx, strings.TrimSpace(text))
}
