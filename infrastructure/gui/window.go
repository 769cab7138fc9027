//go:build gui

package gui

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	appconversion "audio-extractor/application/conversion"
	appnotification "audio-extractor/application/notification"
	"audio-extractor/application/toolchain"
	"audio-extractor/domain/media"
	"audio-extractor/domain/notification"
	"audio-extractor/domain/session"
	"audio-extractor/infrastructure/notify"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// dialogNotifier shows each message as a modal dialog on the window
type dialogNotifier struct {
	win      fyne.Window
	onClosed func(notification.Message)
}

func (d *dialogNotifier) Notify(ctx context.Context, msg notification.Message) error {
	var dlg dialog.Dialog
	if msg.Severity() == notification.Critical {
		dlg = dialog.NewError(errors.New(msg.Text), d.win)
	} else {
		dlg = dialog.NewInformation(msg.Title, msg.Text, d.win)
	}
	if d.onClosed != nil {
		dlg.SetOnClosed(func() { d.onClosed(msg) })
	}
	dlg.Show()
	return nil
}

type view struct {
	ctx       context.Context
	app       fyne.App
	win       fyne.Window
	opts      Options
	locator   *toolchain.Locator
	converter *appconversion.Service
	sess      session.Session
	err       error

	sourceEntry  *widget.Entry
	destEntry    *widget.Entry
	sourceBrowse *widget.Button
	destBrowse   *widget.Button
	convertBtn   *widget.Button
	status       *widget.Label
}

// Run opens the window and blocks until it is closed. A declined or failed
// ffmpeg lookup closes the window and is returned.
func Run(ctx context.Context, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	a := app.NewWithID("io.github.audio-extractor")
	w := a.NewWindow("Audio Extractor")
	w.SetMaster()

	v := &view{ctx: ctx, app: a, win: w, opts: opts, sess: session.New()}

	dn := &dialogNotifier{win: w, onClosed: v.onDialogClosed}
	notifiers := append(notify.Multi{dn}, opts.Notifiers...)
	svc := appnotification.NewService(notifiers, opts.Logger)

	v.locator = toolchain.NewLocator(opts.Prober, opts.Files, opts.SearchPath,
		toolchain.WithProbeTimeout(opts.ProbeTimeout),
		toolchain.WithNotifier(svc),
		toolchain.WithLogger(opts.Logger),
	)
	v.converter = appconversion.NewService(opts.Extractor, svc, opts.Logger, opts.Bitrate)

	w.SetContent(v.build())
	w.Resize(fyne.NewSize(640, 180))
	w.Show()

	v.refresh()
	v.checkTool()

	a.Run()
	return v.err
}

func (v *view) build() fyne.CanvasObject {
	v.sourceEntry = widget.NewEntry()
	v.sourceEntry.SetPlaceHolder("Video file")
	v.sourceEntry.OnChanged = func(text string) {
		if next, err := v.sess.ChooseSource(text); err == nil {
			v.sess = next
		}
		v.refresh()
	}

	v.destEntry = widget.NewEntry()
	v.destEntry.SetPlaceHolder("Output " + v.opts.audioExtension() + " file")
	v.destEntry.OnChanged = func(text string) {
		if next, err := v.sess.ChooseDestination(text); err == nil {
			v.sess = next
		}
		v.refresh()
	}

	v.sourceBrowse = widget.NewButton("Browse…", v.chooseSource)
	v.destBrowse = widget.NewButton("Browse…", v.chooseDestination)
	v.convertBtn = widget.NewButton("Convert", v.convert)
	v.convertBtn.Importance = widget.HighImportance
	v.status = widget.NewLabel("")

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Video file", Widget: container.NewBorder(nil, nil, nil, v.sourceBrowse, v.sourceEntry)},
			{Text: "Audio file", Widget: container.NewBorder(nil, nil, nil, v.destBrowse, v.destEntry)},
		},
	}

	return container.NewVBox(
		form,
		widget.NewSeparator(),
		container.NewHBox(v.status, layout.NewSpacer(), v.convertBtn),
	)
}

// refresh derives widget state from the session
func (v *view) refresh() {
	state := v.sess.State()

	for _, w := range []fyne.Disableable{v.sourceEntry, v.destEntry, v.sourceBrowse, v.destBrowse} {
		if state == session.NoTool {
			w.Disable()
		} else {
			w.Enable()
		}
	}

	if v.sess.CanConvert() {
		v.convertBtn.Enable()
	} else {
		v.convertBtn.Disable()
	}

	switch state {
	case session.NoTool:
		v.status.SetText("Looking for ffmpeg…")
	case session.ToolFound:
		v.status.SetText("Choose a video file and an output file.")
	case session.SourceChosen:
		v.status.SetText("Choose an output file.")
	case session.DestinationChosen:
		v.status.SetText("Choose a video file.")
	case session.Ready:
		v.status.SetText("Ready to convert.")
	}
}

func (v *view) checkTool() {
	if v.locator.Probe(v.ctx).Available {
		v.sess = v.sess.ToolLocated()
		v.refresh()
		return
	}

	msg := notification.NewToolMissing(v.locator.Executable())
	dialog.ShowConfirm(msg.Title, msg.Text+"\n\nDo you want to specify the folder?", func(ok bool) {
		if !ok {
			v.terminate(media.ErrTerminated)
			return
		}
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				v.terminate(media.ErrTerminated)
				return
			}
			if _, err := v.locator.TryDirectory(v.ctx, uri.Path()); err != nil {
				// The still-missing dialog quits the app when dismissed
				v.err = err
				return
			}
			v.sess = v.sess.ToolLocated()
			v.refresh()
		}, v.win)
	}, v.win)
}

func (v *view) onDialogClosed(msg notification.Message) {
	if msg.Kind == notification.ToolStillMissing {
		v.app.Quit()
	}
}

func (v *view) terminate(err error) {
	v.err = err
	v.app.Quit()
}

func (v *view) chooseSource() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil || r == nil {
			return
		}
		path := r.URI().Path()
		_ = r.Close()
		v.sourceEntry.SetText(path)
	}, v.win)
	if len(v.opts.VideoExtensions) > 0 {
		d.SetFilter(storage.NewExtensionFileFilter(v.opts.VideoExtensions))
	}
	d.Show()
}

func (v *view) chooseDestination() {
	ext := v.opts.audioExtension()
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil || w == nil {
			return
		}
		path := w.URI().Path()
		_ = w.Close()
		v.destEntry.SetText(path)
	}, v.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))

	if def := media.DefaultDestination(v.sess.Source(), ext); def != "" {
		d.SetFileName(filepath.Base(def))
		if dir, err := storage.ListerForURI(storage.NewFileURI(filepath.Dir(def))); err == nil {
			d.SetLocation(dir)
		}
	}
	d.Show()
}

// convert blocks the window until ffmpeg exits
func (v *view) convert() {
	if _, err := v.converter.ExtractSession(v.ctx, v.sess); err != nil {
		v.opts.Logger.Debug("conversion did not complete", "error", err)
		return
	}
	v.sess = v.sess.Reset()
	v.sourceEntry.SetText("")
	v.destEntry.SetText("")
	v.refresh()
}
