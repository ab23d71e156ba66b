package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/logging"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/render"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/report"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/reportfile"
)

const autoReport = "(from file)"

type uiState struct {
	app    fyne.App
	window fyne.Window

	filePath   string
	reportName string
	width      int
	showHints  bool

	img        *canvas.Image
	fileLabel  *widget.Label
	statusText *widget.Label
}

type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	var fileFlag string
	var widthFlag int
	flag.StringVar(&fileFlag, "file", "", "Path to a report definition (YAML or JSON)")
	flag.IntVar(&widthFlag, "width", 0, "Render width in pixels (default: the report's own size)")
	flag.Parse()

	a := app.NewWithID("com.magicschool.reportviewer")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("Survey Report Viewer")
	w.Resize(fyne.NewSize(1100, 800))

	state := &uiState{app: a, window: w}
	loadPrefs(state)
	if fileFlag != "" {
		state.filePath = fileFlag
	}
	if widthFlag > 0 {
		state.width = widthFlag
	}

	state.fileLabel = widget.NewLabel(truncatePath(state.filePath, 60))
	state.statusText = widget.NewLabel("")
	state.img = canvas.NewImageFromImage(blank(900, 600))
	state.img.FillMode = canvas.ImageFillContain
	state.img.SetMinSize(fyne.NewSize(900, 600))

	reportSel := widget.NewSelect(append([]string{autoReport}, reportNames()...), nil)
	reportSel.Selected = autoReport
	if state.reportName != "" {
		reportSel.Selected = state.reportName
	}
	reportSel.OnChanged = func(s string) {
		state.reportName = ""
		if s != autoReport {
			state.reportName = s
		}
		savePrefs(state)
		loadAll(state)
	}
	hintsChk := widget.NewCheck("Stamp file name", func(b bool) {
		state.showHints = b
		savePrefs(state)
		loadAll(state)
	})
	hintsChk.Checked = state.showHints

	top := container.NewHBox(
		widget.NewButton("Open…", func() { openFileDialog(state) }),
		widget.NewButton("Reload", func() { loadAll(state) }),
		widget.NewLabel("Report:"), reportSel,
		hintsChk,
		state.fileLabel,
	)
	w.SetContent(container.NewBorder(top, state.statusText, nil, nil, container.NewScroll(state.img)))
	buildMenus(state)

	loadAll(state)
	w.ShowAndRun()
}

func reportNames() []string {
	var out []string
	for _, k := range report.Kinds() {
		out = append(out, string(k))
	}
	return out
}

func buildMenus(state *uiState) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	var items []*fyne.MenuItem
	for _, f := range recentFiles(state) {
		f := f
		items = append(items, fyne.NewMenuItem(truncatePath(f, 60), func() {
			state.filePath = f
			savePrefs(state)
			loadAll(state)
		}))
	}
	clearRecent := fyne.NewMenuItem("Clear Recent", func() { clearRecentFiles(state); buildMenus(state) })
	recentMenu := fyne.NewMenu("Open Recent", append(items, clearRecent)...)
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open…", func() { openFileDialog(state) }),
		fyne.NewMenuItem("Reload", func() { loadAll(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PNG…", func() { exportPNG(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu, recentMenu))

	canv := state.window.Canvas()
	if canv != nil {
		for _, mod := range []fyne.KeyModifier{fyne.KeyModifierSuper, fyne.KeyModifierControl} {
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: mod}, func(fyne.Shortcut) { openFileDialog(state) })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: mod}, func(fyne.Shortcut) { loadAll(state) })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: mod}, func(fyne.Shortcut) { exportPNG(state) })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: mod}, func(fyne.Shortcut) { state.window.Close() })
		}
	}
}

func openFileDialog(state *uiState) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		state.filePath = rc.URI().Path()
		addRecentFile(state, state.filePath)
		savePrefs(state)
		buildMenus(state)
		loadAll(state)
	}, state.window)
	d.Show()
}

// loadAll renders the current file off the UI goroutine and swaps the image in.
func loadAll(state *uiState) {
	if state.filePath == "" {
		return
	}
	state.fileLabel.SetText(truncatePath(state.filePath, 60))
	state.statusText.SetText("Rendering…")
	path, kind, width, stamp := state.filePath, report.Kind(state.reportName), state.width, ""
	if state.showHints {
		stamp = filepath.Base(path)
	}
	go func() {
		start := time.Now()
		img, def, err := renderFile(context.Background(), path, kind, width, stamp)
		fyne.Do(func() {
			if err != nil {
				state.statusText.SetText("")
				dialog.ShowError(err, state.window)
				return
			}
			state.img.Image = img
			state.img.Refresh()
			state.statusText.SetText(statusLine(def, img, time.Since(start)))
		})
	}()
}

// renderFile loads a definition and renders it. kind is used when the file names no
// report.
func renderFile(ctx context.Context, path string, kind report.Kind, width int, stamp string) (image.Image, reportfile.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, reportfile.Definition{}, fmt.Errorf("read report definition: %w", err)
	}
	def, err := reportfile.Parse(data, kind)
	if err != nil {
		return nil, reportfile.Definition{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	pl, err := def.Generate()
	if err != nil {
		return nil, def, err
	}
	img, err := render.New(render.WithWidth(width), render.WithStamp(stamp)).Render(ctx, pl)
	if err != nil {
		return nil, def, err
	}
	logging.Debugf("viewer rendered %s (%s)", path, def.Report)
	return img, def, nil
}

func statusLine(def reportfile.Definition, img image.Image, took time.Duration) string {
	b := img.Bounds()
	return fmt.Sprintf("%s report, %d responses in %d categories, %dx%d px, rendered in %s",
		def.Report, def.Responses.Total(), def.Responses.Len(), b.Dx(), b.Dy(), took.Round(time.Millisecond))
}

func exportPNG(state *uiState) {
	if state == nil || state.window == nil {
		return
	}
	if state.img == nil || state.img.Image == nil || state.filePath == "" {
		dialog.ShowInformation("Export", "No report to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := png.Encode(wc, state.img.Image); err != nil {
			dialog.ShowError(err, state.window)
		}
	}, state.window)
	fs.SetFileName(exportName(state.filePath))
	fs.Show()
}

func exportName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))] + ".png"
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 18, G: 18, B: 18, A: 255})
		}
	}
	return img
}
