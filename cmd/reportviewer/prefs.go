package main

import (
	"os"
	"path/filepath"
	"strings"
)

const maxRecent = 10

func recentFiles(state *uiState) []string {
	raw := state.app.Preferences().StringWithFallback("recentFiles", "")
	return existing(splitRecent(raw))
}

func addRecentFile(state *uiState, path string) {
	list := pushRecent(recentFiles(state), path, maxRecent)
	state.app.Preferences().SetString("recentFiles", strings.Join(list, "\n"))
}

func clearRecentFiles(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	state.app.Preferences().SetString("recentFiles", "")
}

func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetString("lastFile", state.filePath)
	prefs.SetString("reportName", state.reportName)
	prefs.SetInt("width", state.width)
	prefs.SetBool("showHints", state.showHints)
}

func loadPrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	state.filePath = prefs.StringWithFallback("lastFile", "")
	state.reportName = prefs.StringWithFallback("reportName", "")
	state.width = prefs.IntWithFallback("width", 0)
	state.showHints = prefs.BoolWithFallback("showHints", false)
}

func splitRecent(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, "\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// existing drops paths that are no longer on disk.
func existing(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

// pushRecent moves path to the front of list, keeping at most max entries.
func pushRecent(list []string, path string, max int) []string {
	out := []string{path}
	for _, f := range list {
		if f != path && len(out) < max {
			out = append(out, f)
		}
	}
	return out
}

func truncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	base := filepath.Base(p)
	if len(base)+4 >= n {
		return "..." + base
	}
	dir := filepath.Dir(p)
	left := n - len(base) - 4
	if len(dir) > left {
		dir = dir[:left]
	}
	return dir + "/..." + base
}
