package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDocServer serves a miniature version of the documentation site:
// a landing page linking two categories, and for every page with query
// parameters a combined sidebar-plus-content page, the way the real
// site renders category listings and item documentation together.
func newDocServer(t *testing.T) *httptest.Server {
	t.Helper()

	items := map[string][]string{
		"AI":      {"AIJobTypeManager"},
		"Physics": {"addForce", "addTorque"},
	}
	itemParam := map[string]string{"script": "class", "engine": "function"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		version := q.Get("version")

		if version == "" {
			fmt.Fprint(w, `<html><body><ul>
				<li><a href="?version=script&category=AI&class=AIJobTypeManager">AI</a></li>
				<li><a href="?version=engine&category=Physics&function=addForce">Physics</a></li>
				<li><a href="https://elsewhere.example.com/?version=script&category=X&class=Y">offsite</a></li>
				<li><a href="?page=about">About</a></li>
			</ul></body></html>`)
			return
		}

		category := q.Get("category")
		param := itemParam[version]
		item := q.Get(param)

		var sidebar strings.Builder
		for _, name := range items[category] {
			fmt.Fprintf(&sidebar, `<li><a href="?version=%s&category=%s&%s=%s">%s</a></li>`,
				version, category, param, name, name)
		}

		fmt.Fprintf(w, `<html><body>
			<ul><li class="selected"><a href="#">%s</a><ul>%s</ul></li></ul>
			<div id="box5"><div class="entry">
				<div><a href="#">navigation</a></div>
				<div><h1>%s</h1><p>Documentation for %s in %s.</p></div>
			</div></div>
		</body></html>`, category, sidebar.String(), item, item, category)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runMain(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := NewMain().Run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func TestRun_MirrorsSite(t *testing.T) {
	t.Parallel()

	srv := newDocServer(t)
	dir := t.TempDir()

	out, err := runMain(t, srv.URL, "--output", dir, "--delay", "1ms")
	require.NoError(t, err)

	assert.Contains(t, out, "Discovered 3 pages")
	assert.Contains(t, out, "Done: 3 written")

	for _, rel := range []string{
		"script/AI/AIJobTypeManager.md",
		"engine/Physics/addForce.md",
		"engine/Physics/addTorque.md",
	} {
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(rel)))
	}

	content, err := os.ReadFile(filepath.Join(dir, "engine", "Physics", "addForce.md"))
	require.NoError(t, err)
	page := string(content)
	assert.True(t, strings.HasPrefix(page, "# addForce\n"))
	assert.Contains(t, page, "**Category:** Physics")
	assert.Contains(t, page, "**Version:** engine")
	assert.Contains(t, page, "Documentation for addForce in Physics.")
}

func TestRun_WritesManifestAndIndex(t *testing.T) {
	t.Parallel()

	srv := newDocServer(t)
	dir := t.TempDir()

	_, err := runMain(t, srv.URL, "--output", dir, "--delay", "1ms")
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	require.NoError(t, err)

	var manifest struct {
		Metadata struct {
			SourceURL  string `json:"source_url"`
			TotalFiles int    `json:"total_files"`
			RunID      string `json:"run_id"`
		} `json:"metadata"`
		Versions map[string]struct {
			Categories map[string]struct {
				Items []struct {
					Name string `json:"name"`
					Path string `json:"path"`
					Hash string `json:"hash"`
				} `json:"items"`
			} `json:"categories"`
		} `json:"versions"`
	}
	require.NoError(t, json.Unmarshal(raw, &manifest))

	assert.Equal(t, srv.URL, manifest.Metadata.SourceURL)
	assert.Equal(t, 3, manifest.Metadata.TotalFiles)
	assert.NotEmpty(t, manifest.Metadata.RunID)

	physics := manifest.Versions["engine"].Categories["Physics"]
	require.Len(t, physics.Items, 2)
	assert.Equal(t, "addForce", physics.Items[0].Name)
	assert.Equal(t, "engine/Physics/addForce.md", physics.Items[0].Path)
	assert.NotEmpty(t, physics.Items[0].Hash)

	index, err := os.ReadFile(filepath.Join(dir, "INDEX.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "# FS25 Documentation Index")
	assert.Contains(t, string(index), "## ENGINE")
	assert.Contains(t, string(index), "### Physics (2 items)")
	assert.Contains(t, string(index), "- [addTorque](engine/Physics/addTorque.md)")
}

func TestRun_SecondRunSkipsExistingFiles(t *testing.T) {
	t.Parallel()

	srv := newDocServer(t)
	dir := t.TempDir()

	_, err := runMain(t, srv.URL, "--output", dir, "--delay", "1ms")
	require.NoError(t, err)

	out, err := runMain(t, srv.URL, "--output", dir, "--delay", "1ms")
	require.NoError(t, err)

	assert.Contains(t, out, "Done: 0 written")
	assert.Contains(t, out, "3 skipped")
}

func TestRun_ForceRewritesExistingFiles(t *testing.T) {
	t.Parallel()

	srv := newDocServer(t)
	dir := t.TempDir()

	_, err := runMain(t, srv.URL, "--output", dir, "--delay", "1ms")
	require.NoError(t, err)

	out, err := runMain(t, srv.URL, "--output", dir, "--delay", "1ms", "--force")
	require.NoError(t, err)

	assert.Contains(t, out, "Done: 3 written")
}

func TestRun_UnreachableSiteIsAnError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := runMain(t, srv.URL, "--output", t.TempDir(), "--delay", "1ms")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "landing page")
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := NewMain().Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "gdnfetch")
}

func TestRun_InvalidFlag(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := NewMain().Run(context.Background(), []string{"--nope"}, &stdout, &stderr)

	require.Error(t, err)
}
