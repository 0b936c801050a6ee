package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/fwojciec/resdesk"
	main "github.com/fwojciec/resdesk/cmd/resdesk"
	"github.com/fwojciec/resdesk/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDeps returns Dependencies wired with in-memory session components.
func newDeps(t *testing.T) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	ctx := context.Background()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	surface := main.NewTerminal(stdout)
	store := mock.NewMemoryStore()
	history := resdesk.NewHistory(ctx, store, surface)

	deps := &main.Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Store:     store,
		Surface:   surface,
		History:   history,
		Responder: resdesk.NewResponder(nil),
		Posts:     resdesk.NewPostIndex(nil),
		Vibes:     resdesk.NewVibeRotator(surface),
	}
	deps.Search = &resdesk.LiteratureSearch{
		History: history,
		Opener:  &mock.Opener{OpenFn: func(context.Context, string) error { return nil }},
	}
	return deps, stdout, stderr
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints URL and recent searches", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps(t)

		err := (&main.SearchCmd{Provider: "semantic", Query: []string{"policy", "gradient"}}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Recent searches:\n  1. policy gradient\n")
		assert.Contains(t, stdout.String(), "https://www.semanticscholar.org/search?q=policy%20gradient\n")
		assert.Empty(t, stderr.String())
	})

	t.Run("prints usage for empty query", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps(t)

		err := (&main.SearchCmd{Provider: "scholar", Query: []string{" "}}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "usage:")
		assert.Empty(t, stdout.String())
	})
}

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists recent searches", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)
		deps.History.RecordQuery(deps.Ctx, "bandits")
		deps.History.RecordQuery(deps.Ctx, "q-learning")
		stdout.Reset()

		require.NoError(t, (&main.HistoryCmd{}).Run(deps))

		assert.Equal(t, "Recent searches:\n  1. q-learning\n  2. bandits\n", stdout.String())
	})

	t.Run("clears history", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)
		deps.History.RecordQuery(deps.Ctx, "bandits")
		stdout.Reset()

		require.NoError(t, (&main.HistoryCmd{Clear: true}).Run(deps))

		assert.Empty(t, deps.History.Queries())
		assert.Contains(t, stdout.String(), "History cleared.")
		assert.Equal(t, "[]", deps.Store.(*mock.MemoryStore).Values[resdesk.HistoryKey])
	})
}

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("points to literature search after scroll delay", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)
		var delays []time.Duration
		deps.After = immediately(&delays)

		err := (&main.AskCmd{Request: []string{"find", "papers", "on", "bandits"}}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "explore existing research literature")
		assert.Contains(t, stdout.String(), "Next: resdesk search <query>")
		assert.Equal(t, []time.Duration{resdesk.ScrollDelay}, delays)
	})

	t.Run("opens the adaptive learning post", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)
		var delays []time.Duration
		deps.After = immediately(&delays)
		deps.Resolve = func(path string) (string, error) {
			return "file:///blog/" + path, nil
		}
		var opened string
		deps.Opener = &mock.Opener{OpenFn: func(_ context.Context, url string) error {
			opened = url
			return nil
		}}

		err := (&main.AskCmd{Request: []string{"q-learning", "rewards"}}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "file:///blog/posts/ai-adaptive-learning.html", opened)
		assert.Equal(t, []time.Duration{resdesk.NavigateDelay}, delays)
		assert.Contains(t, stdout.String(), "Redirecting you to your adaptive learning article.")
	})

	t.Run("does not follow with no-follow", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)
		deps.After = func(time.Duration) <-chan time.Time {
			t.Fatal("should not wait")
			return nil
		}

		err := (&main.AskCmd{Request: []string{"reinforcement"}, NoFollow: true}).Run(deps)

		require.NoError(t, err)
		assert.NotContains(t, stdout.String(), "Opened")
	})

	t.Run("answers short input without waiting", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)
		var delays []time.Duration
		deps.After = immediately(&delays)

		require.NoError(t, (&main.AskCmd{Request: []string{"hi"}}).Run(deps))

		assert.Equal(t, resdesk.TooShortMessage+"\n", stdout.String())
		assert.Empty(t, delays)
	})

	t.Run("stops waiting when cancelled", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		deps.Ctx = ctx
		deps.After = func(time.Duration) <-chan time.Time { return make(chan time.Time) }

		err := (&main.AskCmd{Request: []string{"why", "does", "this", "work"}}).Run(deps)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCiteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints APA citation", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)

		err := (&main.CiteCmd{Style: "apa", Author: "R. Sutton", Title: "Learning to predict", Venue: "Machine Learning", Year: "1988"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "R. Sutton (1988). Learning to predict. Machine Learning.\n", stdout.String())
	})

	t.Run("rejects unknown style", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(t)

		err := (&main.CiteCmd{Style: "chicago"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestPostsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("find lists matching posts", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)

		require.NoError(t, (&main.PostsFindCmd{Text: []string{"Adaptive", "methods"}}).Run(deps))

		assert.Contains(t, stdout.String(), "AI-Driven Adaptive Learning using Q-Learning (posts/ai-adaptive-learning.html)")
	})

	t.Run("find reports no matches", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)

		require.NoError(t, (&main.PostsFindCmd{}).Run(deps))

		assert.Equal(t, "No matching posts.\n", stdout.String())
	})

	t.Run("show prints markdown", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)
		deps.Reader = &resdesk.PostReader{
			Source: &mock.AssetSource{ReadAssetFn: func(context.Context, string) ([]byte, error) {
				return []byte("<html></html>"), nil
			}},
			Extractor: &mock.Extractor{ExtractFn: func(string) (*resdesk.ExtractResult, error) {
				return &resdesk.ExtractResult{Title: "Adaptive Learning", ContentHTML: "<p>x</p>"}, nil
			}},
			Converter: &mock.Converter{ConvertFn: func(string) (string, error) {
				return "Agents learn from rewards.", nil
			}},
		}

		require.NoError(t, (&main.PostsShowCmd{Path: "posts/ai-adaptive-learning.html"}).Run(deps))

		assert.Equal(t, "# Adaptive Learning\n\nAgents learn from rewards.\n", stdout.String())
	})

	t.Run("show prints outline", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)
		deps.Reader = &resdesk.PostReader{
			Source: &mock.AssetSource{ReadAssetFn: func(context.Context, string) ([]byte, error) {
				return []byte("<html></html>"), nil
			}},
			Extractor: &mock.Extractor{ExtractFn: func(string) (*resdesk.ExtractResult, error) {
				return &resdesk.ExtractResult{ContentHTML: "<p>x</p>"}, nil
			}},
			Converter: &mock.Converter{ConvertFn: func(string) (string, error) {
				return "# Adaptive Learning\n\n## State Space\n", nil
			}},
		}

		require.NoError(t, (&main.PostsShowCmd{Path: "posts/ai-adaptive-learning.html", Outline: true}).Run(deps))

		assert.Equal(t, "Adaptive Learning  #adaptive-learning\n  State Space  #state-space\n", stdout.String())
	})

	t.Run("show hints at cache install when offline copy is missing", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(t)
		deps.Reader = &resdesk.PostReader{
			Source: &mock.AssetSource{ReadAssetFn: func(context.Context, string) ([]byte, error) {
				return nil, resdesk.Errorf(resdesk.ENOTFOUND, "asset not found")
			}},
		}

		err := (&main.PostsShowCmd{Path: "posts/Post2.html", Offline: true}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "resdesk cache install")
	})
}

func TestVibeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("rotates with interval between reminders", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)
		var delays []time.Duration
		deps.After = immediately(&delays)

		require.NoError(t, (&main.VibeCmd{Count: 3, Interval: time.Second}).Run(deps))

		assert.Equal(t,
			"Explain intuition before equations.\n"+
				"Clearly state assumptions and constraints.\n"+
				"Negative results are still valuable.\n",
			stdout.String())
		assert.Equal(t, []time.Duration{time.Second, time.Second}, delays)
	})

	t.Run("rejects zero count", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps(t)

		err := (&main.VibeCmd{Count: 0}).Run(deps)

		assert.Equal(t, resdesk.EINVALID, resdesk.ErrorCode(err))
	})
}

func TestCacheCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("install defaults to offline assets", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)
		var gotPaths []string
		deps.Cache = &mock.AssetCache{
			InstallFn: func(_ context.Context, name string, paths []string) (*resdesk.CacheManifest, error) {
				gotPaths = paths
				return &resdesk.CacheManifest{Name: name, Assets: make([]resdesk.CachedAsset, len(paths))}, nil
			},
		}

		require.NoError(t, (&main.CacheInstallCmd{Name: resdesk.CacheName}).Run(deps))

		assert.Equal(t, resdesk.OfflineAssets, gotPaths)
		assert.Equal(t, "Installed research-blog (5 assets)\n", stdout.String())
	})

	t.Run("install discovers assets from the home page", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps(t)
		deps.Pages = &mock.AssetSource{ReadAssetFn: func(_ context.Context, path string) ([]byte, error) {
			assert.Equal(t, "index.html", path)
			return []byte(`<link href="style.css"><img src="img/q-table.png">`), nil
		}}
		var gotPaths []string
		deps.Cache = &mock.AssetCache{
			InstallFn: func(_ context.Context, name string, paths []string) (*resdesk.CacheManifest, error) {
				gotPaths = paths
				return &resdesk.CacheManifest{Name: name}, nil
			},
		}

		require.NoError(t, (&main.CacheInstallCmd{Name: resdesk.CacheName, Discover: true}).Run(deps))

		assert.Equal(t, append(slices.Clone(resdesk.OfflineAssets), "img/q-table.png"), gotPaths)
	})

	t.Run("install reports failure", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(t)
		deps.Cache = &mock.AssetCache{
			InstallFn: func(context.Context, string, []string) (*resdesk.CacheManifest, error) {
				return nil, errors.New("fetch style.css: connection refused")
			},
		}

		err := (&main.CacheInstallCmd{Name: resdesk.CacheName}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("activate lists deleted caches", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)
		deps.Cache = &mock.AssetCache{
			ActivateFn: func(_ context.Context, keep string) ([]string, error) {
				assert.Equal(t, "research-blog", keep)
				return []string{"research-blog-v0"}, nil
			},
		}

		require.NoError(t, (&main.CacheActivateCmd{Keep: "research-blog"}).Run(deps))

		assert.Equal(t, "Deleted research-blog-v0\nActive cache: research-blog\n", stdout.String())
	})

	t.Run("list reports empty cache", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t)
		deps.Cache = &mock.AssetCache{
			KeysFn: func(context.Context) ([]string, error) { return nil, nil },
		}

		require.NoError(t, (&main.CacheListCmd{}).Run(deps))

		assert.Contains(t, stdout.String(), "No caches installed.")
	})

	t.Run("verify reports mismatch", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(t)
		deps.Cache = &mock.AssetCache{
			VerifyFn: func(context.Context, string) (*resdesk.CacheManifest, error) {
				return nil, resdesk.Errorf(resdesk.ECONFLICT, "checksum mismatch for style.css")
			},
		}

		err := (&main.CacheVerifyCmd{Name: "research-blog"}).Run(deps)

		assert.Equal(t, resdesk.ECONFLICT, resdesk.ErrorCode(err))
		assert.Contains(t, stderr.String(), "checksum mismatch for style.css")
	})
}

const blogPage = `<!DOCTYPE html><html><head><title>Research Blog</title></head><body>
<p id="vibeText"></p>
<ul id="history"></ul>
</body></html>`

func TestRenderCmd_Run(t *testing.T) {
	t.Parallel()

	newRenderDeps := func(t *testing.T) (*main.Dependencies, *bytes.Buffer) {
		deps, stdout, _ := newDeps(t)
		deps.Store.(*mock.MemoryStore).Values[resdesk.HistoryKey] = `["bandits","q-learning"]`
		deps.Pages = &mock.AssetSource{ReadAssetFn: func(_ context.Context, path string) ([]byte, error) {
			assert.Equal(t, "index.html", path)
			return []byte(blogPage), nil
		}}
		return deps, stdout
	}

	t.Run("writes page with history to stdout", func(t *testing.T) {
		t.Parallel()

		deps, stdout := newRenderDeps(t)

		require.NoError(t, (&main.RenderCmd{Page: "index.html"}).Run(deps))

		out := stdout.String()
		assert.Contains(t, out, `<ul id="history"><li>bandits</li><li>q-learning</li></ul>`)
		assert.Contains(t, out, "Explain intuition before equations.")
		assert.Contains(t, out, "<!DOCTYPE html>")
	})

	t.Run("writes page to file", func(t *testing.T) {
		t.Parallel()

		deps, stdout := newRenderDeps(t)
		out := filepath.Join(t.TempDir(), "index.html")

		require.NoError(t, (&main.RenderCmd{Page: "index.html", Out: out}).Run(deps))

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<li>q-learning</li>")
		assert.Empty(t, stdout.String())
	})
}
