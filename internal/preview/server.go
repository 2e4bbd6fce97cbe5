// Package preview serves generated documents and mockups over a local
// HTTP file server.
package preview

import (
	"fmt"
	"html/template"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Serve starts a local HTTP file server over the output directory. When no
// index.html exists at the root, a generated listing of the docs and mockups
// is served instead.
func Serve(dir string, port int, open bool) error {
	addr := fmt.Sprintf(":%d", port)
	url := fmt.Sprintf("http://localhost:%d", port)

	if open {
		go openBrowser(url)
	}

	fmt.Printf("Serving generated output at %s\n", url)
	fmt.Println("Press Ctrl+C to stop.")

	mux := http.NewServeMux()
	fs := http.FileServer(http.Dir(dir))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			if _, err := os.Stat(filepath.Join(dir, "index.html")); os.IsNotExist(err) {
				serveIndex(w, dir)
				return
			}
		}
		fs.ServeHTTP(w, r)
	})

	return http.ListenAndServe(addr, mux)
}

type indexData struct {
	Docs    []indexEntry
	Mockups []indexEntry
}

type indexEntry struct {
	Name string
	Href string
}

func serveIndex(w http.ResponseWriter, dir string) {
	data := indexData{
		Docs:    listHTML(dir, "docs"),
		Mockups: listHTML(dir, "mockups"),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// listHTML returns the .html files under dir/sub, sorted by name.
func listHTML(dir, sub string) []indexEntry {
	entries, err := os.ReadDir(filepath.Join(dir, sub))
	if err != nil {
		return nil
	}
	var out []indexEntry
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".html")
		out = append(out, indexEntry{
			Name: titleCase(strings.ReplaceAll(name, "_", " ")),
			Href: sub + "/" + e.Name(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Blueprint Output</title>
<style>
body { font-family: -apple-system, sans-serif; max-width: 720px; margin: 3rem auto; padding: 0 1rem; background: #1a1b26; color: #c0caf5; }
h1 { font-size: 1.6rem; }
h2 { font-size: 1.1rem; margin-top: 2rem; color: #7aa2f7; }
a { color: #7dcfff; text-decoration: none; }
a:hover { text-decoration: underline; }
li { margin: 0.4rem 0; }
</style>
</head>
<body>
<h1>Blueprint Output</h1>
{{if .Docs}}<h2>Documents</h2>
<ul>{{range .Docs}}<li><a href="{{.Href}}">{{.Name}}</a></li>{{end}}</ul>{{end}}
{{if .Mockups}}<h2>Mockups</h2>
<ul>{{range .Mockups}}<li><a href="{{.Href}}">{{.Name}}</a></li>{{end}}</ul>{{end}}
{{if and (not .Docs) (not .Mockups)}}<p>Nothing generated yet. Run <code>blueprint generate</code> first.</p>{{end}}
</body>
</html>
`))

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
